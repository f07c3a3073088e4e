package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ytcap/ytcap/internal"
)

// cpCmd copies the transcript to the system clipboard instead of printing to stdout.
var cpCmd = &cobra.Command{
	Use:   "cp [YouTube URL or ID]",
	Short: "Copy a video's transcript JSON to the clipboard",
	Example: `  # Copy transcript JSON to the clipboard
  ytcap cp "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytcap cp tAP1eZYEuKA --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		internal.HandleCacheFlag(cmd, config)
		app := internal.NewApp(config)

		data, err := fetchTranscriptJSON(cmd, app, args[0])
		if err != nil {
			return err
		}

		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copying transcript to clipboard: %w", err)
		}

		if !config.Quiet {
			fmt.Fprintln(os.Stderr, "Transcript copied to clipboard")
		}

		return nil
	},
}

func init() {
	cpCmd.Flags().Bool("pretty", false, "Copy pretty-printed JSON")
	internal.AddCacheFlags(cpCmd)
	rootCmd.AddCommand(cpCmd)
}
