package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytcap/ytcap/internal"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata [YouTube URL or ID]",
	Short: "Get metadata from YouTube video",
	Example: `  # Get metadata from YouTube video
  ytcap metadata "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytcap metadata tAP1eZYEuKA

  # Save metadata to file
  ytcap metadata tAP1eZYEuKA -o metadata.json

  # Format output as pretty JSON
  ytcap metadata tAP1eZYEuKA --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := internal.NewApp(config)
		videoID, err := internal.ResolveVideoID(args[0])
		if err != nil {
			return err
		}

		details, err := app.Metadata(cmd.Context(), videoID)
		if err != nil {
			return err
		}

		var jsonData []byte
		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty {
			jsonData, err = json.MarshalIndent(details, "", "  ")
		} else {
			jsonData, err = json.Marshal(details)
		}
		if err != nil {
			return fmt.Errorf("error converting metadata to JSON: %w", err)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, jsonData, 0644)
		}

		fmt.Println(string(jsonData))

		return nil
	},
}

func init() {
	internal.AddOutputFlags(metadataCmd)
	rootCmd.AddCommand(metadataCmd)
}
