package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ytcap/ytcap/internal"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [YouTube URL or ID]",
	Short: "List available caption tracks for a video",
	Example: `  # Show caption tracks as a table
  ytcap list tAP1eZYEuKA

  # Machine-readable output
  ytcap list tAP1eZYEuKA --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := internal.NewApp(config)
		videoID, err := internal.ResolveVideoID(args[0])
		if err != nil {
			return err
		}

		tracks, err := app.ListTracks(cmd.Context(), videoID)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(tracks, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding tracks: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		width := terminalWidth()
		fmt.Printf("%-10s %-10s %s\n", "CODE", "KIND", "NAME")
		for _, track := range tracks {
			kind := "manual"
			if track.Generated() {
				kind = "generated"
			}
			// Leave room for the two fixed-width columns.
			fmt.Printf("%-10s %-10s %s\n", track.LanguageCode, kind, truncateName(track.Name, width-22))
		}

		return nil
	},
}

// truncateName shortens a track name to the given display width. Track names
// are often non-ASCII, so truncation goes by cell width, not bytes.
func truncateName(name string, width int) string {
	if width <= 3 {
		return name
	}
	return runewidth.Truncate(name, width, "...")
}

// terminalWidth gets terminal width with fallback
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func init() {
	listCmd.Flags().Bool("json", false, "Output tracks as JSON")
	rootCmd.AddCommand(listCmd)
}
