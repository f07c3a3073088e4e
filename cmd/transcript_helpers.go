package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ytcap/ytcap/internal"
)

// fetchTranscriptJSON retrieves the transcript for the given argument and
// encodes it per the command's output flags. The argument is validated
// before the provider is contacted.
func fetchTranscriptJSON(cmd *cobra.Command, app *internal.App, arg string) ([]byte, error) {
	videoID, err := internal.ResolveVideoID(arg)
	if err != nil {
		return nil, err
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	return app.TranscriptJSON(cmd.Context(), videoID, pretty)
}
