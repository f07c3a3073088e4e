package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytcap/ytcap/internal"
)

var (
	config *internal.Config
)

// errReported marks failures that were already serialized to stdout as a
// JSON error object. Execute skips its stderr fallback for these.
var errReported = errors.New("error already reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytcap [YouTube URL or ID]",
	Short: "Fetch YouTube video transcripts as JSON",
	Long: `ytcap fetches the transcript (captions) of a YouTube video and prints it
as a JSON array of {"text", "duration", "offset"} objects on stdout.

Track selection prefers an explicit English track, then an auto-generated
English track, then the first track YouTube lists, regardless of language.

On any failure ytcap prints {"error": "<message>"} on stdout and exits 1,
so automation can always parse the output as JSON.`,
	Example: `  # Fetch a transcript (default behavior)
  ytcap "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  ytcap tAP1eZYEuKA

  # Pretty-print and save to a file
  ytcap tAP1eZYEuKA --pretty -o transcript.json

  # Reuse previously fetched transcripts
  ytcap tAP1eZYEuKA --cache`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return internal.HandleVerboseFlag(cmd, config)
	},
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The missing-argument case is part of the JSON output contract,
		// so it cannot be left to cobra's usage error.
		if len(args) == 0 {
			internal.WriteError(os.Stdout, internal.ErrNoVideoID)
			return errReported
		}

		internal.HandleCacheFlag(cmd, config)
		app := internal.NewApp(config)

		data, err := fetchTranscriptJSON(cmd, app, args[0])
		if err != nil {
			internal.WriteError(os.Stdout, err)
			return errReported
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				internal.WriteError(os.Stdout, err)
				return errReported
			}
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Create a cancellable context for the entire application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize configuration with Viper. Nothing is written to disk here:
	// a default run must leave no filesystem state behind. The config file
	// is only materialized by `ytcap init`, and the transcripts directory
	// only when caching is enabled.
	config = internal.InitConfig()

	// Cancel in-flight fetches on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		// Subcommand failures are ordinary CLI errors, not JSON output.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	internal.AddOutputFlags(rootCmd)
	internal.AddCacheFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
