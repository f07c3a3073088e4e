package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOutputFlags adds flags controlling where and how JSON is written
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().Bool("pretty", false, "Format output as pretty JSON")
}

// AddCacheFlags adds flags related to the transcript cache
func AddCacheFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("cache", false, "Cache fetched transcripts and reuse them on later runs")
}

// HandleCacheFlag enables transcript caching when --cache was set
func HandleCacheFlag(cmd *cobra.Command, config *Config) {
	if cacheFlag := cmd.Flags().Lookup("cache"); cacheFlag != nil && cacheFlag.Changed {
		config.CacheTranscripts, _ = cmd.Flags().GetBool("cache")
	}
}

// HandleVerboseFlag processes the --verbose flag to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	config.Verbose = verbose

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		config.Quiet = true
	}
	return nil
}
