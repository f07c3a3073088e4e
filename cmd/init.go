package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ytcap/ytcap/internal"
)

// initCmd materializes the default configuration file. This is the only
// command that writes to the config directory; plain runs leave no
// filesystem state behind.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default configuration file",
	Example: `  # Write config.toml to the XDG config directory
  ytcap init`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return internal.EnsureDefaultConfig(config.ConfigDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
