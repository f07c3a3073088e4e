package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/ytcap/ytcap/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run minimal MCP server for ytcap",
	Long: `Run a Model Context Protocol (MCP) server that exposes ytcap functionality as tools.

The MCP server provides three tools:
- get_transcript: Fetch a video's transcript as JSON
- list_caption_tracks: List the available caption tracks for a video
- get_video_metadata: Get basic video metadata

This allows AI assistants to fetch YouTube transcripts through the MCP protocol.

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)`,
	Example: `  # Run MCP server with stdio transport (e.g. for Claude Desktop)
  ytcap mcp

  # Run MCP server with HTTP transport on port 8080
  ytcap mcp --transport=http --port=8080

  # Set up Claude Desktop integration
  ytcap mcp setup-claude`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP uses stdio protocol, so disable verbose logging
		config.Verbose = false
		config.Quiet = true
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		internal.InitMCPLogging(config)

		app := internal.NewApp(config)
		mcpServer := internal.NewMCPServer(app)

		// Start the server (this will block until context is cancelled)
		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

// setupClaudeCmd represents the setup-claude subcommand
var setupClaudeCmd = &cobra.Command{
	Use:   "setup-claude",
	Short: "Configure Claude Desktop to use the ytcap MCP server",
	Long: `Automatically configure Claude Desktop to use ytcap as an MCP server.

This command will:
- Detect Claude Desktop installation and config location
- Add ytcap MCP server configuration to claude_desktop_config.json
- Preserve existing MCP server configurations
- Set appropriate XDG environment variables for the current platform`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setupClaudeDesktop()
	},
}

// claudeDesktopConfig mirrors the parts of claude_desktop_config.json we touch.
type claudeDesktopConfig struct {
	MCPServers map[string]claudeServerEntry `json:"mcpServers"`
}

type claudeServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// setupClaudeDesktop registers this binary as an MCP server in the Claude
// Desktop config. An existing config file is required; other server entries
// in it are left untouched.
func setupClaudeDesktop() error {
	binary, err := os.Executable()
	if err != nil {
		return fmt.Errorf("getting executable path: %w", err)
	}
	if binary, err = filepath.EvalSymlinks(binary); err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	configPath, err := claudeDesktopConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("config for Claude Desktop not found at %s", configPath)
	}
	if err != nil {
		return fmt.Errorf("reading existing config: %w", err)
	}

	var desktop claudeDesktopConfig
	if err := json.Unmarshal(data, &desktop); err != nil {
		return fmt.Errorf("parsing existing config: %w", err)
	}
	if desktop.MCPServers == nil {
		desktop.MCPServers = make(map[string]claudeServerEntry)
	}

	// Pin the XDG base dirs so the server resolves the same config and
	// transcript locations as the interactive CLI.
	desktop.MCPServers["ytcap"] = claudeServerEntry{
		Command: binary,
		Args:    []string{"mcp"},
		Env: map[string]string{
			"XDG_DATA_HOME":   xdg.DataHome,
			"XDG_CONFIG_HOME": xdg.ConfigHome,
			"XDG_CACHE_HOME":  xdg.CacheHome,
		},
	}

	if data, err = json.MarshalIndent(desktop, "", "  "); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Println("Successfully configured Claude Desktop MCP server")
	fmt.Println("Restart Claude Desktop to use the ytcap MCP server")
	return nil
}

// claudeDesktopConfigPath returns where Claude Desktop keeps
// claude_desktop_config.json on this platform.
func claudeDesktopConfigPath() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "linux":
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol (stdio or http)")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport (only used with --transport=http)")
	mcpCmd.AddCommand(setupClaudeCmd)
	rootCmd.AddCommand(mcpCmd)
}
