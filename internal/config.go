package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	FetchTimeout     time.Duration
	UserAgent        string
	CacheTranscripts bool
	TranscriptsDir   string
	Verbose          bool
	Quiet            bool
	MCPLogEnabled    bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	DataDir   string
	CacheDir  string
}

//go:embed config.toml
var defaultFS embed.FS

// defaultUserAgent is sent on every outbound request. YouTube serves the
// Android innertube client regardless, but an empty agent gets rejected.
const defaultUserAgent = "Mozilla/5.0 (Linux; Android 14) ytcap/1.0"

// EnsureDefaultConfig checks if a config file exists in the XDG config
// directory and creates it from the embedded default if it doesn't exist
func EnsureDefaultConfig(configDir string) error {
	filePath := filepath.Join(configDir, "config.toml")

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile("config.toml")
	if err != nil {
		return fmt.Errorf("reading embedded default configuration: %w", err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default configuration: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration at %s\n", filePath)
	return nil
}

// InitConfig initializes Viper and loads configuration
func InitConfig() *Config {
	// XDG standard directories
	configDir := filepath.Join(xdg.ConfigHome, "ytcap")
	dataDir := filepath.Join(xdg.DataHome, "ytcap")
	cacheDir := filepath.Join(xdg.CacheHome, "ytcap")

	transcriptsDir := filepath.Join(dataDir, "transcripts")

	v := viper.New()

	// Defaults for configurable settings
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("user_agent", defaultUserAgent)
	v.SetDefault("cache_transcripts", false)
	v.SetDefault("transcripts_dir", transcriptsDir)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("mcp_log", false)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variables, e.g. YTCAP_FETCH_TIMEOUT
	v.SetEnvPrefix("YTCAP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	config := &Config{
		FetchTimeout:     v.GetDuration("fetch_timeout"),
		UserAgent:        v.GetString("user_agent"),
		CacheTranscripts: v.GetBool("cache_transcripts"),
		TranscriptsDir:   v.GetString("transcripts_dir"),
		Verbose:          v.GetBool("verbose"),
		Quiet:            v.GetBool("quiet"),
		MCPLogEnabled:    v.GetBool("mcp_log"),

		ConfigDir: configDir,
		DataDir:   dataDir,
		CacheDir:  cacheDir,
	}

	if config.Verbose && v.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}
