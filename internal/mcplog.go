package internal

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// The MCP server speaks its protocol over stdout, so diagnostics go to a
// cache-dir log file instead. The logger stays nil when logging is disabled
// or the file cannot be opened.
var (
	mcpLogger     *log.Logger
	mcpLoggerOnce sync.Once
)

// InitMCPLogging opens the MCP log file once per process, honoring the
// mcp_log config flag.
func InitMCPLogging(config *Config) {
	mcpLoggerOnce.Do(func() {
		if !config.MCPLogEnabled {
			return
		}
		mcpLogger = openMCPLog(filepath.Join(xdg.CacheHome, "ytcap"))
	})
}

func openMCPLog(dir string) *log.Logger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "mcp.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

func mcpLogf(level, format string, args ...any) {
	if mcpLogger == nil {
		return
	}
	mcpLogger.Printf("[MCP] [%s] "+format, append([]any{level}, args...)...)
}

// MCPLogInfo logs an info message to the MCP log file.
func MCPLogInfo(format string, args ...any) {
	mcpLogf("INFO", format, args...)
}

// MCPLogError logs an error message to the MCP log file.
func MCPLogError(format string, args ...any) {
	mcpLogf("ERROR", format, args...)
}
