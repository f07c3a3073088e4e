package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App) *MCPServer {
	mcpServer := server.NewMCPServer(
		"ytcap-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_transcript",
		mcp.WithDescription("Fetch the transcript of a YouTube video as a JSON array of {text, duration, offset} objects. Picks an English track when available, falling back to auto-generated English, then to the first available track."),
		mcp.WithString("video",
			mcp.Description("YouTube video URL or 11-character video ID"),
			mcp.Required(),
		),
	), s.handleGetTranscript)

	s.mcpServer.AddTool(mcp.NewTool("list_caption_tracks",
		mcp.WithDescription("List the caption tracks available for a YouTube video, including language code and whether each track is auto-generated."),
		mcp.WithString("video",
			mcp.Description("YouTube video URL or 11-character video ID"),
			mcp.Required(),
		),
	), s.handleListTracks)

	s.mcpServer.AddTool(mcp.NewTool("get_video_metadata",
		mcp.WithDescription("Get basic metadata for a YouTube video (title, author, length, caption availability)."),
		mcp.WithString("video",
			mcp.Description("YouTube video URL or 11-character video ID"),
			mcp.Required(),
		),
	), s.handleGetMetadata)
}

// handleGetTranscript implements the get_transcript tool
func (s *MCPServer) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	video, err := request.RequireString("video")
	if err != nil {
		return mcp.NewToolResultError("video parameter is required and must be a string"), nil
	}

	videoID, err := ResolveVideoID(video)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid video argument", err), nil
	}
	MCPLogInfo("get_transcript %s", videoID)

	data, err := s.app.TranscriptJSON(ctx, videoID, false)
	if err != nil {
		MCPLogError("get_transcript %s: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("transcript error", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}, nil
}

// handleListTracks implements the list_caption_tracks tool
func (s *MCPServer) handleListTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	video, err := request.RequireString("video")
	if err != nil {
		return mcp.NewToolResultError("video parameter is required and must be a string"), nil
	}

	videoID, err := ResolveVideoID(video)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid video argument", err), nil
	}
	MCPLogInfo("list_caption_tracks %s", videoID)

	tracks, err := s.app.ListTracks(ctx, videoID)
	if err != nil {
		MCPLogError("list_caption_tracks %s: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("track listing error", err), nil
	}

	var buf strings.Builder
	for _, track := range tracks {
		buf.WriteString(fmt.Sprintf("%s (%s, %s)\n", track.LanguageCode, track.Name, trackKindLabel(track)))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// handleGetMetadata implements the get_video_metadata tool
func (s *MCPServer) handleGetMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	video, err := request.RequireString("video")
	if err != nil {
		return mcp.NewToolResultError("video parameter is required and must be a string"), nil
	}

	videoID, err := ResolveVideoID(video)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid video argument", err), nil
	}
	MCPLogInfo("get_video_metadata %s", videoID)

	details, err := s.app.Metadata(ctx, videoID)
	if err != nil {
		MCPLogError("get_video_metadata %s: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("metadata error", err), nil
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Title: %s\n", details.Title))
	buf.WriteString(fmt.Sprintf("Author: %s\n", details.Author))
	buf.WriteString(fmt.Sprintf("Length: %.0f seconds\n", details.LengthSeconds))
	buf.WriteString(fmt.Sprintf("Has Captions: %t\n", details.HasCaptions))

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}

// GetServer returns the underlying MCP server for advanced configuration
func (s *MCPServer) GetServer() *server.MCPServer {
	return s.mcpServer
}
