package internal

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ParseArg normalizes a YouTube video argument into a watch URL and an ID.
// Bare IDs are accepted as-is; URLs have their ID extracted.
func ParseArg(arg string) (string, string) {
	arg = strings.TrimSpace(arg)

	if strings.HasPrefix(arg, "https://") || strings.HasPrefix(arg, "http://") {
		videoID, err := getVideoID(arg)
		if err != nil {
			return arg, arg
		}
		return arg, videoID
	}

	return "https://www.youtube.com/watch?v=" + arg, arg
}

// getVideoID extracts a video ID from YouTube URLs.
func getVideoID(youtubeURL string) (string, error) {
	youtubeURL = strings.TrimSpace(youtubeURL)
	u, err := url.Parse(youtubeURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	switch u.Host {
	case "www.youtube.com", "youtube.com", "m.youtube.com", "youtu.be":
	default:
		return "", fmt.Errorf("not a YouTube URL: %s", youtubeURL)
	}

	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}

	// youtu.be/<id> and youtube.com/shorts/<id> style paths
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1], nil
	}

	return "", fmt.Errorf("could not extract video ID from URL: %s", youtubeURL)
}

// ResolveVideoID normalizes a video argument and validates the resulting ID,
// so junk arguments never reach the provider.
func ResolveVideoID(arg string) (string, error) {
	_, videoID := ParseArg(arg)
	if !IsValidYouTubeID(videoID) {
		return "", fmt.Errorf("invalid YouTube video ID: %s", videoID)
	}
	return videoID, nil
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// IsValidYouTubeID checks if a string looks like a valid YouTube video ID
func IsValidYouTubeID(id string) bool {
	// YouTube video IDs are exactly 11 characters long
	if len(id) != 11 {
		return false
	}
	return videoIDPattern.MatchString(id)
}

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveTranscript writes a normalized transcript to the transcripts directory.
func SaveTranscript(videoID string, segments []Segment, transcriptsDir string) error {
	if err := EnsureDirs(transcriptsDir); err != nil {
		return fmt.Errorf("creating transcripts directory: %w", err)
	}

	data, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("marshaling transcript: %w", err)
	}

	transcriptPath := filepath.Join(transcriptsDir, videoID+".json")
	if err := os.WriteFile(transcriptPath, data, 0644); err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}
	return nil
}

// LoadCachedTranscript reads a previously saved transcript back as generic
// maps, the second entry shape Normalize accepts.
func LoadCachedTranscript(videoID, transcriptsDir string) ([]map[string]any, error) {
	transcriptPath := filepath.Join(transcriptsDir, videoID+".json")

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("reading cached transcript: %w", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing cached transcript: %w", err)
	}
	return entries, nil
}
