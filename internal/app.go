package internal

import (
	"context"
	"fmt"
)

// App holds the application state and dependencies
type App struct {
	provider CaptionProvider
	config   *Config
	ui       UIManager
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	app := &App{
		provider: NewYouTube(config.FetchTimeout, config.UserAgent, config.Verbose),
		config:   config,
		ui:       NewUIManager(config.Verbose, config.Quiet),
	}

	for _, option := range options {
		option(app)
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithProvider sets a custom caption provider
func WithProvider(provider CaptionProvider) AppOption {
	return func(a *App) {
		a.provider = provider
	}
}

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// Transcript runs the whole pipeline for one video: list the caption tracks,
// select one by the fallback policy, fetch its entries and normalize them.
func (app *App) Transcript(ctx context.Context, videoID string) ([]Segment, error) {
	if videoID == "" {
		return nil, ErrNoVideoID
	}

	if app.config.CacheTranscripts {
		if segments, err := app.loadFromCache(videoID); err == nil {
			app.ui.Verbose("Using cached transcript for %s\n", videoID)
			return segments, nil
		}
	}

	spinner := app.ui.NewSpinner("Listing caption tracks...")
	defer spinner.Finish()

	tracks, err := app.provider.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, &NoTranscriptError{VideoID: videoID}
	}

	track, ok := SelectTrack(tracks)
	if !ok {
		// Unreachable with a non-empty track list, guarded anyway.
		return nil, &NoTranscriptError{VideoID: videoID}
	}

	app.ui.Verbose("Selected %s track (%s)\n", track.LanguageCode, trackKindLabel(track))
	spinner.Describe(fmt.Sprintf("Fetching %s captions...", track.LanguageCode))
	spinner.Advance()

	entries, err := app.provider.FetchEntries(ctx, track)
	if err != nil {
		return nil, fmt.Errorf("fetching caption entries: %w", err)
	}

	items := make([]any, len(entries))
	for i, entry := range entries {
		items[i] = entry
	}

	segments, err := Normalize(items)
	if err != nil {
		return nil, err
	}

	if app.config.CacheTranscripts {
		if err := SaveTranscript(videoID, segments, app.config.TranscriptsDir); err != nil {
			app.ui.Verbose("Warning: caching transcript: %v\n", err)
		}
	}

	return segments, nil
}

// TranscriptJSON returns the normalized transcript encoded as a JSON array.
func (app *App) TranscriptJSON(ctx context.Context, videoID string, pretty bool) ([]byte, error) {
	segments, err := app.Transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(segments, pretty)
}

// ListTracks returns the available caption tracks for a video.
func (app *App) ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	if videoID == "" {
		return nil, ErrNoVideoID
	}
	return app.provider.ListTracks(ctx, videoID)
}

// Metadata returns basic video details.
func (app *App) Metadata(ctx context.Context, videoID string) (*VideoDetails, error) {
	if videoID == "" {
		return nil, ErrNoVideoID
	}
	return app.provider.VideoDetails(ctx, videoID)
}

// loadFromCache reads a cached transcript and runs it through the same
// normalizer as live entries. Cached entries decode as generic maps.
func (app *App) loadFromCache(videoID string) ([]Segment, error) {
	raw, err := LoadCachedTranscript(videoID, app.config.TranscriptsDir)
	if err != nil {
		return nil, err
	}

	items := make([]any, len(raw))
	for i, m := range raw {
		items[i] = m
	}
	return Normalize(items)
}

func trackKindLabel(track CaptionTrack) string {
	if track.Generated() {
		return "auto-generated"
	}
	return "manual"
}
