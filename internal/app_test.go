package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider implements CaptionProvider for tests.
type fakeProvider struct {
	tracks      []CaptionTrack
	entries     []Entry
	listErr     error
	fetchErr    error
	listCalls   int
	fetchCalls  int
	fetchedLang string
}

func (f *fakeProvider) ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tracks, nil
}

func (f *fakeProvider) FetchEntries(ctx context.Context, track CaptionTrack) ([]Entry, error) {
	f.fetchCalls++
	f.fetchedLang = track.LanguageCode
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.entries, nil
}

func (f *fakeProvider) VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	return &VideoDetails{ID: videoID}, nil
}

func testApp(t *testing.T, provider CaptionProvider) *App {
	t.Helper()
	config := &Config{
		TranscriptsDir: t.TempDir(),
		Quiet:          true,
	}
	return NewApp(config, WithProvider(provider))
}

func TestAppTranscript(t *testing.T) {
	provider := &fakeProvider{
		tracks: []CaptionTrack{
			{LanguageCode: "de", Name: "German"},
			{LanguageCode: "en", Name: "English"},
		},
		entries: []Entry{
			{Text: "Hello", Start: 0, Duration: 2.5},
			{Text: "world", Start: 2.5, Duration: 1.5},
		},
	}
	app := testApp(t, provider)

	segments, err := app.Transcript(context.Background(), "abc123xyz00")
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, "en", provider.fetchedLang)
	assert.Equal(t, Segment{Text: "Hello", Duration: 2.5, Offset: 0}, segments[0])
	assert.Equal(t, Segment{Text: "world", Duration: 1.5, Offset: 2.5}, segments[1])
}

func TestAppTranscriptEmptyVideoID(t *testing.T) {
	app := testApp(t, &fakeProvider{})

	_, err := app.Transcript(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestAppTranscriptNoTracks(t *testing.T) {
	app := testApp(t, &fakeProvider{tracks: nil})

	_, err := app.Transcript(context.Background(), "abc123xyz00")
	var notFound *NoTranscriptError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "abc123xyz00", notFound.VideoID)
}

func TestAppTranscriptProviderErrorsPassThrough(t *testing.T) {
	disabled := &TranscriptsDisabledError{VideoID: "abc123xyz00"}
	app := testApp(t, &fakeProvider{listErr: disabled})

	_, err := app.Transcript(context.Background(), "abc123xyz00")
	var got *TranscriptsDisabledError
	require.ErrorAs(t, err, &got)
}

func TestAppTranscriptFetchError(t *testing.T) {
	provider := &fakeProvider{
		tracks:   []CaptionTrack{{LanguageCode: "en"}},
		fetchErr: errors.New("network down"),
	}
	app := testApp(t, provider)

	_, err := app.Transcript(context.Background(), "abc123xyz00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
}

func TestAppTranscriptCache(t *testing.T) {
	provider := &fakeProvider{
		tracks:  []CaptionTrack{{LanguageCode: "en"}},
		entries: []Entry{{Text: "cached", Start: 1.5, Duration: 2}},
	}
	config := &Config{
		TranscriptsDir:   t.TempDir(),
		CacheTranscripts: true,
		Quiet:            true,
	}
	app := NewApp(config, WithProvider(provider))

	first, err := app.Transcript(context.Background(), "abc123xyz00")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.listCalls)

	// Second run should come from the cache (decoded as maps and pushed
	// through the same normalizer) without touching the provider again.
	second, err := app.Transcript(context.Background(), "abc123xyz00")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.listCalls)
	assert.Equal(t, 1, provider.fetchCalls)
	assert.Equal(t, first, second)
}

func TestAppTranscriptNoCacheByDefault(t *testing.T) {
	provider := &fakeProvider{
		tracks:  []CaptionTrack{{LanguageCode: "en"}},
		entries: []Entry{{Text: "x", Start: 0, Duration: 1}},
	}
	transcriptsDir := filepath.Join(t.TempDir(), "transcripts")
	config := &Config{
		TranscriptsDir: transcriptsDir,
		Quiet:          true,
	}
	app := NewApp(config, WithProvider(provider))

	_, err := app.Transcript(context.Background(), "abc123xyz00")
	require.NoError(t, err)
	_, err = app.Transcript(context.Background(), "abc123xyz00")
	require.NoError(t, err)

	assert.Equal(t, 2, provider.listCalls)
	assert.Equal(t, 2, provider.fetchCalls)

	// A default run must leave no filesystem state behind.
	_, err = os.Stat(transcriptsDir)
	assert.True(t, os.IsNotExist(err))
}

func TestAppTranscriptJSON(t *testing.T) {
	provider := &fakeProvider{
		tracks:  []CaptionTrack{{LanguageCode: "en"}},
		entries: []Entry{{Text: "Hello", Start: 0, Duration: 2.5}},
	}
	app := testApp(t, provider)

	data, err := app.TranscriptJSON(context.Background(), "abc123xyz00", false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Hello","duration":2.5,"offset":0}]`, string(data))
}

func TestAppListTracksEmptyID(t *testing.T) {
	app := testApp(t, &fakeProvider{})

	_, err := app.ListTracks(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoVideoID)
}
