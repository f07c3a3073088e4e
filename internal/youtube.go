package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

// KindASR is the track kind YouTube assigns to auto-generated captions.
const KindASR = "asr"

// CaptionTrack describes one available subtitle track for a video.
type CaptionTrack struct {
	BaseURL      string `json:"-"`
	Name         string `json:"name"`
	LanguageCode string `json:"language_code"`
	Kind         string `json:"kind,omitempty"`
}

// Generated reports whether the track was produced by speech recognition.
func (t CaptionTrack) Generated() bool {
	return t.Kind == KindASR
}

// VideoDetails contains basic video metadata from the player response.
type VideoDetails struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	LengthSeconds float64 `json:"length_seconds"`
	HasCaptions   bool    `json:"has_captions"`
}

// CaptionProvider is the transcript-retrieval collaborator. The app only
// depends on this capability shape, never on how tracks are obtained.
type CaptionProvider interface {
	ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error)
	FetchEntries(ctx context.Context, track CaptionTrack) ([]Entry, error)
	VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error)
}

// YouTube implements CaptionProvider against YouTube's innertube player API.
type YouTube struct {
	client    *http.Client
	playerURL string
	userAgent string
	verbose   bool
}

// NewYouTube creates a provider with the given request timeout.
func NewYouTube(timeout time.Duration, userAgent string, verbose bool) *YouTube {
	return &YouTube{
		client:    &http.Client{Timeout: timeout},
		playerURL: playerEndpoint,
		userAgent: userAgent,
		verbose:   verbose,
	}
}

// playerRequest is the innertube player call body. The Android client context
// returns caption tracks without requiring API keys or cookies.
type playerRequest struct {
	Context struct {
		Client struct {
			ClientName        string `json:"clientName"`
			ClientVersion     string `json:"clientVersion"`
			AndroidSDKVersion int    `json:"androidSdkVersion"`
			HL                string `json:"hl"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

func (yt *YouTube) playerResponse(ctx context.Context, videoID string) (gjson.Result, error) {
	var body playerRequest
	body.Context.Client.ClientName = "ANDROID"
	body.Context.Client.ClientVersion = "20.10.38"
	body.Context.Client.AndroidSDKVersion = 30
	body.Context.Client.HL = "en"
	body.VideoID = videoID

	payload, err := json.Marshal(body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("encoding player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, yt.playerURL, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("creating player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", yt.userAgent)

	if yt.verbose {
		fmt.Fprintf(os.Stderr, "Requesting player data for %s\n", videoID)
	}

	resp, err := yt.client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("requesting player data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("player request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("reading player response: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("player response is not valid JSON")
	}

	return gjson.ParseBytes(data), nil
}

// ListTracks returns the available caption tracks for a video in the
// provider's listing order.
func (yt *YouTube) ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	resp, err := yt.playerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if status := resp.Get("playabilityStatus.status").String(); status != "" && status != "OK" {
		reason := resp.Get("playabilityStatus.reason").String()
		if reason == "" {
			reason = status
		}
		return nil, fmt.Errorf("video %s is unplayable: %s", videoID, reason)
	}

	// A playable video with no captions renderer at all has captions turned
	// off by the uploader.
	if !resp.Get("captions").Exists() {
		return nil, &TranscriptsDisabledError{VideoID: videoID}
	}

	var tracks []CaptionTrack
	resp.Get("captions.playerCaptionsTracklistRenderer.captionTracks").ForEach(func(_, raw gjson.Result) bool {
		tracks = append(tracks, CaptionTrack{
			BaseURL:      raw.Get("baseUrl").String(),
			Name:         trackName(raw),
			LanguageCode: raw.Get("languageCode").String(),
			Kind:         raw.Get("kind").String(),
		})
		return true
	})

	if len(tracks) == 0 {
		return nil, &NoTranscriptError{VideoID: videoID}
	}

	if yt.verbose {
		fmt.Fprintf(os.Stderr, "Found %d caption track(s) for %s\n", len(tracks), videoID)
	}

	return tracks, nil
}

// trackName handles both label shapes YouTube serves.
func trackName(raw gjson.Result) string {
	if name := raw.Get("name.simpleText").String(); name != "" {
		return name
	}
	return raw.Get("name.runs.0.text").String()
}

// timedText mirrors the transcript XML served at a caption track's base URL.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Body     string  `xml:",innerxml"`
}

var markupTags = regexp.MustCompile(`<[^>]*>`)

// FetchEntries downloads and parses the entries of one caption track,
// preserving the provider's order.
func (yt *YouTube) FetchEntries(ctx context.Context, track CaptionTrack) ([]Entry, error) {
	if track.BaseURL == "" {
		return nil, fmt.Errorf("caption track has no base URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating caption request: %w", err)
	}
	req.Header.Set("User-Agent", yt.userAgent)

	if yt.verbose {
		fmt.Fprintf(os.Stderr, "Fetching %s captions (%s)\n", track.LanguageCode, track.Kind)
	}

	resp, err := yt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading caption response: %w", err)
	}

	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing caption XML: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		entries = append(entries, Entry{
			Text:     cleanCueText(cue.Body),
			Start:    cue.Start,
			Duration: cue.Duration,
		})
	}

	return entries, nil
}

// cleanCueText strips inline markup and resolves HTML entities. Markup is
// removed before unescaping so escaped angle brackets in the caption text
// survive.
func cleanCueText(s string) string {
	s = markupTags.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}

// VideoDetails fetches basic metadata for a video.
func (yt *YouTube) VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	resp, err := yt.playerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	details := resp.Get("videoDetails")
	if !details.Exists() {
		return nil, fmt.Errorf("no video details for %s", videoID)
	}

	length, _ := strconv.ParseFloat(details.Get("lengthSeconds").String(), 64)

	return &VideoDetails{
		ID:            details.Get("videoId").String(),
		Title:         details.Get("title").String(),
		Author:        details.Get("author").String(),
		LengthSeconds: length,
		HasCaptions:   resp.Get("captions.playerCaptionsTracklistRenderer.captionTracks.#").Int() > 0,
	}, nil
}
