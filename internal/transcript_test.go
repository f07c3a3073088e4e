package internal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTrack(t *testing.T) {
	manualEN := CaptionTrack{LanguageCode: "en", Name: "English"}
	generatedEN := CaptionTrack{LanguageCode: "en", Name: "English (auto-generated)", Kind: KindASR}
	manualDE := CaptionTrack{LanguageCode: "de", Name: "German"}
	generatedFR := CaptionTrack{LanguageCode: "fr", Name: "French (auto-generated)", Kind: KindASR}

	tests := []struct {
		name   string
		tracks []CaptionTrack
		want   CaptionTrack
		wantOK bool
	}{
		{
			name:   "explicit english wins over generated english",
			tracks: []CaptionTrack{generatedEN, manualDE, manualEN},
			want:   manualEN,
			wantOK: true,
		},
		{
			name:   "explicit english wins regardless of listing position",
			tracks: []CaptionTrack{manualDE, manualEN, generatedEN},
			want:   manualEN,
			wantOK: true,
		},
		{
			name:   "generated english when no explicit english",
			tracks: []CaptionTrack{manualDE, generatedEN, generatedFR},
			want:   generatedEN,
			wantOK: true,
		},
		{
			name:   "first track when no english at all",
			tracks: []CaptionTrack{generatedFR, manualDE},
			want:   generatedFR,
			wantOK: true,
		},
		{
			name:   "regional english variants are not tier-1 matches",
			tracks: []CaptionTrack{{LanguageCode: "en-US", Name: "English (US)"}, manualDE},
			want:   CaptionTrack{LanguageCode: "en-US", Name: "English (US)"},
			wantOK: true,
		},
		{
			name:   "empty track list",
			tracks: nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectTrack(tt.tracks)
			if ok != tt.wantOK {
				t.Fatalf("SelectTrack() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SelectTrack() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEntryShapes(t *testing.T) {
	items := []any{
		Entry{Text: "first", Start: 0, Duration: 2.5},
		&Entry{Text: "second", Start: 2.5, Duration: 1.25},
		map[string]any{"text": "third", "duration": 3.0, "start": 3.75},
		map[string]any{"text": "fourth", "duration": 1.0, "offset": 6.75},
	}

	segments, err := Normalize(items)
	require.NoError(t, err)
	require.Len(t, segments, len(items))

	assert.Equal(t, Segment{Text: "first", Duration: 2.5, Offset: 0}, segments[0])
	assert.Equal(t, Segment{Text: "second", Duration: 1.25, Offset: 2.5}, segments[1])
	assert.Equal(t, Segment{Text: "third", Duration: 3.0, Offset: 3.75}, segments[2])
	assert.Equal(t, Segment{Text: "fourth", Duration: 1.0, Offset: 6.75}, segments[3])
}

func TestNormalizePrefersStartOverOffset(t *testing.T) {
	segments, err := Normalize([]any{
		map[string]any{"text": "x", "duration": 1.0, "start": 5.0, "offset": 9.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, segments[0].Offset)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		item any
	}{
		{"missing text", map[string]any{"duration": 1.0, "start": 0.0}},
		{"non-string text", map[string]any{"text": 42, "duration": 1.0, "start": 0.0}},
		{"missing duration", map[string]any{"text": "x", "start": 0.0}},
		{"missing start and offset", map[string]any{"text": "x", "duration": 1.0}},
		{"unsupported shape", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]any{tt.item})
			if err == nil {
				t.Fatalf("Normalize() expected error for %v", tt.item)
			}
		})
	}
}

func TestNormalizePreservesOrderAndCount(t *testing.T) {
	items := make([]any, 50)
	for i := range items {
		items[i] = Entry{Text: "cue", Start: float64(i), Duration: 1}
	}

	segments, err := Normalize(items)
	require.NoError(t, err)
	require.Len(t, segments, 50)
	for i, seg := range segments {
		assert.Equal(t, float64(i), seg.Offset)
	}
}

func TestEncodeSegmentsShape(t *testing.T) {
	segments, err := Normalize([]any{Entry{Text: "Hello", Start: 0.0, Duration: 2.5}})
	require.NoError(t, err)

	data, err := EncodeSegments(segments, false)
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"Hello","duration":2.5,"offset":0}]`, string(data))

	// Every element must carry exactly the three output keys.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Len(t, decoded[0], 3)
	for _, key := range []string{"text", "duration", "offset"} {
		assert.Contains(t, decoded[0], key)
	}
}

func TestEncodeSegmentsEmpty(t *testing.T) {
	data, err := EncodeSegments(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
