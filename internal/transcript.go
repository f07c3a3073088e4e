package internal

import (
	"encoding/json"
	"fmt"
)

// Entry is one timed caption unit as the provider returns it.
type Entry struct {
	Text     string
	Start    float64
	Duration float64
}

// Segment is the normalized output record. Field order matters: it determines
// the key order in the emitted JSON.
type Segment struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Offset   float64 `json:"offset"`
}

// SelectTrack picks a caption track using the fallback policy:
// an explicit (human-authored) English track, then an auto-generated English
// track, then whatever track the provider listed first. The second return
// value is false only for an empty track list.
func SelectTrack(tracks []CaptionTrack) (CaptionTrack, bool) {
	if len(tracks) == 0 {
		return CaptionTrack{}, false
	}

	for _, t := range tracks {
		if t.LanguageCode == "en" && !t.Generated() {
			return t, true
		}
	}

	for _, t := range tracks {
		if t.LanguageCode == "en" && t.Generated() {
			return t, true
		}
	}

	return tracks[0], true
}

// Normalize converts provider entries into Segments. Entries arrive either as
// typed Entry values (live fetch) or as generic maps with text/duration and
// start or offset keys (cached transcripts decoded from JSON). Order and
// count are preserved.
func Normalize(items []any) ([]Segment, error) {
	segments := make([]Segment, 0, len(items))

	for i, item := range items {
		switch v := item.(type) {
		case Entry:
			segments = append(segments, Segment{Text: v.Text, Duration: v.Duration, Offset: v.Start})
		case *Entry:
			segments = append(segments, Segment{Text: v.Text, Duration: v.Duration, Offset: v.Start})
		case map[string]any:
			seg, err := segmentFromMap(v)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			segments = append(segments, seg)
		default:
			return nil, fmt.Errorf("entry %d: unsupported entry shape %T", i, item)
		}
	}

	return segments, nil
}

func segmentFromMap(m map[string]any) (Segment, error) {
	text, ok := m["text"].(string)
	if !ok {
		return Segment{}, fmt.Errorf("missing or non-string text field")
	}

	duration, ok := toFloat(m["duration"])
	if !ok {
		return Segment{}, fmt.Errorf("missing or non-numeric duration field")
	}

	// The canonical provider key is "start"; cached transcripts carry the
	// already-normalized "offset".
	offset, ok := toFloat(m["start"])
	if !ok {
		offset, ok = toFloat(m["offset"])
	}
	if !ok {
		return Segment{}, fmt.Errorf("missing or non-numeric start/offset field")
	}

	return Segment{Text: text, Duration: duration, Offset: offset}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// EncodeSegments marshals segments as a JSON array. A nil slice still encodes
// as [], never null.
func EncodeSegments(segments []Segment, pretty bool) ([]byte, error) {
	if segments == nil {
		segments = []Segment{}
	}
	if pretty {
		return json.MarshalIndent(segments, "", "  ")
	}
	return json.Marshal(segments)
}
