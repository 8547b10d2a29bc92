package ai

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// NoSpeechText is returned when the recogniser produced neither segments nor text
const NoSpeechText = "No speech detected"

// Segment is one timed span of recognised speech
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// Transcription is the raw recogniser output. Segments is nil when the
// recogniser produced no segment list at all, which is distinct from an
// empty list.
type Transcription struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`
}

// Transcriber turns an audio file on disk into a transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Transcription, error)
}

// FormatTimestamp renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	mins := int64(math.Floor(seconds / 60))
	secs := int64(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatTranscript renders one "[MM:SS] text" line per non-blank segment.
// Without a segment list the flat text is used, and without either
// NoSpeechText. The result is trimmed.
func FormatTranscript(t *Transcription) string {
	if t == nil {
		return NoSpeechText
	}

	if t.Segments != nil {
		var sb strings.Builder
		for _, seg := range t.Segments {
			text := strings.TrimSpace(seg.Text)
			if text == "" {
				continue
			}
			sb.WriteString("[")
			sb.WriteString(FormatTimestamp(seg.Start))
			sb.WriteString("] ")
			sb.WriteString(text)
			sb.WriteString("\n")
		}
		return strings.TrimSpace(sb.String())
	}

	if t.Text != "" {
		return strings.TrimSpace(t.Text)
	}
	return NoSpeechText
}

// PlainText returns the recogniser's flat text, or formatted when it is empty
func PlainText(t *Transcription, formatted string) string {
	if t != nil && t.Text != "" {
		return t.Text
	}
	return formatted
}
