package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{5.9, "00:05"},
		{59.999, "00:59"},
		{60, "01:00"},
		{65.4, "01:05"},
		{3599, "59:59"},
		{3600, "60:00"},
		{7322.5, "122:02"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimestamp(tc.in), "seconds=%v", tc.in)
	}
}

func TestFormatTranscript_Segments(t *testing.T) {
	tr := &Transcription{
		Text: " Hello there. Next item.",
		Segments: []Segment{
			{Start: 0, Text: " Hello there."},
			{Start: 12.3, Text: "   "},
			{Start: 65.2, Text: " Next item. "},
		},
	}
	assert.Equal(t, "[00:00] Hello there.\n[01:05] Next item.", FormatTranscript(tr))
}

func TestFormatTranscript_Fallbacks(t *testing.T) {
	assert.Equal(t, "flat text", FormatTranscript(&Transcription{Text: "flat text"}))
	assert.Equal(t, NoSpeechText, FormatTranscript(&Transcription{}))
	assert.Equal(t, NoSpeechText, FormatTranscript(nil))

	// an empty segment list is not the same as no list
	assert.Equal(t, "", FormatTranscript(&Transcription{Text: "ignored", Segments: []Segment{}}))
}

func TestTranscription_DecodeDistinguishesMissingSegments(t *testing.T) {
	var withList, without Transcription
	require.NoError(t, json.Unmarshal([]byte(`{"text":"a","segments":[]}`), &withList))
	require.NoError(t, json.Unmarshal([]byte(`{"text":"a"}`), &without))

	assert.NotNil(t, withList.Segments)
	assert.Nil(t, without.Segments)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, " raw", PlainText(&Transcription{Text: " raw"}, "formatted"))
	assert.Equal(t, "formatted", PlainText(&Transcription{}, "formatted"))
	assert.Equal(t, "formatted", PlainText(nil, "formatted"))
}
