package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildTemplatePrompt(t *testing.T) {
	got := BuildTemplatePrompt("hello", []string{"a", "b"})
	want := "Extract all relevant details from this transcript and fill in these sections: - a\n- b\n\nTRANSCRIPT:\nhello\n\nReturn ONLY JSON with these keys filled in (leave empty if not applicable): {\"a\":\"\",\"b\":\"\"}"
	assert.Equal(t, want, got)
}

func TestBuildShortSummaryPrompt(t *testing.T) {
	assert.Equal(t,
		"Create a concise academic summary (2-3 sentences) of this meeting transcript:\n\nlecture",
		BuildShortSummaryPrompt("lecture", "academic"))
}

func TestBuildActionsPrompt(t *testing.T) {
	p := BuildActionsPrompt("T", time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC))
	assert.Contains(t, p, "Use today's date as reference: 2026-01-02.")
	assert.Contains(t, p, "TRANSCRIPT:\nT\n\nExtract actions")
}

func TestNormalizeStyle(t *testing.T) {
	assert.Equal(t, StyleCasual, NormalizeStyle("casual"))
	assert.Equal(t, StyleProfessional, NormalizeStyle(""))
	assert.Equal(t, StyleProfessional, NormalizeStyle("LONGER"))
	assert.Equal(t, LongSummaryMaxTokens, SummaryMaxTokensFor(StyleLonger))
}
