package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/relay"
)

func TestValidate_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&meeting.SaveMeetingRequest{Title: strings.Repeat("x", 256), DurationMinutes: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must be at most 255 characters")
	assert.Contains(t, err.Error(), "duration_minutes must be at least 0")

	err = v.Validate(&relay.ExportRequest{Actions: []meeting.ActionInput{{Assignee: strings.Repeat("a", 300)}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "actions[0].assignee must be at most 255 characters")
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&relay.SummaryRequest{Transcript: "t", Style: "casual"}))
}
