package presenter

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func TestToActionResponse_NullDueDate(t *testing.T) {
	a := entities.NewActionItem("Write docs")
	b, err := json.Marshal(ToActionResponse(a))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"due_date":null`)
	assert.Contains(t, string(b), `"assignee":"Unassigned"`)
	assert.Contains(t, string(b), `"completed":false`)

	a.DueDate = "2025-01-02"
	assert.Equal(t, "2025-01-02", *ToActionResponse(a).DueDate)
}

func TestFromActionInputs(t *testing.T) {
	keep := uuid.New()
	items := FromActionInputs([]meeting.ActionInput{
		{ID: keep.String(), ActionText: "a", Completed: true},
		{ID: "client-1", ActionText: "b"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, keep, items[0].ID)
	assert.True(t, items[0].Completed)
	assert.NotEqual(t, uuid.Nil, items[1].ID)
}

func TestListsNeverNil(t *testing.T) {
	assert.NotNil(t, ToMeetingListResponse(nil))
	assert.NotNil(t, ToActionResponses(nil))

	m := entities.NewMeeting("u")
	m.TagSpeaker("Speaker 1", "Ana")
	got := ToMeetingListResponse([]*entities.Meeting{m, nil})
	require.Len(t, got, 1)
	assert.Equal(t, map[string]string{"Speaker 1": "Ana"}, got[0].SpeakerTags)
}
