package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func TestReducers(t *testing.T) {
	m := entities.NewMeeting("user-1")
	s := SetCurrentMeeting(State{}, m)
	require.NotNil(t, s.Meeting)
	assert.NotSame(t, m, s.Meeting)

	title := "Weekly sync"
	transcript := "[00:01] hello"
	tmpl := entities.TemplateType("1-on-1")
	next := UpdateMeeting(s, MeetingUpdate{Title: &title, Transcript: &transcript, TemplateType: &tmpl})
	assert.Equal(t, "Weekly sync", next.Meeting.Title)
	assert.Equal(t, "[00:01] hello", next.Meeting.Transcript)
	assert.Equal(t, entities.TemplateProfessional, next.Meeting.TemplateType)
	assert.Equal(t, entities.DefaultMeetingTitle, s.Meeting.Title, "input state must not change")

	a := entities.NewActionItem("Send deck")
	b := entities.NewActionItem("Book room")
	next = AddAction(AddAction(next, a), b)
	require.Len(t, next.Actions, 2)

	toggled := ToggleAction(next, a.ID)
	got, ok := toggled.FindAction(a.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
	orig, _ := next.FindAction(a.ID)
	assert.False(t, orig.Completed)

	removed := RemoveAction(toggled, a.ID)
	require.Len(t, removed.Actions, 1)
	assert.Equal(t, b.ID, removed.Actions[0].ID)

	cleared := Clear(removed)
	assert.Nil(t, cleared.Meeting)
	assert.Empty(t, cleared.Actions)
}

func TestUpdateMeeting_NoMeetingOpen(t *testing.T) {
	title := "x"
	s := UpdateMeeting(State{}, MeetingUpdate{Title: &title})
	assert.Nil(t, s.Meeting)
}

func TestUpdateMeeting_SpeakerTagsCopied(t *testing.T) {
	s := SetCurrentMeeting(State{}, entities.NewMeeting("u"))
	tags := map[string]string{"Speaker A": "Ana"}
	s = UpdateMeeting(s, MeetingUpdate{SpeakerTags: tags})
	tags["Speaker A"] = "Bob"
	assert.Equal(t, "Ana", s.Meeting.Speakers()["Speaker A"])
}
