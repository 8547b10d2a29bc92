package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

func TestFormattedNotes(t *testing.T) {
	tmpl := entities.TemplateFor(entities.TemplateProfessional)
	sections := map[string]string{
		"decisionsMade":    "Ship Friday",
		"executiveSummary": "We agreed to ship.",
		"parkingLot":       "   ",
		"unknownKey":       "ignored",
	}

	got := FormattedNotes("remember the budget", tmpl, sections)
	assert.Equal(t,
		"USER NOTES:\nremember the budget\n\n"+
			"EXTRACTED DETAILS:\n\n"+
			"Executive Summary:\nWe agreed to ship.\n\n"+
			"Decisions Made:\nShip Friday",
		got)
}

func TestFormattedNotes_Empty(t *testing.T) {
	tmpl := entities.TemplateFor(entities.TemplateAcademic)
	assert.Equal(t, "", FormattedNotes("  ", tmpl, nil))
	assert.Equal(t, "USER NOTES:\nonly mine\n\n", FormattedNotes("only mine", tmpl, map[string]string{}))
}

func TestMergeSections(t *testing.T) {
	prev := map[string]string{"a": "1", "b": "2"}
	out := MergeSections(prev, map[string]string{"b": "3", "c": "4"})
	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, out)
	assert.Equal(t, "2", prev["b"])
}

func TestEmailDraft(t *testing.T) {
	m := entities.NewMeeting("u")
	m.Title = "Planning"
	m.Transcript = "[00:00] hi"
	s := SetCurrentMeeting(State{}, m)
	a := entities.NewActionItem("Write plan")
	a.Assignee = "Ana"
	s = AddAction(s, a)

	e := EmailDraft(s, "", map[string]string{"nextMeeting": "Tuesday"})
	assert.Equal(t, "Meeting Notes: Planning", e.Subject)
	assert.Contains(t, e.Body, "TRANSCRIPT:\n[00:00] hi\n\n")
	assert.Contains(t, e.Body, "EXTRACTED MEETING DETAILS:\n\nNext Meeting:\nTuesday\n\n")
	assert.Contains(t, e.Body, "- Write plan (Assignee: Ana, Due: Not set)\n")
	assert.NotContains(t, e.Body, "YOUR NOTES")

	link := e.MailtoURL()
	assert.True(t, strings.HasPrefix(link, "mailto:?subject=Meeting%20Notes%3A%20Planning&body="))
	assert.NotContains(t, link, "+")
}
