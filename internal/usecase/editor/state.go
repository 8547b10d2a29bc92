package editor

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// State is the editor's working copy of one meeting and its action items.
// Reducers never mutate their input; they return the next State.
type State struct {
	Meeting *entities.Meeting
	Actions []*entities.ActionItem
}

// MeetingUpdate is a partial update; nil fields are left unchanged
type MeetingUpdate struct {
	Title           *string
	Transcript      *string
	Notes           *string
	TemplateType    *entities.TemplateType
	SpeakerTags     map[string]string
	DurationMinutes *int
	IsBillable      *bool
}

// SetCurrentMeeting replaces the open meeting
func SetCurrentMeeting(s State, m *entities.Meeting) State {
	return State{Meeting: cloneMeeting(m), Actions: s.Actions}
}

// UpdateMeeting merges u into the open meeting. With no meeting open the
// update is dropped.
func UpdateMeeting(s State, u MeetingUpdate) State {
	if s.Meeting == nil {
		return s
	}
	m := cloneMeeting(s.Meeting)
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Transcript != nil {
		m.Transcript = *u.Transcript
	}
	if u.Notes != nil {
		m.Notes = *u.Notes
	}
	if u.TemplateType != nil {
		m.TemplateType = entities.NormalizeTemplateType(string(*u.TemplateType))
	}
	if u.SpeakerTags != nil {
		tags := make(map[string]string, len(u.SpeakerTags))
		for k, v := range u.SpeakerTags {
			tags[k] = v
		}
		m.SpeakerTags = datatypes.NewJSONType(tags)
	}
	if u.DurationMinutes != nil {
		m.DurationMinutes = *u.DurationMinutes
	}
	if u.IsBillable != nil {
		m.IsBillable = *u.IsBillable
	}
	return State{Meeting: m, Actions: s.Actions}
}

// SetActions replaces the action list
func SetActions(s State, actions []*entities.ActionItem) State {
	return State{Meeting: s.Meeting, Actions: cloneActions(actions)}
}

// AddAction appends one action
func AddAction(s State, a *entities.ActionItem) State {
	if a == nil {
		return s
	}
	next := cloneActions(s.Actions)
	cp := *a
	next = append(next, &cp)
	return State{Meeting: s.Meeting, Actions: next}
}

// RemoveAction drops the action with the given id
func RemoveAction(s State, id uuid.UUID) State {
	next := make([]*entities.ActionItem, 0, len(s.Actions))
	for _, a := range s.Actions {
		if a.ID != id {
			next = append(next, a)
		}
	}
	return State{Meeting: s.Meeting, Actions: next}
}

// ToggleAction flips the completed flag of the action with the given id
func ToggleAction(s State, id uuid.UUID) State {
	next := make([]*entities.ActionItem, len(s.Actions))
	for i, a := range s.Actions {
		if a.ID == id {
			cp := *a
			cp.Completed = !cp.Completed
			next[i] = &cp
			continue
		}
		next[i] = a
	}
	return State{Meeting: s.Meeting, Actions: next}
}

// Clear closes the meeting and drops its actions
func Clear(State) State {
	return State{}
}

// FindAction returns the action with the given id
func (s State) FindAction(id uuid.UUID) (*entities.ActionItem, bool) {
	for _, a := range s.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

func cloneMeeting(m *entities.Meeting) *entities.Meeting {
	if m == nil {
		return nil
	}
	cp := *m
	cp.SpeakerTags = datatypes.NewJSONType(m.Speakers())
	return &cp
}

func cloneActions(in []*entities.ActionItem) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out
}
