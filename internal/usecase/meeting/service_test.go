package meeting

import (
	"context"
	stdErrors "errors"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// fakeMeetings mimics the upsert semantics of the gorm repository
type fakeMeetings struct {
	rows map[uuid.UUID]entities.Meeting
	err  error
}

func (f *fakeMeetings) Upsert(_ context.Context, m *entities.Meeting, columns []string) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.rows[m.ID]
	if !ok {
		f.rows[m.ID] = *m
		return nil
	}
	if existing.UserID != m.UserID {
		return entities.ErrMeetingNotOwned
	}
	for _, c := range columns {
		switch c {
		case "title":
			existing.Title = m.Title
		case "transcript":
			existing.Transcript = m.Transcript
		case "notes":
			existing.Notes = m.Notes
		case "speaker_tags":
			existing.SpeakerTags = m.SpeakerTags
		case "duration_minutes":
			existing.DurationMinutes = m.DurationMinutes
		case "is_billable":
			existing.IsBillable = m.IsBillable
		case "template_type":
			existing.TemplateType = m.TemplateType
		case "updated_at":
			existing.UpdatedAt = m.UpdatedAt
		}
	}
	f.rows[m.ID] = existing
	return nil
}

func (f *fakeMeetings) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMeetings) ListByUser(_ context.Context, userID string, _, _ int) ([]*entities.Meeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.Meeting
	for _, m := range f.rows {
		if m.UserID == userID {
			m := m
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeMeetings) Delete(_ context.Context, id uuid.UUID, userID string) (bool, error) {
	m, ok := f.rows[id]
	if !ok || m.UserID != userID {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

type fakeActions struct {
	rows map[uuid.UUID][]*entities.ActionItem
}

func (f *fakeActions) ReplaceForMeeting(_ context.Context, id uuid.UUID, items []*entities.ActionItem) error {
	f.rows[id] = items
	return nil
}

func (f *fakeActions) ListByMeeting(_ context.Context, id uuid.UUID) ([]*entities.ActionItem, error) {
	return f.rows[id], nil
}

func newTestService() (*meetingService, *fakeMeetings, *fakeActions, *time.Time) {
	m := &fakeMeetings{rows: map[uuid.UUID]entities.Meeting{}}
	a := &fakeActions{rows: map[uuid.UUID][]*entities.ActionItem{}}
	now := time.Date(2025, 10, 24, 9, 0, 0, 0, time.UTC)
	svc := NewMeetingService(m, a, nil).(*meetingService)
	svc.now = func() time.Time { return now }
	return svc, m, a, &now
}

func strPtr(s string) *string { return &s }

func appErr(t *testing.T, err error) errors.AppError {
	t.Helper()
	var ae errors.AppError
	require.True(t, stdErrors.As(err, &ae), "expected AppError, got %v", err)
	return ae
}

func TestSave_InsertThenKeepChoices(t *testing.T) {
	svc, _, _, now := newTestService()
	ctx := context.Background()
	id := uuid.New()

	saved, err := svc.Save(ctx, "u1", id, SaveInput{
		Title:        "  ",
		Transcript:   strPtr("[00:00] hi"),
		Notes:        strPtr("USER NOTES:\nx"),
		SpeakerTags:  map[string]string{"Speaker 1": "Ana"},
		TemplateType: "daily-standup",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultMeetingTitle, saved.Title)
	assert.Equal(t, entities.TemplateProfessional, saved.TemplateType)
	assert.Equal(t, "Ana", saved.Speakers()["Speaker 1"])

	// transcript not kept on the second save
	*now = now.Add(time.Minute)
	saved, err = svc.Save(ctx, "u1", id, SaveInput{
		Title:        "Standup",
		Notes:        strPtr("new notes"),
		TemplateType: "academic",
	})
	require.NoError(t, err)
	assert.Equal(t, "Standup", saved.Title)
	assert.Equal(t, "[00:00] hi", saved.Transcript)
	assert.Equal(t, "new notes", saved.Notes)
	assert.Equal(t, entities.TemplateAcademic, saved.TemplateType)
	assert.Equal(t, *now, saved.UpdatedAt)
}

func TestSave_OtherOwner(t *testing.T) {
	svc, _, _, _ := newTestService()
	id := uuid.New()
	_, err := svc.Save(context.Background(), "u1", id, SaveInput{Title: "mine"})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), "u2", id, SaveInput{Title: "stolen"})
	assert.Equal(t, http.StatusNotFound, appErr(t, err).HTTPCode)

	m, _, err := svc.Get(context.Background(), "u1", id)
	require.NoError(t, err)
	assert.Equal(t, "mine", m.Title)
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _, now := newTestService()
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	_, err := svc.Save(ctx, "u1", first, SaveInput{Title: "first"})
	require.NoError(t, err)
	*now = now.Add(time.Hour)
	_, err = svc.Save(ctx, "u1", second, SaveInput{Title: "second"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, "u2", uuid.New(), SaveInput{Title: "other"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)

	empty, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestGetAndDelete_Scoped(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()
	id := uuid.New()
	_, err := svc.Save(ctx, "u1", id, SaveInput{})
	require.NoError(t, err)

	_, _, err = svc.Get(ctx, "u2", id)
	assert.Equal(t, errors.ErrorCode_MEETING_NOT_FOUND, appErr(t, err).Code)

	err = svc.Delete(ctx, "u2", id)
	assert.Equal(t, http.StatusNotFound, appErr(t, err).HTTPCode)

	require.NoError(t, svc.Delete(ctx, "u1", id))
	_, _, err = svc.Get(ctx, "u1", id)
	assert.Equal(t, http.StatusNotFound, appErr(t, err).HTTPCode)
}

func TestReplaceActions(t *testing.T) {
	svc, _, actions, _ := newTestService()
	ctx := context.Background()
	id := uuid.New()
	_, err := svc.Save(ctx, "u1", id, SaveInput{})
	require.NoError(t, err)

	keep := entities.NewActionItem("Ship it")
	keep.Completed = true
	items, err := svc.ReplaceActions(ctx, "u1", id, []*entities.ActionItem{
		keep,
		nil,
		{ActionText: " ", Assignee: " ", DueDate: "tomorrow"},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, keep.ID, items[0].ID)
	assert.True(t, items[0].Completed)
	assert.NotEqual(t, uuid.Nil, items[1].ID)
	assert.Equal(t, "No description", items[1].ActionText)
	assert.Equal(t, "Unassigned", items[1].Assignee)
	assert.Empty(t, items[1].DueDate)
	assert.Len(t, actions.rows[id], 2)

	_, err = svc.ReplaceActions(ctx, "u2", id, nil)
	assert.Equal(t, http.StatusNotFound, appErr(t, err).HTTPCode)

	_, got, err := svc.Get(ctx, "u1", id)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestList_StoreError(t *testing.T) {
	svc, meetings, _, _ := newTestService()
	meetings.err = stdErrors.New("db down")
	_, err := svc.List(context.Background(), "u1")
	assert.Equal(t, errors.ErrorCode_DB_QUERY_FAILED, appErr(t, err).Code)
}
