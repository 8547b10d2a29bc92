package meeting

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// SaveInput is a meeting save. Nil Transcript or Notes leave the stored
// value untouched, which is how the keep transcript / keep notes choices
// are expressed.
type SaveInput struct {
	Title           string
	Transcript      *string
	Notes           *string
	SpeakerTags     map[string]string
	DurationMinutes int
	IsBillable      bool
	TemplateType    string
}

// Service manages a user's saved meetings
type Service interface {
	List(ctx context.Context, userID string) ([]*entities.Meeting, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, []*entities.ActionItem, error)
	Save(ctx context.Context, userID string, id uuid.UUID, in SaveInput) (*entities.Meeting, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	ReplaceActions(ctx context.Context, userID string, id uuid.UUID, items []*entities.ActionItem) ([]*entities.ActionItem, error)
}

type meetingService struct {
	meetings repositories.MeetingRepository
	actions  repositories.ActionItemRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewMeetingService creates the meeting service
func NewMeetingService(meetings repositories.MeetingRepository, actions repositories.ActionItemRepository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &meetingService{meetings: meetings, actions: actions, logger: logger, now: time.Now}
}

// List returns the user's meetings, most recently updated first
func (s *meetingService) List(ctx context.Context, userID string) ([]*entities.Meeting, error) {
	meetings, err := s.meetings.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list meetings", err)
	}
	if meetings == nil {
		meetings = []*entities.Meeting{}
	}
	return meetings, nil
}

func (s *meetingService) Get(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, []*entities.ActionItem, error) {
	m, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.actions.ListByMeeting(ctx, id)
	if err != nil {
		return nil, nil, errors.ErrDBQueryFailed("list actions", err)
	}
	if items == nil {
		items = []*entities.ActionItem{}
	}
	return m, items, nil
}

// Save upserts the meeting keyed by id. Another user's meeting with the same
// id is reported as not found.
func (s *meetingService) Save(ctx context.Context, userID string, id uuid.UUID, in SaveInput) (*entities.Meeting, error) {
	m := &entities.Meeting{
		ID:              id,
		UserID:          userID,
		Title:           strings.TrimSpace(in.Title),
		SpeakerTags:     datatypes.NewJSONType(copyTags(in.SpeakerTags)),
		DurationMinutes: in.DurationMinutes,
		IsBillable:      in.IsBillable,
		TemplateType:    entities.NormalizeTemplateType(in.TemplateType),
		UpdatedAt:       s.now().UTC(),
	}
	if m.Title == "" {
		m.Title = entities.DefaultMeetingTitle
	}
	if m.DurationMinutes < 0 {
		m.DurationMinutes = 0
	}

	columns := []string{"title", "speaker_tags", "duration_minutes", "is_billable", "template_type", "updated_at"}
	if in.Transcript != nil {
		m.Transcript = *in.Transcript
		columns = append(columns, "transcript")
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
		columns = append(columns, "notes")
	}
	m.CreatedAt = m.UpdatedAt

	if err := s.meetings.Upsert(ctx, m, columns); err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotOwned) {
			return nil, errors.ErrMeetingNotFound(id.String())
		}
		return nil, errors.ErrDBQueryFailed("upsert meeting", err)
	}

	saved, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting", err)
	}
	if saved == nil {
		return nil, errors.ErrMeetingNotFound(id.String())
	}

	s.logger.Info("meeting saved",
		zap.String("meeting_id", id.String()),
		zap.Strings("columns", columns),
	)
	return saved, nil
}

func (s *meetingService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	deleted, err := s.meetings.Delete(ctx, id, userID)
	if err != nil {
		return errors.ErrDBQueryFailed("delete meeting", err)
	}
	if !deleted {
		return errors.ErrMeetingNotFound(id.String())
	}
	s.logger.Info("meeting deleted", zap.String("meeting_id", id.String()))
	return nil
}

// ReplaceActions swaps the meeting's action list wholesale. Items are
// normalised the same way extracted actions are.
func (s *meetingService) ReplaceActions(ctx context.Context, userID string, id uuid.UUID, items []*entities.ActionItem) ([]*entities.ActionItem, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}

	clean := NormalizeActions(items)
	if err := s.actions.ReplaceForMeeting(ctx, id, clean); err != nil {
		return nil, errors.ErrDBQueryFailed("replace actions", err)
	}
	return clean, nil
}

func (s *meetingService) owned(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting", err)
	}
	if m == nil || m.UserID != userID {
		return nil, errors.ErrMeetingNotFound(id.String())
	}
	return m, nil
}

// NormalizeActions drops nil items, assigns missing ids and applies the
// description, assignee and due date defaults
func NormalizeActions(items []*entities.ActionItem) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		a := *it
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		a.ActionText = strings.TrimSpace(a.ActionText)
		if a.ActionText == "" {
			a.ActionText = "No description"
		}
		a.Assignee = strings.TrimSpace(a.Assignee)
		if a.Assignee == "" {
			a.Assignee = entities.DefaultAssignee
		}
		if !entities.ValidDueDate(a.DueDate) {
			a.DueDate = ""
		}
		out = append(out, &a)
	}
	return out
}

func copyTags(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
