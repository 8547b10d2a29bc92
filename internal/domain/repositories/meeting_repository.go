package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// Upsert inserts the meeting or updates the listed columns on id conflict.
	// An empty column list updates every mutable column.
	Upsert(ctx context.Context, meeting *entities.Meeting, columns []string) error

	// FindByID retrieves a meeting by id. Returns nil, nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListByUser lists a user's meetings, most recently updated first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, error)

	// Delete removes a meeting owned by userID. Returns false when nothing matched.
	Delete(ctx context.Context, id uuid.UUID, userID string) (bool, error)
}

// ActionItemRepository defines persistence operations for a meeting's actions
type ActionItemRepository interface {
	// ReplaceForMeeting deletes the meeting's actions and inserts items in order
	ReplaceForMeeting(ctx context.Context, meetingID uuid.UUID, items []*entities.ActionItem) error

	// ListByMeeting returns the meeting's actions in insertion order
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)
}

// ShareRepository defines persistence operations for share links
type ShareRepository interface {
	// Create persists a share link. Fails when the meeting does not exist.
	Create(ctx context.Context, share *entities.MeetingShare) error

	// FindByToken retrieves a share link with its meeting. Returns nil, nil when absent.
	FindByToken(ctx context.Context, token string) (*entities.MeetingShare, error)
}
