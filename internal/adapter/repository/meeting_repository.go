package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// mutable columns written by an upsert when the caller does not narrow them
var meetingColumns = []string{
	"title",
	"transcript",
	"notes",
	"speaker_tags",
	"duration_minutes",
	"is_billable",
	"template_type",
	"updated_at",
}

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Upsert inserts or updates a meeting keyed by id. The conflict update is
// restricted to rows owned by the same user.
func (r *meetingRepository) Upsert(ctx context.Context, meeting *entities.Meeting, columns []string) error {
	if len(columns) == 0 {
		columns = meetingColumns
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "meetings", Name: "user_id"}, Value: meeting.UserID},
		}},
	}).Create(meeting)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotOwned
	}
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// ListByUser retrieves all meetings owned by a user
func (r *meetingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// Delete removes a meeting; its shares and actions cascade
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Meeting{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
