package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// shareRepository implements the ShareRepository interface
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new share link repository
func NewShareRepository(db *gorm.DB) repositories.ShareRepository {
	return &shareRepository{db: db}
}

// Create inserts a share link. The meeting_id foreign key rejects unknown meetings.
func (r *shareRepository) Create(ctx context.Context, share *entities.MeetingShare) error {
	return r.db.WithContext(ctx).Omit("Meeting").Create(share).Error
}

// FindByToken retrieves a share link and the meeting it points at
func (r *shareRepository) FindByToken(ctx context.Context, token string) (*entities.MeetingShare, error) {
	var share entities.MeetingShare
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("share_token = ?", token).
		First(&share).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}
