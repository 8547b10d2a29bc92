package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository backed by GORM
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

func (r *actionItemRepository) ReplaceForMeeting(ctx context.Context, meetingID uuid.UUID, items []*entities.ActionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i, item := range items {
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			id := meetingID
			item.MeetingID = &id
			item.Position = i
		}
		return tx.Create(&items).Error
	})
}

func (r *actionItemRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}
