package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
)

// shareRepository implements the ShareRepository interface
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *gorm.DB) repositories.ShareRepository {
	return &shareRepository{db: db}
}

// RecordShare inserts one share record for a delivered summary
func (r *shareRepository) RecordShare(ctx context.Context, meetingID int64, recipientEmail string) error {
	record := entities.SharedSummary{
		MeetingID:      meetingID,
		RecipientEmail: recipientEmail,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}
