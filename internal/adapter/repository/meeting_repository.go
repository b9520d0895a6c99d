package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts a new meeting row
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its identifier
func (r *meetingRepository) FindByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListSummaries retrieves the list projection, newest first
func (r *meetingRepository) ListSummaries(ctx context.Context) ([]repositories.MeetingListEntry, error) {
	var entries []repositories.MeetingListEntry
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("id", "prompt", "created_at").
		Order("created_at DESC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateSummary replaces the summary of a meeting and returns the number of
// matched rows (zero when the identifier is unknown)
func (r *meetingRepository) UpdateSummary(ctx context.Context, id int64, summary string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("summary", summary)

	return result.RowsAffected, result.Error
}
