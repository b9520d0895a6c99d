package repositories

import (
	"context"
	"time"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
)

// MeetingListEntry is the list projection for meetings. Transcript and
// summary text are intentionally excluded.
type MeetingListEntry struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// Create inserts a new meeting and fills in its generated identifier.
	Create(ctx context.Context, meeting *entities.Meeting) error
	// FindByID returns the full meeting row, or gorm.ErrRecordNotFound.
	FindByID(ctx context.Context, id int64) (*entities.Meeting, error)
	// ListSummaries returns the list projection ordered newest first.
	ListSummaries(ctx context.Context) ([]MeetingListEntry, error)
	// UpdateSummary replaces the summary text and reports how many rows
	// matched the identifier.
	UpdateSummary(ctx context.Context, id int64, summary string) (int64, error)
}

// ShareRepository records summary shares
type ShareRepository interface {
	// RecordShare inserts one share record; callers do not consume the
	// generated identifier.
	RecordShare(ctx context.Context, meetingID int64, recipientEmail string) error
}
