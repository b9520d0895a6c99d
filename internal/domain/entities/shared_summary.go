package entities

import "time"

// SharedSummary marks that a meeting's summary was emailed to one recipient.
// One row per successful send; rows are immutable and never deleted. The
// meeting reference is not enforced at the database level.
type SharedSummary struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID      int64     `gorm:"index;column:meeting_id" json:"meeting_id"`
	RecipientEmail string    `gorm:"type:text;column:recipient_email" json:"recipient_email"`
	SharedAt       time.Time `gorm:"autoCreateTime;column:shared_at" json:"shared_at"`
}

// TableName specifies the table name for SharedSummary
func (SharedSummary) TableName() string {
	return "shared_summaries"
}
