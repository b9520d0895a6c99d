package entities

import "time"

// Meeting pairs a transcript and the user's instructions with the generated
// (or later edited) summary. Rows are created by summary generation and never
// deleted; only the summary column is mutated afterwards.
type Meeting struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Transcript string    `gorm:"type:text" json:"transcript"`
	Prompt     string    `gorm:"type:text" json:"prompt"`
	Summary    string    `gorm:"type:text" json:"summary"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
