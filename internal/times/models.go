package times

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is a departure time-of-day slot, stored as the raw string the
// admin entered.
type TimeEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Value     string    `gorm:"not null" json:"time"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName sets the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}

type CreateTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type UpdateTimeRequest struct {
	Time string `json:"time" binding:"required"`
}
