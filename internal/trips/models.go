package trips

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a scheduled bus run. StartLocation/Destination/DepartureTime are
// copied strings from the reference tables at creation time; later edits to
// reference data do not propagate here. TripID is caller-generated and unique
// by convention only.
type Trip struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusID         string    `gorm:"not null;index" json:"busID"`
	TripID        string    `gorm:"not null;index" json:"tripID"`
	StartLocation string    `gorm:"not null" json:"startlocation"`
	Destination   string    `gorm:"not null" json:"destination"`
	Date          time.Time `gorm:"not null" json:"date"`
	DepartureTime string    `gorm:"not null" json:"departuretime"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// TableName sets the table name for Trip
func (Trip) TableName() string {
	return "trips"
}
