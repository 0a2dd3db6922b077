package locations

import (
	"time"

	"github.com/google/uuid"
)

// Location is a pickup/drop point offered on trip creation forms. Trips copy
// the name at creation time; there is no foreign key back to this table.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"location"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName sets the table name for Location
func (Location) TableName() string {
	return "locations"
}

type CreateLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

type UpdateLocationRequest struct {
	Location string `json:"location" binding:"required"`
}
