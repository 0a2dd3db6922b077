package database

import (
	"unibus/internal/locations"
	"unibus/internal/seats"
	"unibus/internal/times"
	"unibus/internal/trips"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&locations.Location{},
		&times.TimeEntry{},
		&trips.Trip{},
		&seats.Seat{},
	)
}
