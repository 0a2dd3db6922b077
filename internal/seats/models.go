package seats

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values for a seat.
const (
	StatusBooked   = "booked"
	StatusUnbooked = "unbooked"
)

// SeatsPerTrip is the fixed inventory size created for every trip.
const SeatsPerTrip = 40

// Seat is one position in a trip's inventory. All trips share one table;
// (trip_id, seat_no) identifies a seat, so the same seat number on two trips
// is an unrelated record. Student fields are non-null only while the seat is
// booked; the write path maintains this, the schema does not.
type Seat struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TripID        string     `gorm:"index;not null;uniqueIndex:idx_trip_seat" json:"tripId"`
	SeatNo        string     `gorm:"not null;uniqueIndex:idx_trip_seat" json:"seatNo"`
	BookingStatus string     `gorm:"type:varchar(20);not null;default:'unbooked'" json:"bookingStatus"`
	StudentID     *string    `json:"studentId"`
	StudentMail   *string    `json:"studentMail"`
	BookingDate   *time.Time `json:"bookingDate"`
	BookingTime   *string    `json:"bookingTime"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "trip_seats"
}

func (s *Seat) IsBooked() bool {
	return s.BookingStatus == StatusBooked
}
