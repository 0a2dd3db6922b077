package bookings

import (
	"encoding/json"
	"time"
)

// ConfirmBookingRequest is the body of POST /confirm-booking: the details the
// booking UI collected, sent after the seat writes succeeded.
type ConfirmBookingRequest struct {
	StudentID     string   `json:"studentId" binding:"required"`
	StudentMail   string   `json:"studentMail" binding:"required,email"`
	TripID        string   `json:"tripId" binding:"required"`
	BusID         string   `json:"busId"`
	StartLocation string   `json:"startlocation"`
	Destination   string   `json:"destination"`
	Date          string   `json:"date"`
	DepartureTime string   `json:"departuretime"`
	Seats         []string `json:"seats" binding:"required,min=1"`
}

// Confirmation is the message carried through the pipeline (directly or via
// Kafka) to the email sender.
type Confirmation struct {
	BookingRef    string    `json:"booking_ref"`
	StudentID     string    `json:"student_id"`
	StudentMail   string    `json:"student_mail"`
	TripID        string    `json:"trip_id"`
	BusID         string    `json:"bus_id"`
	StartLocation string    `json:"start_location"`
	Destination   string    `json:"destination"`
	Date          string    `json:"date"`
	DepartureTime string    `json:"departure_time"`
	Seats         []string  `json:"seats"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *Confirmation) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

func ConfirmationFromJSON(data []byte) (*Confirmation, error) {
	var c Confirmation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// PartitionKey routes all confirmations for one student to one partition.
func (c *Confirmation) PartitionKey() string {
	return c.StudentMail
}
