package seats

// UpdateSeatRequest is the body of a single booking-state transition.
// Student fields are required only when booking; the service enforces that.
type UpdateSeatRequest struct {
	BookingStatus string `json:"bookingStatus" binding:"required,oneof=booked unbooked"`
	StudentID     string `json:"studentId"`
	StudentMail   string `json:"studentMail"`
}

// BulkSeatUpdate is one entry of a bulk update.
type BulkSeatUpdate struct {
	SeatNo        string `json:"seatNo" binding:"required"`
	BookingStatus string `json:"bookingStatus" binding:"required,oneof=booked unbooked"`
	StudentID     string `json:"studentId"`
	StudentMail   string `json:"studentMail"`
}

type BulkUpdateRequest struct {
	Seats []BulkSeatUpdate `json:"seats" binding:"required,min=1,dive"`
}
