package trips

// TripRequest is shared by create and update; all six fields are required and
// missing ones are rejected as a batch with no field-level detail.
type TripRequest struct {
	BusID         string `json:"busID" binding:"required"`
	TripID        string `json:"tripID" binding:"required"`
	StartLocation string `json:"startlocation" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	Date          string `json:"date" binding:"required"`
	DepartureTime string `json:"departuretime" binding:"required"`
}
