package bookings

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// BuildTicketPDF renders a booking confirmation ticket.
func BuildTicketPDF(conf *Confirmation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "University Bus Booking Confirmation")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Reference : %s", conf.BookingRef),
		fmt.Sprintf("Student ID        : %s", conf.StudentID),
		fmt.Sprintf("Email             : %s", conf.StudentMail),
		fmt.Sprintf("Trip              : %s", conf.TripID),
		fmt.Sprintf("Bus               : %s", orDash(conf.BusID)),
		fmt.Sprintf("Route             : %s -> %s", orDash(conf.StartLocation), orDash(conf.Destination)),
		fmt.Sprintf("Date              : %s", orDash(conf.Date)),
		fmt.Sprintf("Departure         : %s", orDash(conf.DepartureTime)),
		fmt.Sprintf("Seats             : %s", strings.Join(conf.Seats, ", ")),
		fmt.Sprintf("Issued            : %s", conf.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation when boarding. Seats are released if the trip's inventory is re-initialized by an administrator.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
