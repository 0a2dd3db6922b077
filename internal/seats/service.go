package seats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"unibus/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSeatNotFound           = errors.New("seat not found")
	ErrNoBookings             = errors.New("no bookings found for this student")
	ErrStudentDetailsRequired = errors.New("student details are required for booking")
)

// bookingTimeLayout mirrors a locale clock string ("3:04:05 PM").
const bookingTimeLayout = "3:04:05 PM"

type Service interface {
	// Initialize (re)creates the seat inventory for a trip: any existing
	// rows are deleted first, so re-initialization discards prior bookings.
	Initialize(ctx context.Context, tripID string) error
	List(ctx context.Context, tripID string) ([]Seat, error)
	GetBySeatNo(ctx context.Context, tripID, seatNo string) (*Seat, error)
	ListBooked(ctx context.Context, tripID string) ([]Seat, error)
	ListByStudent(ctx context.Context, tripID, studentID string) ([]Seat, error)
	UpdateOne(ctx context.Context, tripID, seatNo string, req UpdateSeatRequest) (*Seat, error)
	UpdateMany(ctx context.Context, tripID string, updates []BulkSeatUpdate) ([]Seat, error)
	DeleteAll(ctx context.Context, tripID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Initialize(ctx context.Context, tripID string) error {
	if err := s.repo.DeleteByTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to clear existing seats: %w", err)
	}

	seats := make([]Seat, 0, SeatsPerTrip)
	for i := 1; i <= SeatsPerTrip; i++ {
		seats = append(seats, Seat{
			ID:            uuid.New(),
			TripID:        tripID,
			SeatNo:        fmt.Sprintf("%02d", i),
			BookingStatus: StatusUnbooked,
		})
	}

	if err := s.repo.CreateSeats(ctx, seats); err != nil {
		return fmt.Errorf("failed to create seats: %w", err)
	}

	return nil
}

func (s *service) List(ctx context.Context, tripID string) ([]Seat, error) {
	return s.repo.ListByTrip(ctx, tripID)
}

func (s *service) GetBySeatNo(ctx context.Context, tripID, seatNo string) (*Seat, error) {
	seat, err := s.repo.GetBySeatNo(ctx, tripID, seatNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return seat, nil
}

func (s *service) ListBooked(ctx context.Context, tripID string) ([]Seat, error) {
	return s.repo.ListBooked(ctx, tripID)
}

func (s *service) ListByStudent(ctx context.Context, tripID, studentID string) ([]Seat, error) {
	seats, err := s.repo.ListByStudent(ctx, tripID, studentID)
	if err != nil {
		return nil, err
	}
	// An empty result set is a NotFound, not an empty list.
	if len(seats) == 0 {
		return nil, ErrNoBookings
	}
	return seats, nil
}

func (s *service) UpdateOne(ctx context.Context, tripID, seatNo string, req UpdateSeatRequest) (*Seat, error) {
	updates, err := buildSeatUpdates(req)
	if err != nil {
		return nil, err
	}

	// No previously-unbooked check: booking an already-booked seat
	// overwrites the prior occupant. Last write wins.
	rows, err := s.repo.UpdateSeat(ctx, tripID, seatNo, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update seat: %w", err)
	}
	if rows == 0 {
		return nil, ErrSeatNotFound
	}

	logger.GetDefault().LogSeatUpdate(tripID, seatNo, req.BookingStatus)
	return s.GetBySeatNo(ctx, tripID, seatNo)
}

// UpdateMany applies UpdateOne semantics to each entry independently and
// concurrently. If any entry fails, the call fails as a whole, but entries
// whose writes already committed are not rolled back.
func (s *service) UpdateMany(ctx context.Context, tripID string, updates []BulkSeatUpdate) ([]Seat, error) {
	results := make([]Seat, len(updates))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, entry := range updates {
		wg.Add(1)
		go func(i int, entry BulkSeatUpdate) {
			defer wg.Done()

			seat, err := s.UpdateOne(ctx, tripID, entry.SeatNo, UpdateSeatRequest{
				BookingStatus: entry.BookingStatus,
				StudentID:     entry.StudentID,
				StudentMail:   entry.StudentMail,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("seat %s: %w", entry.SeatNo, err)
				}
				return
			}
			results[i] = *seat
		}(i, entry)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (s *service) DeleteAll(ctx context.Context, tripID string) error {
	return s.repo.DeleteByTrip(ctx, tripID)
}

// buildSeatUpdates validates the transition and produces the column updates.
// Booking stamps the current date/time; unbooking resets the student fields
// regardless of what was passed.
func buildSeatUpdates(req UpdateSeatRequest) (map[string]interface{}, error) {
	switch req.BookingStatus {
	case StatusBooked:
		if req.StudentID == "" || req.StudentMail == "" {
			return nil, ErrStudentDetailsRequired
		}
		now := time.Now()
		return map[string]interface{}{
			"booking_status": StatusBooked,
			"student_id":     req.StudentID,
			"student_mail":   req.StudentMail,
			"booking_date":   now,
			"booking_time":   now.Format(bookingTimeLayout),
		}, nil
	case StatusUnbooked:
		return map[string]interface{}{
			"booking_status": StatusUnbooked,
			"student_id":     nil,
			"student_mail":   nil,
			"booking_date":   nil,
			"booking_time":   nil,
		}, nil
	default:
		return nil, fmt.Errorf("invalid booking status %q", req.BookingStatus)
	}
}
