package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	"unibus/internal/seats"
	"unibus/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTripService(t *testing.T) (Service, seats.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Trip{}, &seats.Seat{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	noCache := cache.NewService(nil)
	seatService := seats.NewService(seats.NewRepository(db))
	tripService := NewService(NewRepository(db), seatService, noCache, time.Minute)
	return tripService, seatService
}

func validTripRequest() TripRequest {
	return TripRequest{
		BusID:         "BUS-9",
		TripID:        "TRIP-500",
		StartLocation: "North Campus",
		Destination:   "Central Station",
		Date:          "2026-09-15",
		DepartureTime: "08:30",
	}
}

func TestCreate_InitializesSeatInventory(t *testing.T) {
	tripService, seatService := setupTripService(t)
	ctx := context.Background()

	trip, err := tripService.Create(ctx, validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.TripID != "TRIP-500" {
		t.Fatalf("expected tripID to round-trip, got %q", trip.TripID)
	}

	inventory, err := seatService.List(ctx, trip.TripID)
	if err != nil {
		t.Fatalf("list seats: %v", err)
	}
	if len(inventory) != seats.SeatsPerTrip {
		t.Fatalf("expected %d seats after trip creation, got %d", seats.SeatsPerTrip, len(inventory))
	}
}

func TestCreate_AcceptsBothDateFormats(t *testing.T) {
	tripService, _ := setupTripService(t)
	ctx := context.Background()

	req := validTripRequest()
	req.Date = "2026-09-15T00:00:00Z"
	req.TripID = "TRIP-RFC"
	if _, err := tripService.Create(ctx, req); err != nil {
		t.Fatalf("RFC3339 date rejected: %v", err)
	}

	req = validTripRequest()
	req.Date = "15/09/2026"
	req.TripID = "TRIP-BAD"
	if _, err := tripService.Create(ctx, req); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	tripService, _ := setupTripService(t)
	ctx := context.Background()

	created, err := tripService.Create(ctx, validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	got, err := tripService.GetByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.BusID != created.BusID || got.Destination != created.Destination {
		t.Fatalf("fetched trip does not match created one: %+v", got)
	}

	if _, err := tripService.GetByID(ctx, uuid.New().String()); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("unknown id: expected ErrTripNotFound, got %v", err)
	}
	if _, err := tripService.GetByID(ctx, "not-a-uuid"); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("malformed id: expected ErrTripNotFound, got %v", err)
	}
}

func TestGetByBusID(t *testing.T) {
	tripService, _ := setupTripService(t)
	ctx := context.Background()

	req := validTripRequest()
	if _, err := tripService.Create(ctx, req); err != nil {
		t.Fatalf("create trip: %v", err)
	}
	req.TripID = "TRIP-501"
	if _, err := tripService.Create(ctx, req); err != nil {
		t.Fatalf("create second trip: %v", err)
	}

	trips, err := tripService.GetByBusID(ctx, "BUS-9")
	if err != nil {
		t.Fatalf("get by bus: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips for BUS-9, got %d", len(trips))
	}

	// A bus with no trips is reported as an error, not an empty list.
	if _, err := tripService.GetByBusID(ctx, "BUS-UNKNOWN"); !errors.Is(err, ErrNoTripsForBus) {
		t.Fatalf("expected ErrNoTripsForBus, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	tripService, _ := setupTripService(t)
	ctx := context.Background()

	created, err := tripService.Create(ctx, validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	req := validTripRequest()
	req.Destination = "Airport"
	updated, err := tripService.Update(ctx, created.ID.String(), req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Destination != "Airport" {
		t.Fatalf("expected updated destination, got %q", updated.Destination)
	}

	if _, err := tripService.Update(ctx, uuid.New().String(), req); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("update unknown id: expected ErrTripNotFound, got %v", err)
	}
}

func TestDelete_LeavesSeatInventory(t *testing.T) {
	tripService, seatService := setupTripService(t)
	ctx := context.Background()

	created, err := tripService.Create(ctx, validTripRequest())
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	if err := tripService.Delete(ctx, created.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := tripService.GetByID(ctx, created.ID.String()); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected trip to be gone, got %v", err)
	}

	// Seat rows survive trip deletion; cleanup is a separate call.
	inventory, err := seatService.List(ctx, created.TripID)
	if err != nil {
		t.Fatalf("list seats: %v", err)
	}
	if len(inventory) != seats.SeatsPerTrip {
		t.Fatalf("expected seat inventory to survive, got %d rows", len(inventory))
	}

	if err := tripService.Delete(ctx, created.ID.String()); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("double delete: expected ErrTripNotFound, got %v", err)
	}
}
