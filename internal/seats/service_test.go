package seats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeatService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Keep everything on one connection so every goroutine sees the same
	// in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Seat{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewService(NewRepository(db))
}

func TestInitialize_CreatesFullInventory(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	seats, err := svc.List(ctx, "TRIP-100")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(seats) != SeatsPerTrip {
		t.Fatalf("expected %d seats, got %d", SeatsPerTrip, len(seats))
	}

	for i, seat := range seats {
		want := fmt.Sprintf("%02d", i+1)
		if seat.SeatNo != want {
			t.Errorf("seat %d: expected seat_no %q, got %q", i, want, seat.SeatNo)
		}
		if seat.BookingStatus != StatusUnbooked {
			t.Errorf("seat %s: expected status %q, got %q", seat.SeatNo, StatusUnbooked, seat.BookingStatus)
		}
		if seat.StudentID != nil || seat.StudentMail != nil {
			t.Errorf("seat %s: expected no student details on creation", seat.SeatNo)
		}
	}
}

func TestInitialize_ReinitDiscardsBookings(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	_, err := svc.UpdateOne(ctx, "TRIP-100", "07", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S123",
		StudentMail:   "s123@uni.edu",
	})
	if err != nil {
		t.Fatalf("book seat: %v", err)
	}

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}

	seats, err := svc.List(ctx, "TRIP-100")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(seats) != SeatsPerTrip {
		t.Fatalf("expected %d seats after re-init, got %d", SeatsPerTrip, len(seats))
	}
	for _, seat := range seats {
		if seat.BookingStatus != StatusUnbooked {
			t.Fatalf("seat %s still %s after re-init", seat.SeatNo, seat.BookingStatus)
		}
	}
}

func TestInitialize_TripsDoNotShareSeats(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	for _, tripID := range []string{"TRIP-A", "TRIP-B"} {
		if err := svc.Initialize(ctx, tripID); err != nil {
			t.Fatalf("initialize %s: %v", tripID, err)
		}
	}

	if _, err := svc.UpdateOne(ctx, "TRIP-A", "01", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S1",
		StudentMail:   "s1@uni.edu",
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	other, err := svc.GetBySeatNo(ctx, "TRIP-B", "01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if other.BookingStatus != StatusUnbooked {
		t.Fatalf("booking on TRIP-A leaked into TRIP-B seat 01")
	}
}

func TestUpdateOne_BookStampsStudentDetails(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	seat, err := svc.UpdateOne(ctx, "TRIP-100", "05", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S42",
		StudentMail:   "s42@uni.edu",
	})
	if err != nil {
		t.Fatalf("book seat: %v", err)
	}

	if !seat.IsBooked() {
		t.Fatalf("expected booked seat, got status %q", seat.BookingStatus)
	}
	if seat.StudentID == nil || *seat.StudentID != "S42" {
		t.Errorf("studentId not recorded: %v", seat.StudentID)
	}
	if seat.StudentMail == nil || *seat.StudentMail != "s42@uni.edu" {
		t.Errorf("studentMail not recorded: %v", seat.StudentMail)
	}
	if seat.BookingDate == nil {
		t.Error("bookingDate not stamped")
	}
	if seat.BookingTime == nil {
		t.Fatal("bookingTime not stamped")
	}
	if _, err := time.Parse(bookingTimeLayout, *seat.BookingTime); err != nil {
		t.Errorf("bookingTime %q does not match layout %q: %v", *seat.BookingTime, bookingTimeLayout, err)
	}
}

func TestUpdateOne_UnbookClearsStudentDetails(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if _, err := svc.UpdateOne(ctx, "TRIP-100", "05", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S42",
		StudentMail:   "s42@uni.edu",
	}); err != nil {
		t.Fatalf("book seat: %v", err)
	}

	// Stray student fields on an unbook request are ignored.
	seat, err := svc.UpdateOne(ctx, "TRIP-100", "05", UpdateSeatRequest{
		BookingStatus: StatusUnbooked,
		StudentID:     "S99",
		StudentMail:   "s99@uni.edu",
	})
	if err != nil {
		t.Fatalf("unbook seat: %v", err)
	}

	if seat.BookingStatus != StatusUnbooked {
		t.Fatalf("expected unbooked, got %q", seat.BookingStatus)
	}
	if seat.StudentID != nil || seat.StudentMail != nil || seat.BookingDate != nil || seat.BookingTime != nil {
		t.Fatalf("student details not cleared: %+v", seat)
	}
}

func TestUpdateOne_BookWithoutStudentDetails(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	_, err := svc.UpdateOne(ctx, "TRIP-100", "05", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S42",
	})
	if !errors.Is(err, ErrStudentDetailsRequired) {
		t.Fatalf("expected ErrStudentDetailsRequired, got %v", err)
	}

	// The failed request must not have touched the row.
	seat, err := svc.GetBySeatNo(ctx, "TRIP-100", "05")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if seat.BookingStatus != StatusUnbooked || seat.StudentID != nil {
		t.Fatalf("seat mutated by rejected request: %+v", seat)
	}
}

func TestUpdateOne_UnknownSeat(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	_, err := svc.UpdateOne(ctx, "TRIP-100", "99", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "S42",
		StudentMail:   "s42@uni.edu",
	})
	if !errors.Is(err, ErrSeatNotFound) {
		t.Fatalf("expected ErrSeatNotFound, got %v", err)
	}
}

func TestUpdateOne_RebookOverwritesPriorStudent(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if _, err := svc.UpdateOne(ctx, "TRIP-100", "11", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "FIRST",
		StudentMail:   "first@uni.edu",
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// A second booking for the same seat succeeds and replaces the
	// occupant. There is no already-booked guard.
	seat, err := svc.UpdateOne(ctx, "TRIP-100", "11", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "SECOND",
		StudentMail:   "second@uni.edu",
	})
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if seat.StudentID == nil || *seat.StudentID != "SECOND" {
		t.Fatalf("expected last write to win, seat held by %v", seat.StudentID)
	}
}

func TestListBooked_ReturnsOnlyBookedInSeatOrder(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	for _, seatNo := range []string{"22", "03", "15"} {
		if _, err := svc.UpdateOne(ctx, "TRIP-100", seatNo, UpdateSeatRequest{
			BookingStatus: StatusBooked,
			StudentID:     "S1",
			StudentMail:   "s1@uni.edu",
		}); err != nil {
			t.Fatalf("book %s: %v", seatNo, err)
		}
	}

	booked, err := svc.ListBooked(ctx, "TRIP-100")
	if err != nil {
		t.Fatalf("list booked: %v", err)
	}
	if len(booked) != 3 {
		t.Fatalf("expected 3 booked seats, got %d", len(booked))
	}
	for i, want := range []string{"03", "15", "22"} {
		if booked[i].SeatNo != want {
			t.Errorf("position %d: expected %q, got %q", i, want, booked[i].SeatNo)
		}
	}
}

func TestListByStudent(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	for _, seatNo := range []string{"01", "02"} {
		if _, err := svc.UpdateOne(ctx, "TRIP-100", seatNo, UpdateSeatRequest{
			BookingStatus: StatusBooked,
			StudentID:     "S7",
			StudentMail:   "s7@uni.edu",
		}); err != nil {
			t.Fatalf("book %s: %v", seatNo, err)
		}
	}
	if _, err := svc.UpdateOne(ctx, "TRIP-100", "03", UpdateSeatRequest{
		BookingStatus: StatusBooked,
		StudentID:     "OTHER",
		StudentMail:   "other@uni.edu",
	}); err != nil {
		t.Fatalf("book 03: %v", err)
	}

	mine, err := svc.ListByStudent(ctx, "TRIP-100", "S7")
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 seats for S7, got %d", len(mine))
	}

	// No bookings is reported as an error, not an empty list.
	_, err = svc.ListByStudent(ctx, "TRIP-100", "NOBODY")
	if !errors.Is(err, ErrNoBookings) {
		t.Fatalf("expected ErrNoBookings, got %v", err)
	}
}

func TestUpdateMany_UpdatesAllSeats(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	updates := []BulkSeatUpdate{
		{SeatNo: "01", BookingStatus: StatusBooked, StudentID: "S1", StudentMail: "s1@uni.edu"},
		{SeatNo: "02", BookingStatus: StatusBooked, StudentID: "S1", StudentMail: "s1@uni.edu"},
		{SeatNo: "03", BookingStatus: StatusBooked, StudentID: "S1", StudentMail: "s1@uni.edu"},
	}

	results, err := svc.UpdateMany(ctx, "TRIP-100", updates)
	if err != nil {
		t.Fatalf("bulk update: %v", err)
	}
	if len(results) != len(updates) {
		t.Fatalf("expected %d results, got %d", len(updates), len(results))
	}
	for i, seat := range results {
		if seat.SeatNo != updates[i].SeatNo {
			t.Errorf("result %d: expected seat %q, got %q", i, updates[i].SeatNo, seat.SeatNo)
		}
		if !seat.IsBooked() {
			t.Errorf("seat %s not booked", seat.SeatNo)
		}
	}
}

func TestUpdateMany_PartialFailureKeepsCommittedWrites(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	_, err := svc.UpdateMany(ctx, "TRIP-100", []BulkSeatUpdate{
		{SeatNo: "04", BookingStatus: StatusBooked, StudentID: "S1", StudentMail: "s1@uni.edu"},
		{SeatNo: "99", BookingStatus: StatusBooked, StudentID: "S1", StudentMail: "s1@uni.edu"},
	})
	if err == nil {
		t.Fatal("expected bulk update to fail on unknown seat")
	}
	if !errors.Is(err, ErrSeatNotFound) {
		t.Fatalf("expected ErrSeatNotFound in chain, got %v", err)
	}

	// The valid entry is not rolled back when a sibling fails.
	seat, err := svc.GetBySeatNo(ctx, "TRIP-100", "04")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !seat.IsBooked() {
		t.Fatal("committed write was lost after partial failure")
	}
}

func TestDeleteAll_RemovesInventory(t *testing.T) {
	svc := setupSeatService(t)
	ctx := context.Background()

	if err := svc.Initialize(ctx, "TRIP-100"); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := svc.DeleteAll(ctx, "TRIP-100"); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	seats, err := svc.List(ctx, "TRIP-100")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(seats) != 0 {
		t.Fatalf("expected empty inventory, got %d seats", len(seats))
	}
}
