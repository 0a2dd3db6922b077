package seats

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateSeats(ctx context.Context, seats []Seat) error
	ListByTrip(ctx context.Context, tripID string) ([]Seat, error)
	GetBySeatNo(ctx context.Context, tripID, seatNo string) (*Seat, error)
	ListBooked(ctx context.Context, tripID string) ([]Seat, error)
	ListByStudent(ctx context.Context, tripID, studentID string) ([]Seat, error)
	UpdateSeat(ctx context.Context, tripID, seatNo string, updates map[string]interface{}) (int64, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSeats(ctx context.Context, seats []Seat) error {
	return r.db.WithContext(ctx).Create(&seats).Error
}

func (r *repository) ListByTrip(ctx context.Context, tripID string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("seat_no ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetBySeatNo(ctx context.Context, tripID, seatNo string) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).
		First(&seat, "trip_id = ? AND seat_no = ?", tripID, seatNo).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) ListBooked(ctx context.Context, tripID string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND booking_status = ?", tripID, StatusBooked).
		Order("seat_no ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) ListByStudent(ctx context.Context, tripID, studentID string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND student_id = ?", tripID, studentID).
		Order("seat_no ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) UpdateSeat(ctx context.Context, tripID, seatNo string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Seat{}).
		Where("trip_id = ? AND seat_no = ?", tripID, seatNo).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteByTrip(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).Delete(&Seat{}, "trip_id = ?", tripID).Error
}
