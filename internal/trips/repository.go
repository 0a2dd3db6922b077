package trips

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetAll(ctx context.Context) ([]Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Trip, error)
	GetByBusID(ctx context.Context, busID string) ([]Trip, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trip *Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *repository) GetAll(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&trips).Error
	return trips, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	var trip Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *repository) GetByBusID(ctx context.Context, busID string) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Where("bus_id = ?", busID).
		Order("date ASC").
		Find(&trips).Error
	return trips, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Trip{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Trip{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
