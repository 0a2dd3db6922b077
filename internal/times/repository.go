package times

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *TimeEntry) error
	GetAll(ctx context.Context) ([]TimeEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error)
	Update(ctx context.Context, id uuid.UUID, value string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) GetAll(ctx context.Context) ([]TimeEntry, error) {
	var list []TimeEntry
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error) {
	var entry TimeEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, value string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&TimeEntry{}).Where("id = ?", id).Update("value", value)
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&TimeEntry{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
