package locations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, location *Location) error
	GetAll(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	Update(ctx context.Context, id uuid.UUID, name string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, location *Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *repository) GetAll(ctx context.Context) ([]Location, error) {
	var list []Location
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	var location Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, name string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Location{}).Where("id = ?", id).Update("name", name)
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Location{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
