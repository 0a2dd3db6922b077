package locations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unibus/internal/shared/constants"
	"unibus/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (*Location, error)
	GetAll(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	// Duplicate names are accepted silently; no uniqueness constraint exists.
	location := &Location{
		ID:   uuid.New(),
		Name: req.Location,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.invalidate(ctx)
	return location, nil
}

func (s *service) GetAll(ctx context.Context) ([]Location, error) {
	var cached []Location
	if err := s.cache.Get(ctx, constants.CacheKeyLocationList, &cached); err == nil {
		return cached, nil
	}

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	if list == nil {
		list = []Location{}
	}

	if err := s.cache.Set(ctx, constants.CacheKeyLocationList, list, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache location list: %v", err)
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Location, error) {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}

	cacheKey := constants.CacheKeyLocation + id
	var cached Location
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	location, err := s.repo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to fetch location: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, location, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache location %s: %v", id, err)
	}
	return location, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}

	rows, err := s.repo.Update(ctx, locationID, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	if rows == 0 {
		return nil, ErrLocationNotFound
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, locationID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return ErrLocationNotFound
	}

	rows, err := s.repo.Delete(ctx, locationID)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if rows == 0 {
		return ErrLocationNotFound
	}

	// Trips reference locations by copied name, so deletion has no cascading
	// effect on existing trips.
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.CachePatternLocations); err != nil {
		log.Printf("Warning: failed to invalidate location cache: %v", err)
	}
}
