package times

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

var ErrTimeNotFound = errors.New("time entry not found")

type Service interface {
	Create(ctx context.Context, req CreateTimeRequest) (*TimeEntry, error)
	GetAll(ctx context.Context) ([]TimeEntry, error)
	GetByID(ctx context.Context, id string) (*TimeEntry, error)
	Update(ctx context.Context, id string, req UpdateTimeRequest) (*TimeEntry, error)
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

func (s *service) Create(ctx context.Context, req CreateTimeRequest) (*TimeEntry, error) {
	entry := &TimeEntry{
		ID:    uuid.New(),
		Value: req.Time,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	s.invalidate(ctx)
	return entry, nil
}

func (s *service) GetAll(ctx context.Context) ([]TimeEntry, error) {
	var cached []TimeEntry
	if err := s.cache.Get(ctx, constants.CacheKeyTimeList, &cached); err == nil {
		return cached, nil
	}

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	if list == nil {
		list = []TimeEntry{}
	}

	if err := s.cache.Set(ctx, constants.CacheKeyTimeList, list, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache time entry list: %v", err)
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*TimeEntry, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTimeNotFound
	}

	cacheKey := constants.CacheKeyTime + id
	var cached TimeEntry
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeNotFound
		}
		return nil, fmt.Errorf("failed to fetch time entry: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, entry, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache time entry %s: %v", id, err)
	}
	return entry, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTimeRequest) (*TimeEntry, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTimeNotFound
	}

	rows, err := s.repo.Update(ctx, entryID, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}
	if rows == 0 {
		return nil, ErrTimeNotFound
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, entryID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return ErrTimeNotFound
	}

	rows, err := s.repo.Delete(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if rows == 0 {
		return ErrTimeNotFound
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.CachePatternTimes); err != nil {
		log.Printf("Warning: failed to invalidate time entry cache: %v", err)
	}
}
