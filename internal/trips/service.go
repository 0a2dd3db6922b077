package trips

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unibus/internal/seats"
	"unibus/internal/shared/constants"
	"unibus/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrNoTripsForBus = errors.New("no trips found for this bus")
	ErrInvalidDate   = errors.New("invalid trip date")
)

// Accepted formats for the date field.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type Service interface {
	Create(ctx context.Context, req TripRequest) (*Trip, error)
	GetAll(ctx context.Context) ([]Trip, error)
	GetByID(ctx context.Context, id string) (*Trip, error)
	GetByBusID(ctx context.Context, busID string) ([]Trip, error)
	Update(ctx context.Context, id string, req TripRequest) (*Trip, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	seatService seats.Service
	cache       cache.Service
	cacheTTL    time.Duration
}

func NewService(repo Repository, seatService seats.Service, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:        repo,
		seatService: seatService,
		cache:       cacheService,
		cacheTTL:    cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, req TripRequest) (*Trip, error) {
	date, err := parseTripDate(req.Date)
	if err != nil {
		return nil, err
	}

	// No collision check on the caller-generated trip identifier.
	trip := &Trip{
		ID:            uuid.New(),
		BusID:         req.BusID,
		TripID:        req.TripID,
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		Date:          date,
		DepartureTime: req.DepartureTime,
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	// Seat inventory is created alongside the trip. The trip row is not
	// rolled back if this fails; seats can be re-initialized explicitly.
	if err := s.seatService.Initialize(ctx, trip.TripID); err != nil {
		return nil, fmt.Errorf("failed to initialize seats for trip %s: %w", trip.TripID, err)
	}

	s.invalidate(ctx)
	return trip, nil
}

func (s *service) GetAll(ctx context.Context) ([]Trip, error) {
	var cached []Trip
	if err := s.cache.Get(ctx, constants.CacheKeyTripList, &cached); err == nil {
		return cached, nil
	}

	trips, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	if trips == nil {
		trips = []Trip{}
	}

	if err := s.cache.Set(ctx, constants.CacheKeyTripList, trips, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache trip list: %v", err)
	}
	return trips, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTripNotFound
	}

	cacheKey := constants.CacheKeyTrip + id
	var cached Trip
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, trip, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache trip %s: %v", id, err)
	}
	return trip, nil
}

func (s *service) GetByBusID(ctx context.Context, busID string) ([]Trip, error) {
	cacheKey := constants.CacheKeyTripsByBus + busID
	var cached []Trip
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	trips, err := s.repo.GetByBusID(ctx, busID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips by bus: %w", err)
	}
	// Empty result set is a NotFound, not an empty list.
	if len(trips) == 0 {
		return nil, ErrNoTripsForBus
	}

	if err := s.cache.Set(ctx, cacheKey, trips, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache trips for bus %s: %v", busID, err)
	}
	return trips, nil
}

func (s *service) Update(ctx context.Context, id string, req TripRequest) (*Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTripNotFound
	}

	date, err := parseTripDate(req.Date)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"bus_id":         req.BusID,
		"trip_id":        req.TripID,
		"start_location": req.StartLocation,
		"destination":    req.Destination,
		"date":           date,
		"departure_time": req.DepartureTime,
	}

	rows, err := s.repo.Update(ctx, tripID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	if rows == 0 {
		return nil, ErrTripNotFound
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, tripID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return ErrTripNotFound
	}

	rows, err := s.repo.Delete(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if rows == 0 {
		return ErrTripNotFound
	}

	// No cascading delete of the trip's seat inventory; orphaned seat rows
	// remain until DeleteAll is called for that trip identifier.
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.CachePatternTrips); err != nil {
		log.Printf("Warning: failed to invalidate trip cache: %v", err)
	}
}

func parseTripDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
