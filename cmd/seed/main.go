package main

import (
	"context"
	"fmt"
	"log"

	"unibus/internal/locations"
	"unibus/internal/seats"
	"unibus/internal/shared/config"
	"unibus/internal/shared/database"
	"unibus/internal/times"
	"unibus/internal/trips"
	"unibus/pkg/cache"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Unibus Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"trip_seats",
		"trips",
		"time_entries",
		"locations",
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// SeedAll seeds reference data and a handful of trips with full seat inventories
func (s *Seeder) SeedAll(cfg *config.Config) error {
	ctx := context.Background()
	noCache := cache.NewService(nil)

	if err := s.SeedLocations(ctx, noCache, cfg); err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	if err := s.SeedTimes(ctx, noCache, cfg); err != nil {
		return fmt.Errorf("failed to seed times: %w", err)
	}

	if err := s.SeedTrips(ctx, noCache, cfg); err != nil {
		return fmt.Errorf("failed to seed trips: %w", err)
	}

	return nil
}

func (s *Seeder) SeedLocations(ctx context.Context, noCache cache.Service, cfg *config.Config) error {
	svc := locations.NewService(locations.NewRepository(s.db.GetPostgreSQL()), noCache, cfg.Redis.ReferenceTTL)

	names := []string{
		"North Campus",
		"South Campus",
		"Central Station",
		"University Library",
		"Engineering Block",
		"City Mall",
	}

	for _, name := range names {
		if _, err := svc.Create(ctx, locations.CreateLocationRequest{Location: name}); err != nil {
			return err
		}
		fmt.Printf("  Created location: %s\n", name)
	}
	return nil
}

func (s *Seeder) SeedTimes(ctx context.Context, noCache cache.Service, cfg *config.Config) error {
	svc := times.NewService(times.NewRepository(s.db.GetPostgreSQL()), noCache, cfg.Redis.ReferenceTTL)

	values := []string{"07:00", "08:30", "10:00", "13:00", "16:30", "18:00"}

	for _, value := range values {
		if _, err := svc.Create(ctx, times.CreateTimeRequest{Time: value}); err != nil {
			return err
		}
		fmt.Printf("  Created departure time: %s\n", value)
	}
	return nil
}

func (s *Seeder) SeedTrips(ctx context.Context, noCache cache.Service, cfg *config.Config) error {
	seatService := seats.NewService(seats.NewRepository(s.db.GetPostgreSQL()))
	svc := trips.NewService(trips.NewRepository(s.db.GetPostgreSQL()), seatService, noCache, cfg.Redis.TripTTL)

	requests := []trips.TripRequest{
		{BusID: "BUS-01", TripID: "TRIP-1001", StartLocation: "North Campus", Destination: "Central Station", Date: "2026-09-01", DepartureTime: "07:00"},
		{BusID: "BUS-01", TripID: "TRIP-1002", StartLocation: "Central Station", Destination: "North Campus", Date: "2026-09-01", DepartureTime: "16:30"},
		{BusID: "BUS-02", TripID: "TRIP-2001", StartLocation: "South Campus", Destination: "City Mall", Date: "2026-09-02", DepartureTime: "10:00"},
	}

	for _, req := range requests {
		trip, err := svc.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("  Created trip %s (%s → %s) with %d seats\n", trip.TripID, trip.StartLocation, trip.Destination, seats.SeatsPerTrip)
	}
	return nil
}
