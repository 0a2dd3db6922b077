package times

import (
	"context"
	"errors"
	"testing"
	"time"

	"unibus/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTimeService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&TimeEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewService(NewRepository(db), cache.NewService(nil), time.Minute)
}

func TestTimeLifecycle(t *testing.T) {
	svc := setupTimeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTimeRequest{Time: "08:30"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The value is an opaque label; no clock-format validation is applied.
	if _, err := svc.Create(ctx, CreateTimeRequest{Time: "early morning"}); err != nil {
		t.Fatalf("create free-form value: %v", err)
	}

	list, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}

	updated, err := svc.Update(ctx, created.ID.String(), UpdateTimeRequest{Time: "09:00"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Value != "09:00" {
		t.Fatalf("expected updated value, got %q", updated.Value)
	}

	if err := svc.Delete(ctx, created.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestTimeNotFound(t *testing.T) {
	svc := setupTimeService(t)
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, uuid.New().String()); !errors.Is(err, ErrTimeNotFound) {
		t.Fatalf("get unknown id: expected ErrTimeNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "not-a-uuid"); !errors.Is(err, ErrTimeNotFound) {
		t.Fatalf("get malformed id: expected ErrTimeNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.New().String()); !errors.Is(err, ErrTimeNotFound) {
		t.Fatalf("delete unknown id: expected ErrTimeNotFound, got %v", err)
	}
}
