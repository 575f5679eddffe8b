//go:build postgres_integration

package repository

import (
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"route_editor/internal/models"
)

func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Point{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	store := NewStore(db)
	if err := store.Ping(t.Context()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	user := models.User{Email: "itest@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	defer db.Delete(&user)

	lat, lon := 40.0, -74.0
	p := models.Point{
		UserID: user.ID, Latitude: &lat, Longitude: &lon,
		RecordedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.InsertPoint(t.Context(), &p); err != nil {
		t.Fatalf("InsertPoint: %v", err)
	}

	points, err := store.PointsByDate(t.Context(), user.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PointsByDate: %v", err)
	}
	if len(points) != 1 || points[0].ID != p.ID {
		t.Fatalf("unexpected points: %+v", points)
	}

	taken, err := store.HasPointAt(t.Context(), user.ID, p.RecordedAt)
	if err != nil || !taken {
		t.Fatalf("HasPointAt: taken=%v err=%v", taken, err)
	}

	deleted, err := store.DeletePoint(t.Context(), user.ID, p.ID)
	if err != nil || !deleted {
		t.Fatalf("DeletePoint: deleted=%v err=%v", deleted, err)
	}
}
