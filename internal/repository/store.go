package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"route_editor/internal/models"
)

// Store is the GORM-backed implementation of editor.Store. Connections come
// from the shared pool; every query is scoped to the caller's context so
// nothing is held past a single round trip.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UsersWithPoints returns users owning at least one point, ordered by the
// same display-name expression the listing exposes.
func (s *Store) UsersWithPoints(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("id IN (SELECT DISTINCT user_id FROM points)").
		Order("COALESCE(first_name || ' ' || last_name, email)").
		Find(&users).Error
	return users, err
}

// PointsSince returns a user's located points recorded at or after the
// cutoff, ascending by time.
func (s *Store) PointsSince(ctx context.Context, userID uint, since time.Time) ([]models.Point, error) {
	var points []models.Point
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND latitude IS NOT NULL AND longitude IS NOT NULL", userID, since).
		Order("recorded_at ASC").
		Find(&points).Error
	return points, err
}

// PointsByDate returns a user's located points for one UTC calendar day,
// ascending by time.
func (s *Store) PointsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Point, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var points []models.Point
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ? AND latitude IS NOT NULL AND longitude IS NOT NULL",
			userID, start, end).
		Order("recorded_at ASC").
		Find(&points).Error
	return points, err
}

// HasPointAt reports whether the user already has a point at that instant.
func (s *Store) HasPointAt(ctx context.Context, userID uint, at time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Point{}).
		Where("user_id = ? AND recorded_at = ?", userID, at).
		Count(&count).Error
	return count > 0, err
}

// InsertPoint creates the row and fills in the store-assigned id.
func (s *Store) InsertPoint(ctx context.Context, p *models.Point) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

// DeletePoint removes the point only when it belongs to the user. The
// affected-row count collapses "not found" and "not owned" into one answer.
func (s *Store) DeletePoint(ctx context.Context, userID, pointID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", pointID, userID).
		Delete(&models.Point{})
	return res.RowsAffected > 0, res.Error
}

// Ping checks store connectivity for the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
