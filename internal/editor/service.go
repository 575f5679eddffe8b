package editor

import (
	"context"
	"errors"
	"sort"
	"time"

	logrus "github.com/sirupsen/logrus"

	"route_editor/internal/models"
)

var (
	// ErrEmptyRoute is returned when a point is placed into a route with no
	// existing points; there is no reference timestamp to synthesize from.
	ErrEmptyRoute = errors.New("route has no points for that date")

	// ErrInvalidCoordinate is returned before any store access when the
	// submitted latitude or longitude is out of range.
	ErrInvalidCoordinate = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")
)

const (
	// MinRoutePoints is the threshold below which a day's points are
	// considered noise and excluded from route listings.
	MinRoutePoints = 5

	// DefaultLookbackDays bounds route listings when the caller gives no window.
	DefaultLookbackDays = 30

	// DefaultAccuracy marks manually placed points, distinct from
	// device-measured accuracy values.
	DefaultAccuracy = 20.0
)

// Store is the persistence surface the editor consumes. Implementations
// must return points ascending by recorded_at with non-null coordinates.
type Store interface {
	UsersWithPoints(ctx context.Context) ([]models.User, error)
	PointsSince(ctx context.Context, userID uint, since time.Time) ([]models.Point, error)
	PointsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Point, error)
	HasPointAt(ctx context.Context, userID uint, at time.Time) (bool, error)
	InsertPoint(ctx context.Context, p *models.Point) error
	DeletePoint(ctx context.Context, userID, pointID uint) (bool, error)
}

// Service exposes the route query and point placement operations. It holds
// no state beyond the injected store; every call is one unit of work.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// UserSummary is one row of the user listing.
type UserSummary struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// RouteSummary describes one calendar day of a user's history.
type RouteSummary struct {
	Date       string    `json:"route_date"`
	PointCount int       `json:"point_count"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	MinLat     float64   `json:"min_lat"`
	MaxLat     float64   `json:"max_lat"`
	MinLon     float64   `json:"min_lon"`
	MaxLon     float64   `json:"max_lon"`
}

// ListUsers returns every user who owns at least one point.
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.store.UsersWithPoints(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:          u.ID,
			Email:       u.Email,
			DisplayName: u.DisplayName(),
		})
	}
	return summaries, nil
}

// ListRoutes groups a user's recent points by UTC calendar date and returns
// summaries for days with at least MinRoutePoints points, newest first.
func (s *Service) ListRoutes(ctx context.Context, userID uint, lookbackDays int) ([]RouteSummary, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	since := time.Now().UTC().AddDate(0, 0, -lookbackDays)

	points, err := s.store.PointsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*RouteSummary)
	for _, p := range points {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		date := p.RecordedAt.UTC().Format("2006-01-02")
		summary, ok := byDate[date]
		if !ok {
			byDate[date] = &RouteSummary{
				Date:       date,
				PointCount: 1,
				StartTime:  p.RecordedAt,
				EndTime:    p.RecordedAt,
				MinLat:     *p.Latitude,
				MaxLat:     *p.Latitude,
				MinLon:     *p.Longitude,
				MaxLon:     *p.Longitude,
			}
			continue
		}
		summary.PointCount++
		if p.RecordedAt.Before(summary.StartTime) {
			summary.StartTime = p.RecordedAt
		}
		if p.RecordedAt.After(summary.EndTime) {
			summary.EndTime = p.RecordedAt
		}
		summary.MinLat = min(summary.MinLat, *p.Latitude)
		summary.MaxLat = max(summary.MaxLat, *p.Latitude)
		summary.MinLon = min(summary.MinLon, *p.Longitude)
		summary.MaxLon = max(summary.MaxLon, *p.Longitude)
	}

	summaries := make([]RouteSummary, 0, len(byDate))
	for _, summary := range byDate {
		if summary.PointCount >= MinRoutePoints {
			summaries = append(summaries, *summary)
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries, nil
}

// ListPoints returns the ordered route for one user and UTC calendar date.
func (s *Service) ListPoints(ctx context.Context, userID uint, date time.Time) ([]models.Point, error) {
	return s.store.PointsByDate(ctx, userID, date)
}

// DeletePoint removes a point only when it belongs to the given user.
// A missing point and a point owned by someone else are the same outcome.
func (s *Service) DeletePoint(ctx context.Context, userID, pointID uint) (bool, error) {
	deleted, err := s.store.DeletePoint(ctx, userID, pointID)
	if err != nil {
		return false, err
	}
	if deleted {
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"point_id": pointID,
		}).Info("deleted point")
	}
	return deleted, nil
}
