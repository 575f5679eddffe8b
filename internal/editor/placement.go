package editor

import (
	"context"
	"math"
	"time"

	logrus "github.com/sirupsen/logrus"

	"route_editor/internal/geo"
	"route_editor/internal/models"
)

const (
	// appendAfterLast is how far past the last point an insertion lands
	// when the route is too short to evaluate gaps.
	appendAfterLast = 30 * time.Second

	// collisionShift moves the synthesized timestamp when the user already
	// has a point at that instant. Applied once, not in a loop.
	collisionShift = 5 * time.Second
)

// PlaceRequest carries one manual point insertion.
type PlaceRequest struct {
	UserID    uint
	Date      time.Time
	Latitude  float64
	Longitude float64
	Altitude  *float64
	Accuracy  *float64
}

// PlaceResult reports where the engine put the point.
type PlaceResult struct {
	PointID   uint      `json:"point_id"`
	Timestamp time.Time `json:"timestamp"`
}

// PlacePoint inserts a new point into the user's route for the given date.
// The insertion gap is chosen by minimum geometric detour and the timestamp
// is the temporal midpoint of the chosen gap's endpoints. Manual points
// never carry speed or battery data.
func (s *Service) PlacePoint(ctx context.Context, req PlaceRequest) (PlaceResult, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return PlaceResult{}, ErrInvalidCoordinate
	}

	points, err := s.store.PointsByDate(ctx, req.UserID, req.Date)
	if err != nil {
		return PlaceResult{}, err
	}

	timestamp, err := insertionTimestamp(points, req.Latitude, req.Longitude)
	if err != nil {
		return PlaceResult{}, err
	}

	taken, err := s.store.HasPointAt(ctx, req.UserID, timestamp)
	if err != nil {
		return PlaceResult{}, err
	}
	if taken {
		timestamp = timestamp.Add(collisionShift)
	}

	accuracy := DefaultAccuracy
	if req.Accuracy != nil {
		accuracy = *req.Accuracy
	}

	point := &models.Point{
		UserID:     req.UserID,
		Latitude:   &req.Latitude,
		Longitude:  &req.Longitude,
		RecordedAt: timestamp,
		Accuracy:   &accuracy,
		Altitude:   req.Altitude,
	}
	if err := s.store.InsertPoint(ctx, point); err != nil {
		return PlaceResult{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     req.UserID,
		"point_id":    point.ID,
		"recorded_at": timestamp,
	}).Info("added manual point")

	return PlaceResult{PointID: point.ID, Timestamp: timestamp}, nil
}

// insertionTimestamp synthesizes the recorded_at for a new coordinate.
// With fewer than two points the only sensible placement is after the last
// known point; with none there is no reference at all.
func insertionTimestamp(points []models.Point, lat, lon float64) (time.Time, error) {
	if len(points) == 0 {
		return time.Time{}, ErrEmptyRoute
	}
	if len(points) < 2 {
		return points[len(points)-1].RecordedAt.Add(appendAfterLast), nil
	}

	i := bestGap(points, lat, lon)
	prev := points[i].RecordedAt
	next := points[i+1].RecordedAt
	return prev.Add(next.Sub(prev) / 2), nil
}

// bestGap scans every adjacent pair and returns the index of the gap with
// the minimum detour penalty. The penalty is non-negative by the triangle
// inequality; zero means the new point lies on the great-circle segment.
// The earliest gap wins ties. Purely geometric: a close but temporally
// distant gap can win on sparse or looping routes.
func bestGap(points []models.Point, lat, lon float64) int {
	best := 0
	minPenalty := math.Inf(1)

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]

		distToPrev := geo.Haversine(lat, lon, *p1.Latitude, *p1.Longitude)
		distToNext := geo.Haversine(lat, lon, *p2.Latitude, *p2.Longitude)
		originalGap := geo.Haversine(*p1.Latitude, *p1.Longitude, *p2.Latitude, *p2.Longitude)

		penalty := distToPrev + distToNext - originalGap
		if penalty < minPenalty {
			minPenalty = penalty
			best = i
		}
	}
	return best
}
