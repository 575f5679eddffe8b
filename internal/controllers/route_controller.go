package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"route_editor/internal/editor"
)

type RouteController struct {
	svc *editor.Service
}

func NewRouteController(svc *editor.Service) *RouteController {
	return &RouteController{svc: svc}
}

// List returns daily route summaries for a user within the lookback window.
func (rc *RouteController) List(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	days := editor.DefaultLookbackDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	routes, err := rc.svc.ListRoutes(c.Request.Context(), userID, days)
	if err != nil {
		logrus.WithError(err).Error("ListRoutes: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list routes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, routes)
}

// Points returns the ordered route for one user and date. This is the view
// the map renders and the placement engine works against.
func (rc *RouteController) Points(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	date, ok := parseRouteDate(c)
	if !ok {
		return
	}

	points, err := rc.svc.ListPoints(c.Request.Context(), userID, date)
	if err != nil {
		logrus.WithError(err).Error("ListPoints: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list points: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, points)
}

// GeoJSON renders the route as a LineString for external map tooling.
func (rc *RouteController) GeoJSON(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	date, ok := parseRouteDate(c)
	if !ok {
		return
	}

	points, err := rc.svc.ListPoints(c.Request.Context(), userID, date)
	if err != nil {
		logrus.WithError(err).Error("GeoJSON: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list points: " + err.Error()})
		return
	}

	if len(points) < 2 {
		c.JSON(http.StatusOK, gin.H{"geojson": nil})
		return
	}

	coords := make([]geom.Coord, 0, len(points))
	for _, p := range points {
		coords = append(coords, geom.Coord{*p.Longitude, *p.Latitude})
	}

	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		logrus.WithError(err).Error("GeoJSON: building line string failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build geometry"})
		return
	}

	encoded, err := gjson.Marshal(line)
	if err != nil {
		logrus.WithError(err).Error("GeoJSON: encoding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode geometry"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", encoded)
}

// parseUserID reads the :id path parameter, answering 400 itself on failure.
func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

// parseRouteDate reads the :date path parameter as a UTC calendar day.
func parseRouteDate(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date format must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
