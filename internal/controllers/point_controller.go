package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"

	"route_editor/internal/editor"
)

type PointController struct {
	svc *editor.Service
}

func NewPointController(svc *editor.Service) *PointController {
	return &PointController{svc: svc}
}

type addPointInput struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Altitude  *float64 `json:"altitude"`
	Accuracy  *float64 `json:"accuracy"`
}

// Add places a manually drawn coordinate into an existing route.
func (pc *PointController) Add(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	date, ok := parseRouteDate(c)
	if !ok {
		return
	}

	var input addPointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("AddPoint: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return
	}

	result, err := pc.svc.PlacePoint(c.Request.Context(), editor.PlaceRequest{
		UserID:    userID,
		Date:      date,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Altitude:  input.Altitude,
		Accuracy:  input.Accuracy,
	})
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrEmptyRoute), errors.Is(err, editor.ErrInvalidCoordinate):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			logrus.WithError(err).Error("AddPoint: insert failed")
			if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A point already exists at that timestamp"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"point_id":  result.PointID,
		"timestamp": result.Timestamp,
		"message":   "Point added successfully",
	})
}

// Delete removes a point, but only when it belongs to the given user.
func (pc *PointController) Delete(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	pointID, err := strconv.ParseUint(c.Param("pointId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid point ID"})
		return
	}

	deleted, err := pc.svc.DeletePoint(c.Request.Context(), userID, uint(pointID))
	if err != nil {
		logrus.WithError(err).Error("DeletePoint: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !deleted {
		// Existence and ownership are deliberately indistinguishable here.
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Point not found or not authorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Point deleted successfully"})
}
