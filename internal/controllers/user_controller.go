package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"route_editor/internal/editor"
)

type UserController struct {
	svc *editor.Service
}

func NewUserController(svc *editor.Service) *UserController {
	return &UserController{svc: svc}
}

// List returns every user who owns at least one point, for route selection.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.svc.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListUsers: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
