package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"route_editor/internal/controllers"
	"route_editor/internal/web"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Users  *controllers.UserController
	Routes *controllers.RouteController
	Points *controllers.PointController
	Health *controllers.HealthController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()

	// Request logging + panic recovery
	r.Use(ginlog.SetLogger(), gin.Recovery())

	EditorRoutes(r, ctl)
	r.GET("/health", ctl.Health.Check)
	web.Register(r)

	return r
}
