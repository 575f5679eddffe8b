package routes

import (
	"github.com/gin-gonic/gin"
)

func EditorRoutes(r *gin.Engine, ctl Controllers) {
	api := r.Group("/api")
	{
		api.GET("/users", ctl.Users.List)
		api.GET("/users/:id/routes", ctl.Routes.List)
		api.GET("/users/:id/routes/:date/points", ctl.Routes.Points)
		api.POST("/users/:id/routes/:date/points", ctl.Points.Add)
		api.GET("/users/:id/routes/:date/geojson", ctl.Routes.GeoJSON)
		api.DELETE("/users/:id/points/:pointId", ctl.Points.Delete)
	}
}
