package main

import (
	"log"
	"net/http"

	"route_editor/internal/config"
	"route_editor/internal/controllers"
	"route_editor/internal/editor"
	"route_editor/internal/logger"
	"route_editor/internal/middleware"
	"route_editor/internal/repository"
	"route_editor/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	store := repository.NewStore(config.DB)
	svc := editor.NewService(store)

	// Setup Gin router
	r := routes.SetupRouter(routes.Controllers{
		Users:  controllers.NewUserController(svc),
		Routes: controllers.NewRouteController(svc),
		Points: controllers.NewPointController(svc),
		Health: controllers.NewHealthController(store),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.Port()
	log.Println("🚀 Route editor running at " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
