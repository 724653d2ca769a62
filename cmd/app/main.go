package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"cruisy/cmd/fx/controllers_fx"
	"cruisy/cmd/fx/db_fx"
	"cruisy/cmd/fx/export_fx"
	"cruisy/cmd/fx/mail_fx"
	"cruisy/cmd/fx/memcache_fx"
	"cruisy/cmd/fx/search_fx"
	"cruisy/cmd/fx/trip_fx"
	"cruisy/internal/api/controllers"
	"cruisy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		trip_fx.Module,
		search_fx.Module,
		export_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	searchController *controllers.SearchController,
	tripController *controllers.TripController,
	sessionController *controllers.SessionController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, searchController, tripController, sessionController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	tripController *controllers.TripController,
	sessionController *controllers.SessionController,
	exportController *controllers.ExportController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/search", searchController.Search)
	r.GET("/search/result", searchController.LastResult)
	r.GET("/destinations", searchController.ListDestinations)
	r.GET("/gear", searchController.ListGear)

	sessionGroup := r.Group("/session")
	sessionGroup.GET("/view", sessionController.GetSession)
	sessionGroup.POST("/view", sessionController.SetView)
	sessionGroup.POST("/select", sessionController.SelectActivity)

	tripGroup := r.Group("/trip")
	tripGroup.GET("", tripController.GetTrip)
	tripGroup.POST("/itinerary", tripController.AddToItinerary)
	tripGroup.DELETE("/itinerary/:id", tripController.RemoveFromItinerary)
	tripGroup.POST("/toggle", tripController.ToggleBooked)
	tripGroup.DELETE("", tripController.ClearTrip)
	tripGroup.GET("/checklist", exportController.GetChecklist)
	tripGroup.GET("/checklist/text", exportController.GetChecklistText)
	tripGroup.POST("/checklist/email", exportController.EmailChecklist)
}
