package routes

import (
	"time"

	"gridtrip/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, itineraryHandler *handlers.ItineraryHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/events/:eventID/itineraries", itineraryHandler.CreateItineraryHandler)
		api.GET("/itineraries/:id", itineraryHandler.GetItineraryHandler)
	}

	r.GET("/health", handlers.HealthHandler)
}
