package routes

import (
	"vallit/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts every route group on the router.
func SetupRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	r.GET("/health", handlers.HealthHandler)
	RegisterBookingRoutes(r, bookingHandler)
}
