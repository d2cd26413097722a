package routes

import (
	"vallit/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for appointment booking.
func RegisterBookingRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	api := r.Group("/api")
	{
		api.POST("/appointments", bookingHandler.CreateAppointment)
	}
}
