package handlers

import (
	"errors"
	"net/http"
	"strings"

	"vallit/models"
	"vallit/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the appointment booking endpoint.
type BookingHandler struct {
	Service booking.AppointmentService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.AppointmentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateAppointment handles POST /api/appointments.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid name"})
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}
	if req.DateTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: date_time"})
		return
	}

	record, err := h.Service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		h.Logger.Error("Booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking could not be completed. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, record)
}
