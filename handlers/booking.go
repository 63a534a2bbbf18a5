package handlers

import (
	"errors"
	"net/http"

	"lansdowne360/models"
	"lansdowne360/services/booking"
	"lansdowne360/services/pms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking funnel endpoints.
type BookingHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(engine booking.BookingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// CheckAvailabilityHandler returns live availability for a stay range.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}
	roomTypeID := c.Query("roomTypeId")

	items, err := h.Engine.CheckAvailability(c.Request.Context(), start, end, roomTypeID)
	if err != nil {
		h.respondEngineError(c, "availability check failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateBookingHandler creates a booking on the PMS and mirrors it locally.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.respondEngineError(c, "booking creation failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingHandler fetches a booking from the PMS by confirmation number.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	confirmationNumber := c.Param("confirmationNumber")
	result, err := h.Engine.GetBooking(c.Request.Context(), confirmationNumber)
	if err != nil {
		h.respondEngineError(c, "booking lookup failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": result})
}

// CancelBookingHandler cancels a booking on the PMS.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var input struct {
		ConfirmationNumber string `json:"confirmationNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.CancelBooking(c.Request.Context(), input.ConfirmationNumber)
	if err != nil {
		h.respondEngineError(c, "booking cancellation failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondEngineError maps PMS client errors onto funnel responses. The
// UI shows a generic retry message for anything upstream.
func (h *BookingHandler) respondEngineError(c *gin.Context, msg string, err error) {
	h.Logger.Warn(msg, zap.Error(err))

	var apiErr *pms.APIError
	var valErr *pms.ValidationError
	var authErr *pms.AuthError
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "The booking system returned unexpected data. Please try again or call the front desk."})
	case errors.As(err, &apiErr):
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The booking system rejected the request.", "code": apiErr.Code})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "The booking system is unavailable. Please try again or call the front desk."})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "The booking system is unavailable. Please try again or call the front desk."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
