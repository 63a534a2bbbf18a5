package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle wires all endpoint handlers for route registration.
type HandlerBundle struct {
	// Booking funnel endpoints.
	CheckAvailability gin.HandlerFunc
	CreateBooking     gin.HandlerFunc
	GetBooking        gin.HandlerFunc
	CancelBooking     gin.HandlerFunc

	// Webhook endpoints.
	EzeeWebhook gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
