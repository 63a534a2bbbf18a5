package routes

import (
	"net/http"
	"time"

	"lansdowne360/handlers"
	"lansdowne360/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public booking funnel endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/availability", hb.CheckAvailability)
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.GET("/:confirmationNumber", hb.GetBooking)
		bookingGroup.POST("/cancel", hb.CancelBooking)
	}
}

// RegisterWebhookRoutes sets up inbound PMS webhooks.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/ezee", hb.EzeeWebhook)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware())

		protected.GET("/reservations", hb.AdminHandler.ListReservationsHandler)
		protected.GET("/reservations/:id", hb.AdminHandler.GetReservationHandler)
		protected.PUT("/reservations/:id", hb.AdminHandler.UpdateReservationHandler)
		protected.DELETE("/reservations/:id", hb.AdminHandler.DeleteReservationHandler)

		protected.GET("/rooms", hb.AdminHandler.ListRoomsHandler)
		protected.POST("/rooms", hb.AdminHandler.CreateRoomHandler)
		protected.PUT("/rooms/:id", hb.AdminHandler.UpdateRoomHandler)
		protected.DELETE("/rooms/:id", hb.AdminHandler.DeleteRoomHandler)

		protected.GET("/settings/:category", hb.AdminHandler.ListSettingsHandler)
		protected.PUT("/settings/:category", hb.AdminHandler.UpsertSettingHandler)
		protected.DELETE("/settings/:category/:key", hb.AdminHandler.DeleteSettingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lansdowne 360"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
