package routes

import (
	"net/http"
	"time"

	"pillowstat/handlers"
	"pillowstat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking admin endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookings)
		api.POST("", hb.CreateBooking)
		api.GET("/:id", hb.GetBooking)
		api.PATCH("/:id", hb.UpdateBooking)
		api.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterAvailabilityRoutes registers calendar queries and manual blocking.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.GetAvailability)
		api.POST("", hb.SetAvailability)
		api.POST("/reconcile", hb.ReconcileAvailability)
	}
}

// RegisterGuestRoutes registers guest endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.GET("", hb.ListGuests)
		api.POST("", hb.CreateGuest)
		api.GET("/:id", hb.GetGuest)
		api.PATCH("/:id", hb.UpdateGuest)
	}
}

// RegisterPaymentRoutes registers payment, refund and webhook endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intents", hb.CreatePaymentIntent)
		api.POST("/confirm", hb.ConfirmPayment)
		api.POST("/refunds", hb.CreateRefund)
		api.GET("/bookings/:id", hb.GetPaymentSummary)
		api.GET("/transactions", hb.ListTransactions)
		api.POST("/webhook", hb.PaymentWebhook)
	}
}

// RegisterMessageRoutes registers the booking message threads.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.GET("", hb.ListMessages)
		api.POST("", hb.SendMessage)
		api.PATCH("", hb.MarkRead)
	}
}

// RegisterInquiryRoutes registers the public inquiry form and its admin view.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.GET("", hb.ListInquiries)
		api.POST("", hb.CreateInquiry)
		api.PATCH("/:id", hb.UpdateInquiry)
	}
}

// RegisterCatalogRoutes registers the unit catalog and the analytics report.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	units := r.Group("/api/units")
	{
		units.GET("", hb.ListUnits)
		units.GET("/:id", hb.GetUnit)
		units.GET("/:id/quote", hb.GetQuote)
	}
	r.GET("/api/analytics", hb.GetAnalytics)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm pillowSTAT", "checks": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics when they are enabled.
func RegisterMetricsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Metrics == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(hb.Metrics.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Stripe-Signature", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r, hb)
}
