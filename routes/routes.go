package routes

import (
	"restaurant-reservation-api/config"
	"restaurant-reservation-api/handlers"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	h := handlers.New(db, cfg)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Menu & ordering
		public.GET("/menu", h.ListMenu)
		public.POST("/orders", h.PlaceOrder)

		// Table reservations
		public.GET("/tables/available", h.ListAvailableTables)
		public.POST("/reservations", h.Reserve)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)

		// Booking feature auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/staff")
	{
		staff.GET("/orders", h.ListOrders)
		staff.GET("/tables", h.ListTables)
		staff.PUT("/orders/:id/status", h.UpdateOrderStatus)
		staff.PUT("/tables/:number/availability", h.UpdateTableAvailability)
		staff.GET("/sales-report", h.DailySalesReport)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api/auth")
	auth.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		auth.GET("/profile", h.GetProfile)
	}

	// ── Booking: business routes ───────────────────────────────────
	business := r.Group("/api/booking")
	business.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RoleRequired(models.RoleBusiness))
	{
		business.POST("/slots", h.CreateSlot)
		business.GET("/slots", h.ListMySlots)
		business.GET("/appointments", h.ListBusinessAppointments)
	}

	// ── Booking: customer routes ───────────────────────────────────
	booking := r.Group("/api/booking")
	booking.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.RoleRequired(models.RoleUser))
	{
		booking.GET("/businesses/:id/slots", h.ListBusinessSlots)
		booking.POST("/slots/:id/book", h.BookSlot)
		booking.GET("/my-appointments", h.ListMyAppointments)
		booking.PUT("/appointments/:id/cancel", h.CancelAppointment)
	}
}
