package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glowbook/handlers"
	"glowbook/utils"
)

// RegisterBookingRoutes registers the public booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/slots", hb.Booking.ComputeSlotsHandler)
		api.POST("", hb.Booking.CommitBookingHandler)
		api.DELETE("/:bookingID", hb.Booking.CancelBookingHandler)
		api.PUT("/:bookingID/reschedule", hb.Booking.RescheduleBookingHandler)
	}
}

// RegisterCalendarRoutes registers the admin calendar views.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/:providerID/day/:date", hb.Calendar.ResolveDayHandler)
		api.GET("/:providerID/sheet/:date", hb.Calendar.DaySheetHandler)
	}
}

// RegisterStaffRoutes registers staff management and shift scheduling.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.GET("", hb.Staff.ListStaffHandler)
		api.POST("", hb.Staff.CreateStaffHandler)
		api.PUT("/:staffID/capabilities", hb.Staff.UpdateCapabilitiesHandler)
		api.PUT("/:staffID/shifts", hb.Staff.SetupShiftsHandler)
		api.PATCH("/:staffID/shifts/override", hb.Staff.SetOverrideHandler)
		api.GET("/:staffID/shifts", hb.Staff.GetConfigurationHandler)
	}
}

// RegisterClientRoutes registers client profile tooling.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.GET("", hb.Client.ListClientsHandler)
		api.POST("", hb.Client.CreateClientHandler)
		api.GET("/:clientID", hb.Client.GetClientHandler)
		api.PUT("/:clientID", hb.Client.UpdateClientHandler)
		api.DELETE("/:clientID", hb.Client.DeleteClientHandler)
		api.GET("/:clientID/bookings", hb.Client.BookingHistoryHandler)
	}
}

// RegisterCatalogRoutes registers the read-only service catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.Catalog.ListServicesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes applies CORS and wires every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
