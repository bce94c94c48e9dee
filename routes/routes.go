package routes

import (
	"net/http"
	"time"

	"callpilot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSwarmRoutes registers the call and swarm dispatch endpoints.
func RegisterSwarmRoutes(r *gin.Engine, sh *handlers.SwarmHandler) {
	r.POST("/start-call", sh.StartCall)
	r.POST("/start-swarm", sh.StartSwarm)
	r.GET("/providers", sh.GetProviders)
}

// RegisterBookingRoutes registers the booking webhook and ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.POST("/webhook/booking", bh.BookingWebhook)
	r.GET("/bookings/recent", bh.RecentBookings)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CallPilot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.SwarmHandler, bh *handlers.BookingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSwarmRoutes(r, sh)
	RegisterBookingRoutes(r, bh)
	RegisterHealthRoute(r)
}
