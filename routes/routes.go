package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voxcal/handlers"
	"voxcal/middleware"
)

// RegisterToolRoutes registers the voice-platform webhook endpoints.
func RegisterToolRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tools")
	api.Use(middleware.WebhookAuthMiddleware())
	{
		// Single dispatch endpoint: tool name travels in the envelope.
		api.POST("/call", hb.HandleToolCall)

		// Direct forms of each tool, for platforms configured with one
		// webhook URL per tool and for operator testing.
		api.POST("/check-availability", hb.CheckAvailability)
		api.POST("/book-appointment", hb.BookAppointment)
		api.POST("/update-status", hb.UpdateAppointmentStatus)
	}
}

// RegisterAdminRoutes registers operator diagnostic endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.WebhookAuthMiddleware())
	{
		api.GET("/tool-calls", hb.ListToolCallsHandler)
	}
}

// RegisterRoutes sets up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", hb.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "voxcal", "status": "ok"})
	})

	RegisterToolRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
