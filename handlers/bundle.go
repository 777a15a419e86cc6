// File: voxcal/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler the server registers.
type HandlerBundle struct {
	// Voice-platform tool-call endpoints.
	HandleToolCall          gin.HandlerFunc
	CheckAvailability       gin.HandlerFunc
	BookAppointment         gin.HandlerFunc
	UpdateAppointmentStatus gin.HandlerFunc

	// Operator endpoints.
	ListToolCallsHandler gin.HandlerFunc
	HealthHandler        gin.HandlerFunc
}
