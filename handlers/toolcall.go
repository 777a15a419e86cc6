package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"voxcal/config"
	"voxcal/database/repository/auditlog"
	"voxcal/models"
	"voxcal/services/scheduling"
	"voxcal/utils"
)

// ToolCallHandler serves the voice platform's tool-call webhooks. Every
// response is a structured payload with a spoken-language message; nothing
// that resembles a stack trace ever crosses this boundary.
type ToolCallHandler struct {
	Svc    scheduling.Service
	Audit  auditlog.Repository
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewToolCallHandler constructs a ToolCallHandler.
func NewToolCallHandler(svc scheduling.Service, audit auditlog.Repository, cache *redis.Client, logger *zap.Logger) *ToolCallHandler {
	return &ToolCallHandler{Svc: svc, Audit: audit, Cache: cache, Logger: logger}
}

// HandleToolCall is the single dispatch webhook: the platform posts a
// ToolCallEnvelope and the tool name selects the operation. Duplicate
// deliveries of the same toolCallId replay the cached response instead of
// re-running the operation, since the platform retries webhooks it thinks
// timed out.
func (h *ToolCallHandler) HandleToolCall(c *gin.Context) {
	var env models.ToolCallEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "I'm sorry, I didn't catch that. Could you repeat your request?",
		})
		return
	}

	if cached, ok := h.replay(c.Request.Context(), env.ToolCallID); ok {
		h.Logger.Info("Replaying cached tool-call response", zap.String("toolCallId", env.ToolCallID))
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	started := time.Now()
	var result any
	var outcome string

	switch env.Tool {
	case models.ToolCheckAvailability:
		res := h.Svc.CheckAvailability(c.Request.Context(), models.SchedulingRequest{
			Date:     env.Date(),
			Time:     env.Time(),
			Timezone: env.Timezone(),
		})
		result = res
		outcome = availabilityOutcome(res)
	case models.ToolBookAppointment:
		res := h.Svc.BookAppointment(c.Request.Context(), models.BookingRequest{
			Date:     env.Date(),
			Time:     env.Time(),
			Timezone: env.Timezone(),
			FullName: env.Param("fullName", "full_name", "name"),
			Email:    env.Param("email"),
			Phone:    env.Param("phone", "phoneNumber", "phone_number"),
		})
		result = res
		outcome = successOutcome(res.Success)
	case models.ToolUpdateStatus:
		res := h.Svc.UpdateAppointmentStatus(c.Request.Context(),
			env.Param("status"),
			env.Param("appointmentId", "appointment_id"),
			env.Param("notes"),
		)
		result = res
		outcome = successOutcome(res.Success)
	default:
		h.Logger.Warn("Unknown tool requested", zap.String("tool", env.Tool))
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "I'm sorry, I can't help with that request.",
		})
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "I'm sorry, something went wrong on our end.", err.Error())
		return
	}

	h.remember(c.Request.Context(), env.ToolCallID, body)
	h.record(c.Request.Context(), env, outcome, body, time.Since(started))
	c.Data(http.StatusOK, "application/json", body)
}

// temporalAliases carries the long-form parameter names some assistant
// versions send instead of the short ones.
type temporalAliases struct {
	RequestedDate     string `json:"requestedDate"`
	RequestedTime     string `json:"requestedTime"`
	RequestedTimezone string `json:"requestedTimezone"`
}

func pick(short, long string) string {
	if short != "" {
		return short
	}
	return long
}

// CheckAvailability is the direct REST form of the availability tool.
func (h *ToolCallHandler) CheckAvailability(c *gin.Context) {
	var req struct {
		models.SchedulingRequest
		temporalAliases
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.AvailabilityResult{
			Available: false,
			Message:   "I'm sorry, I didn't catch the date and time. Could you say them again?",
		})
		return
	}
	c.JSON(http.StatusOK, h.Svc.CheckAvailability(c.Request.Context(), models.SchedulingRequest{
		Date:     pick(req.Date, req.RequestedDate),
		Time:     pick(req.Time, req.RequestedTime),
		Timezone: pick(req.Timezone, req.RequestedTimezone),
	}))
}

// BookAppointment is the direct REST form of the booking tool.
func (h *ToolCallHandler) BookAppointment(c *gin.Context) {
	var req struct {
		models.BookingRequest
		temporalAliases
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.BookingResult{
			Success: false,
			Message: "I'm sorry, I didn't catch the booking details. Could you repeat them?",
		})
		return
	}
	booking := req.BookingRequest
	booking.Date = pick(booking.Date, req.RequestedDate)
	booking.Time = pick(booking.Time, req.RequestedTime)
	booking.Timezone = pick(booking.Timezone, req.RequestedTimezone)
	c.JSON(http.StatusOK, h.Svc.BookAppointment(c.Request.Context(), booking))
}

// UpdateAppointmentStatus is the direct REST form of the status tool.
func (h *ToolCallHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req struct {
		Status        string `json:"status"`
		AppointmentID string `json:"appointmentId"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.StatusUpdateResult{
			Success: false,
			Message: "I'm sorry, I didn't catch that. Which appointment would you like to update?",
		})
		return
	}
	c.JSON(http.StatusOK, h.Svc.UpdateAppointmentStatus(c.Request.Context(), req.Status, req.AppointmentID, req.Notes))
}

func (h *ToolCallHandler) replay(ctx context.Context, toolCallID string) ([]byte, bool) {
	if toolCallID == "" || h.Cache == nil {
		return nil, false
	}
	cached, err := h.Cache.Get(ctx, idempotencyKey(toolCallID)).Bytes()
	if err != nil {
		return nil, false
	}
	return cached, true
}

func (h *ToolCallHandler) remember(ctx context.Context, toolCallID string, body []byte) {
	if toolCallID == "" || h.Cache == nil {
		return
	}
	ttl := time.Duration(config.AppConfig.IdempotencyTTLSecs) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := h.Cache.Set(ctx, idempotencyKey(toolCallID), body, ttl).Err(); err != nil {
		h.Logger.Warn("Failed to cache tool-call response", zap.String("toolCallId", toolCallID), zap.Error(err))
	}
}

// record writes the tool-call outcome to the audit log. Best-effort: a
// failed audit write never disturbs the conversation.
func (h *ToolCallHandler) record(ctx context.Context, env models.ToolCallEnvelope, outcome string, body []byte, took time.Duration) {
	if h.Audit == nil {
		return
	}
	rec := auditlog.Record{
		ID:         uuid.New().String(),
		ToolCallID: env.ToolCallID,
		Tool:       env.Tool,
		Params:     env.Parameters,
		Outcome:    outcome,
		Response:   string(body),
		DurationMs: took.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if err := h.Audit.Insert(ctx, rec); err != nil {
		h.Logger.Warn("Failed to record tool call", zap.String("tool", env.Tool), zap.Error(err))
	}
}

func idempotencyKey(toolCallID string) string {
	return "toolcall:" + toolCallID
}

func availabilityOutcome(res models.AvailabilityResult) string {
	if res.Available {
		return "available"
	}
	return "conflict"
}

func successOutcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
