package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voxcal/models"
)

// fakeService is a canned scheduling.Service for handler tests.
type fakeService struct {
	lastScheduling models.SchedulingRequest
	lastBooking    models.BookingRequest
	lastStatus     string

	availability models.AvailabilityResult
	booking      models.BookingResult
	status       models.StatusUpdateResult
}

func (f *fakeService) CheckAvailability(ctx context.Context, req models.SchedulingRequest) models.AvailabilityResult {
	f.lastScheduling = req
	return f.availability
}

func (f *fakeService) BookAppointment(ctx context.Context, req models.BookingRequest) models.BookingResult {
	f.lastBooking = req
	return f.booking
}

func (f *fakeService) UpdateAppointmentStatus(ctx context.Context, status, appointmentID, notes string) models.StatusUpdateResult {
	f.lastStatus = status
	return f.status
}

func newTestRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewToolCallHandler(svc, nil, nil, zap.NewNop())
	r := gin.New()
	r.POST("/api/tools/call", h.HandleToolCall)
	r.POST("/api/tools/check-availability", h.CheckAvailability)
	return r
}

func TestHandleToolCallDispatchesAvailability(t *testing.T) {
	svc := &fakeService{availability: models.AvailabilityResult{Available: true, Message: "open"}}
	r := newTestRouter(svc)

	body := `{
		"toolCallId": "tc-1",
		"tool": "check_calendar_availability",
		"parameters": {"requestedDate": "Monday", "requested_time": "2 PM", "timezone": "America/New_York"}
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/call", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Aliases were normalized before the core saw them.
	assert.Equal(t, "Monday", svc.lastScheduling.Date)
	assert.Equal(t, "2 PM", svc.lastScheduling.Time)
	assert.Equal(t, "America/New_York", svc.lastScheduling.Timezone)

	var res models.AvailabilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Available)
}

func TestHandleToolCallUnknownToolStaysConversational(t *testing.T) {
	r := newTestRouter(&fakeService{})

	body := `{"tool": "launch_rocket", "parameters": {}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/call", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Still 200 with a spoken message; the voice layer cannot render errors.
	require.Equal(t, http.StatusOK, w.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, false, res["success"])
	assert.NotEmpty(t, res["message"])
}

func TestHandleToolCallMalformedBodyStaysConversational(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/call", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, false, res["success"])
}

func TestDirectAvailabilityEndpoint(t *testing.T) {
	svc := &fakeService{availability: models.AvailabilityResult{Available: false, Message: "taken"}}
	r := newTestRouter(svc)

	body := `{"date": "tomorrow", "time": "10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/check-availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res models.AvailabilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Available)
	assert.Equal(t, "taken", res.Message)
}

func TestDirectAvailabilityEndpointAcceptsLongAliases(t *testing.T) {
	svc := &fakeService{availability: models.AvailabilityResult{Available: true}}
	r := newTestRouter(svc)

	body := `{"requestedDate": "friday", "requestedTime": "3 PM", "requestedTimezone": "America/Denver"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/check-availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "friday", svc.lastScheduling.Date)
	assert.Equal(t, "3 PM", svc.lastScheduling.Time)
	assert.Equal(t, "America/Denver", svc.lastScheduling.Timezone)
}
