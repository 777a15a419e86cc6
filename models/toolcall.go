package models

import "strings"

// Tool names accepted on the voice-platform webhook.
const (
	ToolCheckAvailability = "check_calendar_availability"
	ToolBookAppointment   = "book_calendar_appointment"
	ToolUpdateStatus      = "update_appointment_status"
)

// ToolCallEnvelope is the inbound webhook body from the voice platform.
// Parameters arrive as loosely-typed speech-derived strings.
type ToolCallEnvelope struct {
	ToolCallID string            `json:"toolCallId"`
	Tool       string            `json:"tool"`
	Parameters map[string]string `json:"parameters"`
}

// Param returns the first non-empty value among the given parameter names.
// The voice platform is inconsistent about naming across assistant versions
// (e.g. "date" vs "requestedDate" vs "requested_date"), so every temporal
// field is looked up through its known aliases.
func (e *ToolCallEnvelope) Param(names ...string) string {
	for _, name := range names {
		if v, ok := e.Parameters[name]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Date returns the date parameter under any of its known aliases.
func (e *ToolCallEnvelope) Date() string {
	return e.Param("date", "requestedDate", "requested_date")
}

// Time returns the time parameter under any of its known aliases.
func (e *ToolCallEnvelope) Time() string {
	return e.Param("time", "requestedTime", "requested_time")
}

// Timezone returns the timezone parameter under any of its known aliases.
func (e *ToolCallEnvelope) Timezone() string {
	return e.Param("timezone", "requestedTimezone", "requested_timezone", "timeZone")
}
