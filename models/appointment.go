package models

import "time"

// Appointment status values understood by the Calendar Directory.
const (
	StatusConfirmed   = "confirmed"
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// BusySlot is one existing calendar event's [start, end) interval as
// reported by the Calendar Directory. Read-only and re-fetched per request;
// never cached across requests.
type BusySlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Appointment is the Calendar Directory's persisted event entity.
type Appointment struct {
	ID         string    `json:"id"`
	CalendarID string    `json:"calendarId"`
	ContactID  string    `json:"contactId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
}

// AppointmentRequest is the create payload sent to the Calendar Directory.
// Timestamps are epoch milliseconds, matching the directory's wire format.
type AppointmentRequest struct {
	CalendarID  string `json:"calendarId"`
	ContactID   string `json:"contactId"`
	StartTimeMs int64  `json:"startTime"`
	EndTimeMs   int64  `json:"endTime"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
}
