package models

import "time"

// SchedulingRequest carries the normalized temporal fields of a tool call.
// All three are free-form caller speech; none is trusted to parse cleanly.
type SchedulingRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// ResolvedInstant is the unambiguous absolute point in time produced by the
// date/time resolver. Caller holds the wall clock in the caller's zone,
// Calendar the same instant re-expressed in the calendar's operating zone.
// All availability comparisons use Calendar; Caller is for display only.
type ResolvedInstant struct {
	Caller   time.Time
	Calendar time.Time

	// Degraded is set when the resolver gave up on the input and fell back
	// to a default, so callers can tell "user said today" from "parser
	// could not read the date".
	Degraded       bool
	DegradedReason string
}

// AlternativeSlot is one candidate open slot, re-expressed in the caller's
// timezone. Response-only, never persisted.
type AlternativeSlot struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// AvailabilityResult is the payload returned by the availability check.
type AvailabilityResult struct {
	Available    bool              `json:"available"`
	Message      string            `json:"message"`
	Alternatives []AlternativeSlot `json:"alternatives,omitempty"`
}

// BookingRequest carries everything needed to commit an appointment.
type BookingRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BookingResult is the payload returned by the booking transaction.
type BookingResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
}

// StatusUpdateResult is the payload returned by a status transition.
// RequiresNewDateTime signals the voice flow to re-enter booking with a
// fresh date and time instead of touching the calendar here.
type StatusUpdateResult struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	Status              string `json:"status,omitempty"`
	RequiresNewDateTime bool   `json:"requiresNewDateTime,omitempty"`
}
