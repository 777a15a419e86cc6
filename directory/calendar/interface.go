// Package calendar is the client for the Calendar Directory, the external
// system of record for appointment events and free/busy queries.
package calendar

import (
	"context"

	"voxcal/models"
)

// Directory defines the narrow surface of the Calendar Directory this
// service consumes.
type Directory interface {
	// ListEvents returns the busy slots for calendarID between startMs and
	// endMs (epoch milliseconds).
	ListEvents(ctx context.Context, calendarID string, startMs, endMs int64) ([]models.BusySlot, error)
	// CreateAppointment persists a new appointment and returns it with its
	// directory-assigned id.
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)
	// UpdateAppointmentStatus pushes a status transition for an existing
	// appointment.
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
	// Ping reports whether the directory is reachable.
	Ping(ctx context.Context) error
}
