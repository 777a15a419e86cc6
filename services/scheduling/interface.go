// Package scheduling implements the appointment-scheduling core behind the
// voice-assistant webhook: free-form date/time resolution, availability
// checks against the Calendar Directory, alternative-slot search, and the
// check-then-commit booking transaction.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"voxcal/config"
	"voxcal/directory/calendar"
	"voxcal/directory/contact"
	"voxcal/models"
)

// Service defines the interface for the scheduling core. Every method
// returns a structured result with a spoken-language message; errors never
// escape to the webhook boundary.
type Service interface {
	CheckAvailability(ctx context.Context, req models.SchedulingRequest) models.AvailabilityResult
	BookAppointment(ctx context.Context, req models.BookingRequest) models.BookingResult
	UpdateAppointmentStatus(ctx context.Context, status, appointmentID, notes string) models.StatusUpdateResult
}

// DefaultSchedulingService implements Service against the two external
// directories. All state lives upstream; the service itself is stateless
// and safe to share across requests.
type DefaultSchedulingService struct {
	Calendar calendar.Directory
	Contacts contact.Directory

	// Business rules injected at startup, never read from literals in the
	// scheduling logic.
	CalendarID   string
	BusinessTZ   *time.Location
	OpenHour     int
	CloseHour    int
	SlotDuration time.Duration
	Tolerance    time.Duration

	// Now supplies the current time; nil means time.Now. Tests pin it.
	Now func() time.Time
}

// NewDefaultSchedulingService wires a scheduling service from AppConfig.
func NewDefaultSchedulingService(cal calendar.Directory, con contact.Directory) (*DefaultSchedulingService, error) {
	cfg := config.AppConfig
	tz, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid business timezone %q: %w", cfg.BusinessTimezone, err)
	}
	return &DefaultSchedulingService{
		Calendar:     cal,
		Contacts:     con,
		CalendarID:   cfg.CalendarID,
		BusinessTZ:   tz,
		OpenHour:     cfg.BusinessOpenHour,
		CloseHour:    cfg.BusinessCloseHour,
		SlotDuration: time.Duration(cfg.SlotDurationMinutes) * time.Minute,
		Tolerance:    time.Duration(cfg.ConflictToleranceSec) * time.Second,
	}, nil
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) businessTZ() *time.Location {
	if s.BusinessTZ != nil {
		return s.BusinessTZ
	}
	return time.Local
}

func (s *DefaultSchedulingService) openHour() int {
	if s.OpenHour > 0 {
		return s.OpenHour
	}
	return 9
}

func (s *DefaultSchedulingService) closeHour() int {
	if s.CloseHour > 0 {
		return s.CloseHour
	}
	return 17
}

func (s *DefaultSchedulingService) slotDuration() time.Duration {
	if s.SlotDuration > 0 {
		return s.SlotDuration
	}
	return 30 * time.Minute
}

func (s *DefaultSchedulingService) tolerance() time.Duration {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	return 60 * time.Second
}
