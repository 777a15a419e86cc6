package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"voxcal/models"
	"voxcal/utils"
)

const contactSource = "voice-assistant"

// Conversational responses for the booking flow. The consumer is a live
// voice call, so every path resolves to a complete spoken sentence.
const (
	msgNeedDateTime = "What date and time would you like to schedule your appointment for?"
	msgNeedContact  = "Could I get your full name, email address, and phone number to complete the booking?"
	msgSlotTaken    = "I'm sorry, it looks like that time was just booked by someone else. Would another time work for you?"
	msgBookingError = "I apologize, something went wrong while booking your appointment. Our team will follow up with you shortly to get it confirmed."
)

// BookAppointment commits an appointment only if the slot is still free at
// commit time, resolving or creating the caller's contact record along the
// way. The availability re-check against a fresh busy-slot read narrows,
// but does not eliminate, the window for two concurrent bookings; the
// external calendar is the system of record and exposes no
// compare-and-swap, so the residual race is accepted.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, req models.BookingRequest) models.BookingResult {
	logger := utils.GetLogger()

	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return models.BookingResult{Success: false, Message: msgNeedDateTime}
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" {
		return models.BookingResult{Success: false, Message: msgNeedContact}
	}

	ri := s.resolve(models.SchedulingRequest{Date: req.Date, Time: req.Time, Timezone: req.Timezone})
	start := ri.Calendar

	// Fresh read, never reused from an earlier availability check.
	busy := s.fetchBusySlots(ctx, start)
	if s.conflicts(start, busy) {
		logger.Info("Booking lost the race, slot taken between check and commit",
			zap.Time("requested", start))
		return models.BookingResult{Success: false, Message: msgSlotTaken}
	}

	contactID, err := s.resolveContact(ctx, req)
	if err != nil {
		logger.Error("Contact resolution failed", zap.String("email", req.Email), zap.Error(err))
		return models.BookingResult{Success: false, Message: msgBookingError}
	}

	end := start.Add(s.slotDuration())
	timezone := req.Timezone
	if timezone == "" {
		timezone = s.businessTZ().String()
	}
	appt, err := s.Calendar.CreateAppointment(ctx, models.AppointmentRequest{
		CalendarID:  s.CalendarID,
		ContactID:   contactID,
		StartTimeMs: start.UnixMilli(),
		EndTimeMs:   end.UnixMilli(),
		Title:       fmt.Sprintf("Appointment with %s", req.FullName),
		Notes:       fmt.Sprintf("Booked by voice assistant. Requested timezone: %s", timezone),
		Status:      models.StatusConfirmed,
	})
	if err != nil {
		logger.Error("Appointment create failed", zap.Time("start", start), zap.Error(err))
		return models.BookingResult{Success: false, Message: msgBookingError}
	}

	// Non-critical side effect: record what was asked for on the contact.
	fields := map[string]string{
		"requested_date":     req.Date,
		"requested_time":     req.Time,
		"requested_timezone": timezone,
		"meeting_status":     "booked",
	}
	if err := s.Contacts.UpdateContactFields(ctx, contactID, fields); err != nil {
		logger.Warn("Contact field update failed after booking",
			zap.String("contactId", contactID), zap.Error(err))
	}

	logger.Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("contactId", contactID),
		zap.Time("start", start))

	return models.BookingResult{
		Success:       true,
		Message:       fmt.Sprintf("You're all set! Your appointment is booked for %s.", humanDateTime(ri.Caller)),
		AppointmentID: appt.ID,
		StartTime:     start.Format(time.RFC3339),
	}
}

// resolveContact finds the caller's contact record by email or creates one.
func (s *DefaultSchedulingService) resolveContact(ctx context.Context, req models.BookingRequest) (string, error) {
	existing, err := s.Contacts.FindContactByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("contact lookup failed: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	first, last := splitFullName(req.FullName)
	created, err := s.Contacts.CreateContact(ctx, models.ContactRequest{
		FirstName: first,
		LastName:  last,
		Email:     req.Email,
		Phone:     utils.NormalizePhone(req.Phone),
		Source:    contactSource,
	})
	if err != nil {
		return "", fmt.Errorf("contact create failed: %w", err)
	}
	return created.ID, nil
}

// splitFullName splits a spoken full name into first/last. A single-word
// name duplicates into the last name; the CRM rejects empty last names.
func splitFullName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
