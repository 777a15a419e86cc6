package scheduling

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"voxcal/models"
	"voxcal/utils"
)

// UpdateAppointmentStatus applies one externally-triggered status
// transition. Confirm and cancel push to the Calendar Directory but report
// success even on upstream failure: the caller already heard the outcome
// spoken, so system state is reconciled best-effort. Rescheduled never
// touches the calendar here; it hands the conversation back to the booking
// flow for a new date and time.
func (s *DefaultSchedulingService) UpdateAppointmentStatus(ctx context.Context, status, appointmentID, notes string) models.StatusUpdateResult {
	logger := utils.GetLogger()
	status = strings.ToLower(strings.TrimSpace(status))

	switch status {
	case models.StatusConfirmed, models.StatusCancelled:
		if strings.TrimSpace(appointmentID) == "" {
			return models.StatusUpdateResult{
				Success: false,
				Message: "I couldn't find that appointment. Could you tell me which appointment you mean?",
			}
		}
		if err := s.Calendar.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
			logger.Warn("Status push failed, reporting soft success",
				zap.String("appointmentId", appointmentID),
				zap.String("status", status),
				zap.Error(err))
		}
		msg := "Perfect, your appointment is confirmed. We look forward to seeing you!"
		if status == models.StatusCancelled {
			msg = "Your appointment has been cancelled. Feel free to call back any time if you'd like to reschedule."
		}
		return models.StatusUpdateResult{Success: true, Message: msg, Status: status}

	case models.StatusRescheduled:
		return models.StatusUpdateResult{
			Success:             true,
			Message:             "No problem! What new date and time would work better for you?",
			Status:              status,
			RequiresNewDateTime: true,
		}

	default:
		return models.StatusUpdateResult{
			Success: false,
			Message: "Invalid status. It must be one of: confirmed, cancelled, or rescheduled.",
		}
	}
}
