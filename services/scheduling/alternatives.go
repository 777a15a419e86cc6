package scheduling

import (
	"time"

	"voxcal/models"
)

const (
	maxAlternatives = 3
	// Hard cap on examined candidates so a fully-booked week cannot send
	// the search walking forward forever.
	maxProbes = 50
)

// findAlternativeSlots walks forward from business-open on the requested
// day in slot-sized steps, skipping weekends and out-of-hours candidates,
// and collects open slots tested against the same busy list and tolerance
// as the availability check. Results are re-expressed in the caller's
// timezone for speaking back.
func (s *DefaultSchedulingService) findAlternativeSlots(busy []models.BusySlot, requested time.Time, callerLoc *time.Location) []models.AlternativeSlot {
	tz := s.businessTZ()
	day := requested.In(tz)
	candidate := time.Date(day.Year(), day.Month(), day.Day(), s.openHour(), 0, 0, 0, tz)

	var alts []models.AlternativeSlot
	for probes := 0; probes < maxProbes && len(alts) < maxAlternatives; probes++ {
		if wd := candidate.Weekday(); wd == time.Saturday || wd == time.Sunday {
			candidate = s.nextBusinessOpen(candidate)
			continue
		}
		if candidate.Hour() < s.openHour() || candidate.Hour() >= s.closeHour() {
			candidate = s.nextBusinessOpen(candidate)
			continue
		}

		if !s.conflicts(candidate, busy) {
			local := candidate.In(callerLoc)
			alts = append(alts, models.AlternativeSlot{
				Date:     local.Format("2006-01-02"),
				Time:     local.Format("3:04 PM"),
				Timezone: callerLoc.String(),
			})
		}
		candidate = candidate.Add(s.slotDuration())
	}
	return alts
}

// nextBusinessOpen returns business-open on the day after t.
func (s *DefaultSchedulingService) nextBusinessOpen(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), s.openHour(), 0, 0, 0, s.businessTZ())
}
