package scheduling

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"voxcal/models"
	"voxcal/utils"
)

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	time12Re    = regexp.MustCompile(`(?i)^(\d{1,2})(?::([0-5]\d))?\s*([ap])\.?m\.?$`)
	time24Re    = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)
	bareHourRe  = regexp.MustCompile(`^(\d{1,2})$`)
	hasLetterRe = regexp.MustCompile(`[A-Za-z]`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Default appointment hour when the caller gave no time at all.
const (
	defaultHour   = 9
	defaultMinute = 0
)

// resolve turns the request's free-form (date, time, timezone) strings into
// one absolute instant, expressed both in the caller's timezone and in the
// calendar's operating timezone.
//
// Unparseable input never fails the call: a date the resolver cannot read
// degrades to today, a time it cannot read degrades to the business-day
// start, and the outcome is marked Degraded so callers and tests can tell
// the fallback apart from a genuine "today at 9".
func (s *DefaultSchedulingService) resolve(req models.SchedulingRequest) models.ResolvedInstant {
	logger := utils.GetLogger()

	callerLoc := s.businessTZ()
	degraded := false
	reason := ""
	if tz := strings.TrimSpace(req.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			degraded = true
			reason = "unknown timezone " + tz
			logger.Warn("Unknown caller timezone, using business timezone",
				zap.String("timezone", tz))
		} else {
			callerLoc = loc
		}
	}

	base := s.now().In(callerLoc)

	day, dayDegraded, dayReason := s.resolveDate(req.Date, base, callerLoc)
	if dayDegraded {
		degraded = true
		reason = dayReason
		logger.Warn("Could not parse requested date, defaulting to today",
			zap.String("date", req.Date), zap.String("reason", dayReason))
	}

	hour, minute, timeDegraded, timeReason := resolveTimeOfDay(req.Time)
	if timeDegraded {
		degraded = true
		reason = timeReason
		logger.Warn("Could not parse requested time, defaulting to business-day start",
			zap.String("time", req.Time), zap.String("reason", timeReason))
	}

	callerTime := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, callerLoc)
	return models.ResolvedInstant{
		Caller:         callerTime,
		Calendar:       callerTime.In(s.businessTZ()),
		Degraded:       degraded,
		DegradedReason: reason,
	}
}

// resolveDate resolves the date token against "now" in the caller's
// timezone. Priority order: relative words, weekday names, strict ISO,
// generic natural-language parsing, then the today fallback.
func (s *DefaultSchedulingService) resolveDate(raw string, base time.Time, loc *time.Location) (time.Time, bool, string) {
	token := strings.ToLower(strings.TrimSpace(raw))

	switch token {
	case "", "today":
		if token == "" {
			return base, true, "empty date"
		}
		return base, false, ""
	case "tomorrow":
		return base.AddDate(0, 0, 1), false, ""
	case "day after tomorrow":
		return base.AddDate(0, 0, 2), false, ""
	}

	if wd, ok := weekdays[token]; ok {
		// A bare weekday name always means the next future occurrence;
		// "Monday" spoken on a Monday is a week out, never today.
		ahead := (int(wd) - int(base.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return base.AddDate(0, 0, ahead), false, ""
	}

	if isoDateRe.MatchString(token) {
		d, err := time.ParseInLocation("2006-01-02", token, loc)
		if err != nil {
			return base, true, "invalid calendar date " + token
		}
		return d, false, ""
	}

	if hasLetterRe.MatchString(token) {
		d, err := dateparse.ParseIn(raw, loc)
		if err != nil {
			return base, true, "unparseable date text " + raw
		}
		return d, false, ""
	}

	return base, true, "unrecognized date format " + raw
}

// resolveTimeOfDay resolves the time token into (hour, minute). Accepted
// forms: 12-hour with an AM/PM marker, 24-hour HH:MM, and a bare hour.
func resolveTimeOfDay(raw string) (int, int, bool, string) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return defaultHour, defaultMinute, false, ""
	}

	if m := time12Re.FindStringSubmatch(token); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 {
			return defaultHour, defaultMinute, true, "hour out of range in " + raw
		}
		meridiem := strings.ToLower(m[3])
		if meridiem == "a" && hour == 12 {
			hour = 0
		} else if meridiem == "p" && hour != 12 {
			hour += 12
		}
		return hour, minute, false, ""
	}

	if m := time24Re.FindStringSubmatch(token); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 {
			return defaultHour, defaultMinute, true, "hour out of range in " + raw
		}
		return hour, minute, false, ""
	}

	if m := bareHourRe.FindStringSubmatch(token); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			return defaultHour, defaultMinute, true, "hour out of range in " + raw
		}
		return hour, 0, false, ""
	}

	return defaultHour, defaultMinute, true, "unparseable time text " + raw
}

// humanDateTime renders an instant the way it should be spoken back to the
// caller, e.g. "Monday, January 2 at 2:30 PM".
func humanDateTime(t time.Time) string {
	return t.Format("Monday, January 2 at 3:04 PM")
}
