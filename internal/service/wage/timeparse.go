package wage

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// noTimeValue is the sentinel the attendance forms store when no time was
// entered.
const noTimeValue = "--:--"

type TimeOfDay struct {
	Hour   int
	Minute int
}

var meridiemRe = regexp.MustCompile(`(?i)\s*(AM|PM)`)

// ParseTime parses a time-of-day string in 12-hour ("08:30 AM") or 24-hour
// ("17:45") form. Blank, whitespace and sentinel input mean "no value" and
// report ok=false. Malformed input also reports ok=false, after logging:
// attendance data is entered by hand, and a bad time must degrade to a zero
// contribution instead of aborting a whole-period calculation.
func ParseTime(raw string) (TimeOfDay, bool) {
	clean := strings.TrimSpace(raw)
	if clean == "" || clean == noTimeValue {
		return TimeOfDay{}, false
	}

	upper := strings.ToUpper(clean)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		hour, minute, ok := splitClock(strings.TrimSpace(meridiemRe.ReplaceAllString(clean, "")))
		if !ok {
			logrus.WithField("value", raw).Warn("unparsable 12-hour time, treating as absent")
			return TimeOfDay{}, false
		}

		if strings.Contains(upper, "PM") && hour != 12 {
			hour += 12
		} else if strings.Contains(upper, "AM") && hour == 12 {
			hour = 0
		}

		return TimeOfDay{Hour: hour, Minute: minute}, true
	}

	hour, minute, ok := splitClock(clean)
	if !ok {
		logrus.WithField("value", raw).Warn("unparsable 24-hour time, treating as absent")
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// splitClock splits "HH:MM" into its parts. The minute defaults to 0 when
// absent ("17" parses as 17:00).
func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}

	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, false
		}
	}

	return hour, minute, true
}
