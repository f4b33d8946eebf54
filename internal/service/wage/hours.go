package wage

import (
	"math"

	"bizmanage/backend/internal/entity"
)

const (
	// hoursPerWorkDay divides effective hours into day-fractions of the
	// daily wage.
	hoursPerWorkDay = 8.0

	// presentFallbackHours is credited for a day marked present without any
	// time data.
	presentFallbackHours = 8.0

	statusPresent = "present"

	minutesPerDay = 24 * 60
)

// CalculateTotalHours returns the fractional hours between a check-in and
// check-out time string. Either side failing to parse yields 0. A check-out
// numerically earlier than the check-in is taken as an overnight shift
// ending the next day; there is deliberately no upper bound on the gap, so a
// forgotten check-out looks the same as a long night shift (matching how the
// attendance data has always been interpreted).
func CalculateTotalHours(checkIn, checkOut string) float64 {
	in, ok := ParseTime(checkIn)
	if !ok {
		return 0
	}
	out, ok := ParseTime(checkOut)
	if !ok {
		return 0
	}

	inMinutes := in.Hour*60 + in.Minute
	outMinutes := out.Hour*60 + out.Minute
	if outMinutes < inMinutes {
		outMinutes += minutesPerDay
	}

	return math.Max(0, float64(outMinutes-inMinutes)/60.0)
}

// RecordHours derives the worked hours of one attendance record, in priority
// order: check-in/out pair, then the directly entered working_hours, then the
// 8-hour fallback for a bare "present" flag.
func RecordHours(record entity.Attendance) float64 {
	checkIn := strDeref(record.CheckInTime)
	checkOut := strDeref(record.CheckOutTime)

	switch {
	case checkIn != "" && checkOut != "":
		return CalculateTotalHours(checkIn, checkOut)
	case record.WorkingHours != nil && *record.WorkingHours != 0:
		return *record.WorkingHours
	case record.Status != nil && *record.Status == statusPresent:
		return presentFallbackHours
	default:
		return 0
	}
}

// SumWorkedHours totals the derived hours over a period's records. Multiple
// records on the same day sum additively; nothing is cached between calls.
func SumWorkedHours(records []entity.Attendance) float64 {
	var total float64
	for _, record := range records {
		total += RecordHours(record)
	}
	return total
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
