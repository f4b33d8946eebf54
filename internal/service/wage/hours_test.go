package wage

import (
	"testing"

	"bizmanage/backend/internal/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string    { return &s }
func f64Ptr(f float64) *float64  { return &f }

func TestCalculateTotalHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"regular day", "09:00", "17:00", 8},
		{"overnight wraparound", "22:00", "06:00", 8},
		{"twelve hour input", "09:00 AM", "06:30 PM", 9.5},
		{"fractional", "09:15", "13:45", 4.5},
		{"missing check-in", "", "17:00", 0},
		{"missing check-out", "09:00", "", 0},
		{"sentinel check-out", "09:00", "--:--", 0},
		{"malformed check-in", "late", "17:00", 0},
		{"same minute", "09:00", "09:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateTotalHours(tt.checkIn, tt.checkOut), 1e-9)
		})
	}
}

func TestCalculateTotalHours_NeverNegative(t *testing.T) {
	pairs := [][2]string{
		{"09:00", "17:00"}, {"17:00", "09:00"}, {"23:59", "00:01"},
		{"00:00", "23:59"}, {"12:00 PM", "12:00 AM"},
	}
	for _, p := range pairs {
		assert.GreaterOrEqual(t, CalculateTotalHours(p[0], p[1]), 0.0, "pair %v", p)
	}
}

func TestRecordHours_Priority(t *testing.T) {
	tests := []struct {
		name   string
		record entity.Attendance
		want   float64
	}{
		{
			"check-in/out pair wins over working_hours",
			entity.Attendance{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:00"), WorkingHours: f64Ptr(5)},
			9,
		},
		{
			"working_hours used when a time is missing",
			entity.Attendance{CheckInTime: strPtr("09:00"), WorkingHours: f64Ptr(7.5)},
			7.5,
		},
		{
			"present without data falls back to 8",
			entity.Attendance{Status: strPtr("present")},
			8,
		},
		{
			"zero working_hours defers to status",
			entity.Attendance{WorkingHours: f64Ptr(0), Status: strPtr("present")},
			8,
		},
		{
			"absent contributes nothing",
			entity.Attendance{Status: strPtr("absent")},
			0,
		},
		{
			"empty record contributes nothing",
			entity.Attendance{},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecordHours(tt.record), 1e-9)
		})
	}
}

func TestSumWorkedHours_Additive(t *testing.T) {
	records := []entity.Attendance{
		{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("13:00")},
		{CheckInTime: strPtr("14:00"), CheckOutTime: strPtr("18:30")},
		{Status: strPtr("present")},
	}
	assert.InDelta(t, 16.5, SumWorkedHours(records), 1e-9)
	assert.Zero(t, SumWorkedHours(nil))
}
