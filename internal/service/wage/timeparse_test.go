package wage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime_NoValue(t *testing.T) {
	for _, raw := range []string{"", "--:--", "   ", "\t"} {
		_, ok := ParseTime(raw)
		assert.False(t, ok, "input %q should have no value", raw)
	}
}

func TestParseTime_TwelveHour(t *testing.T) {
	tests := []struct {
		raw    string
		hour   int
		minute int
	}{
		{"08:30 AM", 8, 30},
		{"08:30 PM", 20, 30},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"01:05 pm", 13, 5},
		{"11:59PM", 23, 59},
		{"9 AM", 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTime(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, TimeOfDay{Hour: tt.hour, Minute: tt.minute}, got)
		})
	}
}

func TestParseTime_TwentyFourHour(t *testing.T) {
	tests := []struct {
		raw    string
		hour   int
		minute int
	}{
		{"17:45", 17, 45},
		{"00:00", 0, 0},
		{"09:05", 9, 5},
		{"7", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTime(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, TimeOfDay{Hour: tt.hour, Minute: tt.minute}, got)
		})
	}
}

func TestParseTime_Malformed(t *testing.T) {
	for _, raw := range []string{"ab:cd", "nine thirty", "8:xx AM", "xx:30"} {
		_, ok := ParseTime(raw)
		assert.False(t, ok, "input %q should not parse", raw)
	}
}
