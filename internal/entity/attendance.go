package entity

import (
	"github.com/uptrace/bun"
)

// Attendance is one employee-day record. CheckInTime/CheckOutTime are kept
// as the raw entered strings ("08:30 AM", "17:45", "--:--", "") because the
// wage engine parses them best-effort; WorkingHours, when present, takes
// precedence over the pair.
type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	EmployeeID   *string  `json:"employee_id" bun:"employee_id"`
	WorkDay      string   `json:"work_day" bun:"work_day"`
	CheckInTime  *string  `json:"check_in_time" bun:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time" bun:"check_out_time"`
	WorkingHours *float64 `json:"working_hours" bun:"working_hours"`
	Status       *string  `json:"status" bun:"status"`
	Notes        *string  `json:"notes" bun:"notes"`
}
