package wage

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// PeriodRequest selects the employees and date range of a calculation.
// A nil EmployeeID means all employees; the date range is inclusive and the
// data source is expected to return records already restricted to it.
type PeriodRequest struct {
	EmployeeID  *string
	PeriodStart date.Date
	PeriodEnd   date.Date
}

type BonusRequest struct {
	PeriodRequest
	// BonusRatePercent defaults to DefaultBonusRatePercent when zero.
	BonusRatePercent float64
}

// WageCalculationResult is one employee's row for a wage run. Results are
// built fresh per request and never persisted.
type WageCalculationResult struct {
	EmployeeID            string    `json:"employee_id"`
	EmployeeName          string    `json:"employee_name"`
	TotalHours            float64   `json:"total_hours"`
	ExceptionHours        float64   `json:"exception_hours"`
	EffectiveHours        float64   `json:"effective_hours"`
	DailyWage             float64   `json:"daily_wage"`
	CalculatedWage        float64   `json:"calculated_wage"`
	PeriodStart           date.Date `json:"period_start"`
	PeriodEnd             date.Date `json:"period_end"`
	AttendanceRecordCount int       `json:"attendance_record_count"`
}

type BonusCalculationResult struct {
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	TotalEarned      float64   `json:"total_earned"`
	BonusRatePercent float64   `json:"bonus_rate_percent"`
	BonusAmount      float64   `json:"bonus_amount"`
	PeriodStart      date.Date `json:"period_start"`
	PeriodEnd        date.Date `json:"period_end"`
	LastBonusPaid    string    `json:"last_bonus_paid"`
}
