package wage

import (
	"context"
	"math"

	"bizmanage/backend/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// exceptionHoursPerDay is deducted once per attendance record in a wage
	// run, regardless of how the record's hours were derived.
	exceptionHoursPerDay = 1.0

	// bonusExceptionHours is the flat per-day deduction the bonus formula
	// applies to each record's hours. Numerically equal to
	// exceptionHoursPerDay today, but the two formulas are distinct.
	bonusExceptionHours = 1.0

	// DefaultBonusRatePercent approximates one month's pay over a year.
	DefaultBonusRatePercent = 8.33
)

// DataSource is what the calculators need from the persistence layer. It is
// injected so the engine carries no connection state of its own and can be
// tested against fakes. Both methods return pre-filtered, pre-validated
// records; an unknown employee id simply yields an empty slice.
type DataSource interface {
	GetAllEmployees(ctx context.Context) ([]entity.Employee, error)
	GetAttendanceByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end date.Date) ([]entity.Attendance, error)
}

type Service struct {
	data DataSource
}

func NewService(data DataSource) *Service {
	return &Service{data: data}
}

// CalculateWages produces one result row per selected employee over the
// period. Missing attendance is not an error: the row simply shows zeros.
// A data-source failure aborts the whole batch so partial payroll figures
// are never presented as complete.
func (s *Service) CalculateWages(ctx context.Context, req PeriodRequest) ([]WageCalculationResult, error) {
	employees, err := s.employeesFor(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	results := make([]WageCalculationResult, 0, len(employees))
	for _, employee := range employees {
		id := employeeIdent(employee)

		records, err := s.data.GetAttendanceByEmployeeAndDateRange(ctx, id, req.PeriodStart, req.PeriodEnd)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching attendance for %s", id)
		}

		totalHours := SumWorkedHours(records)
		exceptionHours := exceptionHoursPerDay * float64(len(records))
		effectiveHours := math.Max(0, totalHours-exceptionHours)
		dailyWage := dailyWageOf(employee)

		results = append(results, WageCalculationResult{
			EmployeeID:            id,
			EmployeeName:          employeeName(employee),
			TotalHours:            totalHours,
			ExceptionHours:        exceptionHours,
			EffectiveHours:        effectiveHours,
			DailyWage:             dailyWage,
			CalculatedWage:        effectiveHours * dailyWage / hoursPerWorkDay,
			PeriodStart:           req.PeriodStart,
			PeriodEnd:             req.PeriodEnd,
			AttendanceRecordCount: len(records),
		})
	}

	logrus.WithFields(logrus.Fields{
		"employees": len(results),
		"from":      req.PeriodStart.String(),
		"to":        req.PeriodEnd.String(),
	}).Debug("wage calculation finished")

	return results, nil
}

// CalculateBonus recomputes each record's effective daily earnings over the
// period (typically a year) and applies the percentage rate to the sum.
func (s *Service) CalculateBonus(ctx context.Context, req BonusRequest) ([]BonusCalculationResult, error) {
	rate := req.BonusRatePercent
	if rate == 0 {
		rate = DefaultBonusRatePercent
	}

	employees, err := s.employeesFor(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	results := make([]BonusCalculationResult, 0, len(employees))
	for _, employee := range employees {
		id := employeeIdent(employee)

		records, err := s.data.GetAttendanceByEmployeeAndDateRange(ctx, id, req.PeriodStart, req.PeriodEnd)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching attendance for %s", id)
		}

		dailyWage := dailyWageOf(employee)

		var totalEarned float64
		for _, record := range records {
			effectiveHours := math.Max(0, RecordHours(record)-bonusExceptionHours)
			totalEarned += effectiveHours * dailyWage / hoursPerWorkDay
		}

		lastPaid := "Never"
		if employee.LastBonusPaid != nil && *employee.LastBonusPaid != "" {
			lastPaid = *employee.LastBonusPaid
		}

		results = append(results, BonusCalculationResult{
			EmployeeID:       id,
			EmployeeName:     employeeName(employee),
			TotalEarned:      totalEarned,
			BonusRatePercent: rate,
			BonusAmount:      totalEarned * rate / 100,
			PeriodStart:      req.PeriodStart,
			PeriodEnd:        req.PeriodEnd,
			LastBonusPaid:    lastPaid,
		})
	}

	return results, nil
}

// employeesFor loads the batch, collapsed to one element when an employee
// filter is set. A filter matching nothing yields an empty batch, not an
// error.
func (s *Service) employeesFor(ctx context.Context, employeeID *string) ([]entity.Employee, error) {
	employees, err := s.data.GetAllEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching employees")
	}

	if employeeID == nil {
		return employees, nil
	}

	filtered := make([]entity.Employee, 0, 1)
	for _, employee := range employees {
		if employeeIdent(employee) == *employeeID {
			filtered = append(filtered, employee)
		}
	}
	return filtered, nil
}

func employeeIdent(e entity.Employee) string {
	if e.EmployeeID != nil && *e.EmployeeID != "" {
		return *e.EmployeeID
	}
	return ""
}

func employeeName(e entity.Employee) string {
	if e.Name != nil && *e.Name != "" {
		return *e.Name
	}
	return "Unknown"
}

// dailyWageOf prefers the configured daily wage and falls back to the
// generic salary field; unconfigured employees calculate at 0 rather than
// erroring.
func dailyWageOf(e entity.Employee) float64 {
	if e.DailyWage != nil && *e.DailyWage != 0 {
		return *e.DailyWage
	}
	if e.Salary != nil {
		return *e.Salary
	}
	return 0
}
