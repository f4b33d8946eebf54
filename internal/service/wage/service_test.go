package wage

import (
	"context"
	"testing"

	"bizmanage/backend/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDataSource struct {
	employees    []entity.Employee
	records      map[string][]entity.Attendance
	employeesErr error
	recordsErr   error
}

func (f *fakeDataSource) GetAllEmployees(ctx context.Context) ([]entity.Employee, error) {
	if f.employeesErr != nil {
		return nil, f.employeesErr
	}
	return f.employees, nil
}

func (f *fakeDataSource) GetAttendanceByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end date.Date) ([]entity.Attendance, error) {
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.records[employeeID], nil
}

func mustDate(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.ParseDate(s)
	require.NoError(t, err)
	return d
}

func period(t *testing.T) PeriodRequest {
	t.Helper()
	return PeriodRequest{
		PeriodStart: mustDate(t, "2024-01-01"),
		PeriodEnd:   mustDate(t, "2024-01-31"),
	}
}

func employee(id, name string, dailyWage float64) entity.Employee {
	return entity.Employee{
		EmployeeID: strPtr(id),
		Name:       strPtr(name),
		DailyWage:  f64Ptr(dailyWage),
	}
}

func TestCalculateWages_RoundTrip(t *testing.T) {
	// 9 worked hours, 1 exception hour -> 8 effective -> exactly one daily wage.
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP001", "Asha", 800)},
		records: map[string][]entity.Attendance{
			"EMP001": {{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:00")}},
		},
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "EMP001", r.EmployeeID)
	assert.Equal(t, "Asha", r.EmployeeName)
	assert.InDelta(t, 9, r.TotalHours, 1e-9)
	assert.InDelta(t, 1, r.ExceptionHours, 1e-9)
	assert.InDelta(t, 8, r.EffectiveHours, 1e-9)
	assert.InDelta(t, 800, r.CalculatedWage, 1e-9)
	assert.Equal(t, 1, r.AttendanceRecordCount)
}

func TestCalculateWages_FullPeriodScenario(t *testing.T) {
	// Day 1: 09:00-18:00 pair (9h). Day 2: 7.5h entered directly.
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP002", "Binod", 1000)},
		records: map[string][]entity.Attendance{
			"EMP002": {
				{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:00")},
				{WorkingHours: f64Ptr(7.5)},
			},
		},
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.InDelta(t, 16.5, r.TotalHours, 1e-9)
	assert.InDelta(t, 2.0, r.ExceptionHours, 1e-9)
	assert.InDelta(t, 14.5, r.EffectiveHours, 1e-9)
	assert.InDelta(t, 1812.5, r.CalculatedWage, 1e-9)
}

func TestCalculateWages_NoRecordsIsNotAnError(t *testing.T) {
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP003", "Chitra", 600)},
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Zero(t, r.TotalHours)
	assert.Zero(t, r.ExceptionHours)
	assert.Zero(t, r.EffectiveHours)
	assert.Zero(t, r.CalculatedWage)
	assert.Zero(t, r.AttendanceRecordCount)
}

func TestCalculateWages_ExceptionExceedsHours(t *testing.T) {
	// Two records deriving only 1.5h total; exception is 2h; effective floors at 0.
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP004", "Divya", 900)},
		records: map[string][]entity.Attendance{
			"EMP004": {
				{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("10:30")},
				{Status: strPtr("absent")},
			},
		},
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].EffectiveHours)
	assert.Zero(t, results[0].CalculatedWage)
}

func TestCalculateWages_SalaryFallback(t *testing.T) {
	salaried := entity.Employee{
		EmployeeID: strPtr("EMP005"),
		Name:       strPtr("Esha"),
		Salary:     f64Ptr(400),
	}
	unconfigured := entity.Employee{
		EmployeeID: strPtr("EMP006"),
		Name:       strPtr("Farhan"),
	}
	data := &fakeDataSource{
		employees: []entity.Employee{salaried, unconfigured},
		records: map[string][]entity.Attendance{
			"EMP005": {{Status: strPtr("present")}},
			"EMP006": {{Status: strPtr("present")}},
		},
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.InDelta(t, 400, results[0].DailyWage, 1e-9)
	assert.InDelta(t, 350, results[0].CalculatedWage, 1e-9) // 7 effective * 400 / 8
	assert.Zero(t, results[1].DailyWage)
	assert.Zero(t, results[1].CalculatedWage)
}

func TestCalculateWages_EmployeeFilter(t *testing.T) {
	data := &fakeDataSource{
		employees: []entity.Employee{
			employee("EMP001", "Asha", 800),
			employee("EMP002", "Binod", 1000),
		},
	}

	req := period(t)
	req.EmployeeID = strPtr("EMP002")

	results, err := NewService(data).CalculateWages(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "EMP002", results[0].EmployeeID)

	req.EmployeeID = strPtr("NOBODY")
	results, err = NewService(data).CalculateWages(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCalculateWages_DataSourceFailureAbortsBatch(t *testing.T) {
	data := &fakeDataSource{
		employees: []entity.Employee{
			employee("EMP001", "Asha", 800),
			employee("EMP002", "Binod", 1000),
		},
		recordsErr: errors.New("connection refused"),
	}

	results, err := NewService(data).CalculateWages(context.Background(), period(t))
	assert.Error(t, err)
	assert.Nil(t, results)

	data.recordsErr = nil
	data.employeesErr = errors.New("connection refused")
	results, err = NewService(data).CalculateWages(context.Background(), period(t))
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestCalculateBonus_SingleRecord(t *testing.T) {
	// 8 worked hours minus the 1-hour exception -> 700 earned at wage 800.
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP001", "Asha", 800)},
		records: map[string][]entity.Attendance{
			"EMP001": {{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("17:00")}},
		},
	}

	req := BonusRequest{PeriodRequest: period(t), BonusRatePercent: 8.33}
	results, err := NewService(data).CalculateBonus(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.InDelta(t, 700, r.TotalEarned, 1e-9)
	assert.InDelta(t, 8.33, r.BonusRatePercent, 1e-9)
	assert.InDelta(t, 58.31, r.BonusAmount, 0.005)
	assert.Equal(t, "Never", r.LastBonusPaid)
}

func TestCalculateBonus_DefaultRate(t *testing.T) {
	data := &fakeDataSource{
		employees: []entity.Employee{employee("EMP001", "Asha", 800)},
	}

	results, err := NewService(data).CalculateBonus(context.Background(), BonusRequest{PeriodRequest: period(t)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, DefaultBonusRatePercent, results[0].BonusRatePercent, 1e-9)
	assert.Zero(t, results[0].TotalEarned)
	assert.Zero(t, results[0].BonusAmount)
}

func TestCalculateBonus_PerRecordException(t *testing.T) {
	// Unlike the wage path, the bonus exception applies before summing:
	// a 0.5h day floors to 0 instead of borrowing from the 9h day.
	emp := employee("EMP001", "Asha", 800)
	emp.LastBonusPaid = strPtr("2023-10-01")
	data := &fakeDataSource{
		employees: []entity.Employee{emp},
		records: map[string][]entity.Attendance{
			"EMP001": {
				{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("18:00")}, // 9h -> 8 effective
				{CheckInTime: strPtr("09:00"), CheckOutTime: strPtr("09:30")}, // 0.5h -> 0 effective
			},
		},
	}

	req := BonusRequest{PeriodRequest: period(t), BonusRatePercent: 10}
	results, err := NewService(data).CalculateBonus(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.InDelta(t, 800, r.TotalEarned, 1e-9)
	assert.InDelta(t, 80, r.BonusAmount, 1e-9)
	assert.Equal(t, "2023-10-01", r.LastBonusPaid)
}
