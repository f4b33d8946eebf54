package payout

import (
	"testing"

	"bizmanage/backend/internal/service/wage"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleWageResult(t *testing.T) wage.WageCalculationResult {
	t.Helper()
	start, err := date.ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := date.ParseDate("2025-01-31")
	require.NoError(t, err)

	return wage.WageCalculationResult{
		EmployeeID:            "EMP001",
		EmployeeName:          "Asha",
		TotalHours:            160,
		ExceptionHours:        20,
		EffectiveHours:        140,
		DailyWage:             800,
		CalculatedWage:        14000,
		PeriodStart:           start,
		PeriodEnd:             end,
		AttendanceRecordCount: 20,
	}
}

func TestWagesToExcel(t *testing.T) {
	buf, err := WagesToExcel([]wage.WageCalculationResult{sampleWageResult(t)})
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Wages", "A2")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", got)

	header, err := f.GetCellValue("Wages", "G1")
	require.NoError(t, err)
	assert.Equal(t, "Calculated Wage", header)
}

func TestBonusesToExcel(t *testing.T) {
	start, err := date.ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := date.ParseDate("2025-12-31")
	require.NoError(t, err)

	buf, err := BonusesToExcel([]wage.BonusCalculationResult{{
		EmployeeID:       "EMP002",
		EmployeeName:     "Ravi",
		TotalEarned:      96000,
		BonusRatePercent: 8.33,
		BonusAmount:      7996.8,
		PeriodStart:      start,
		PeriodEnd:        end,
		LastBonusPaid:    "Never",
	}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Bonuses", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Never", got)
}

func TestPayslipPDF(t *testing.T) {
	buf, err := PayslipPDF("Acme Traders", sampleWageResult(t))
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	// PDF header
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestBonusSlipPDF(t *testing.T) {
	start, err := date.ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := date.ParseDate("2025-12-31")
	require.NoError(t, err)

	buf, err := BonusSlipPDF("Acme Traders", wage.BonusCalculationResult{
		EmployeeID:       "EMP002",
		EmployeeName:     "Ravi",
		TotalEarned:      96000,
		BonusRatePercent: 8.33,
		BonusAmount:      7996.8,
		PeriodStart:      start,
		PeriodEnd:        end,
		LastBonusPaid:    "Never",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}
