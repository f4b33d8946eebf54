package payout

import (
	"bytes"
	"fmt"

	"bizmanage/backend/internal/service/wage"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WagesToExcel renders a wage run as a one-sheet workbook, one row per
// employee, ready to stream as a download.
func WagesToExcel(results []wage.WageCalculationResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Wages"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Name", "Total Hours", "Exception Hours", "Effective Hours", "Daily Wage", "Calculated Wage", "Period Start", "Period End", "Records"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range results {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.TotalHours)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.ExceptionHours)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.EffectiveHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.DailyWage)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.CalculatedWage)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.PeriodStart.String())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), entry.PeriodEnd.String())
		f.SetCellValue(sheet, fmt.Sprintf("J%d", rowNum), entry.AttendanceRecordCount)
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing wage workbook")
	}
	return buf, nil
}

// BonusesToExcel renders a bonus run the same way.
func BonusesToExcel(results []wage.BonusCalculationResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Bonuses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Name", "Total Earned", "Bonus Rate %", "Bonus Amount", "Period Start", "Period End", "Last Bonus Paid"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range results {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.TotalEarned)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.BonusRatePercent)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.BonusAmount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.PeriodStart.String())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.PeriodEnd.String())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.LastBonusPaid)
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing bonus workbook")
	}
	return buf, nil
}
