package payout

import (
	"bytes"
	"fmt"

	"bizmanage/backend/internal/pkg/currency"
	"bizmanage/backend/internal/service/wage"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
)

// PayslipPDF builds a one-page payslip for a single wage result. Amounts
// use "INR" rather than the rupee sign since the built-in PDF fonts only
// cover cp1252.
func PayslipPDF(companyName string, result wage.WageCalculationResult) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Payslip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	period := fmt.Sprintf("%s to %s", result.PeriodStart.String(), result.PeriodEnd.String())

	rows := [][2]string{
		{"Employee ID", result.EmployeeID},
		{"Name", result.EmployeeName},
		{"Period", period},
		{"Attendance Records", fmt.Sprintf("%d", result.AttendanceRecordCount)},
		{"Total Hours", fmt.Sprintf("%.2f", result.TotalHours)},
		{"Exception Hours", fmt.Sprintf("%.2f", result.ExceptionHours)},
		{"Effective Hours", fmt.Sprintf("%.2f", result.EffectiveHours)},
		{"Daily Wage", "INR " + currency.FormatNumber(result.DailyWage)},
		{"Calculated Wage", "INR " + currency.FormatNumber(result.CalculatedWage)},
	}

	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 8, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing payslip pdf")
	}
	return &buf, nil
}

// BonusSlipPDF is the bonus counterpart of PayslipPDF.
func BonusSlipPDF(companyName string, result wage.BonusCalculationResult) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Bonus Statement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	period := fmt.Sprintf("%s to %s", result.PeriodStart.String(), result.PeriodEnd.String())

	rows := [][2]string{
		{"Employee ID", result.EmployeeID},
		{"Name", result.EmployeeName},
		{"Period", period},
		{"Total Earned", "INR " + currency.FormatNumber(result.TotalEarned)},
		{"Bonus Rate", fmt.Sprintf("%.2f%%", result.BonusRatePercent)},
		{"Bonus Amount", "INR " + currency.FormatNumber(result.BonusAmount)},
		{"Last Bonus Paid", result.LastBonusPaid},
	}

	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 8, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing bonus pdf")
	}
	return &buf, nil
}
