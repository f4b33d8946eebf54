package roster

import (
	"bytes"
	"fmt"

	"bizmanage/backend/internal/repository/postgres/employee"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// EmployeesToExcel renders the employee roster as a workbook for download.
func EmployeesToExcel(employees []employee.GetListResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Employees"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Name", "Phone", "Email", "Position", "Daily Wage", "Status", "Joining Date"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range employees {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), strDeref(entry.EmployeeID))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), strDeref(entry.Name))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), strDeref(entry.Phone))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), strDeref(entry.Email))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), strDeref(entry.Position))
		if entry.DailyWage != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), *entry.DailyWage)
		}
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), strDeref(entry.Status))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), strDeref(entry.JoiningDate))
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing employee workbook")
	}
	return buf, nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
