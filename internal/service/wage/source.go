package wage

import (
	"context"

	"bizmanage/backend/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

type employeeReader interface {
	GetAllEmployees(ctx context.Context) ([]entity.Employee, error)
}

type attendanceReader interface {
	GetAttendanceByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end date.Date) ([]entity.Attendance, error)
}

// RepositorySource joins the employee and attendance repositories into the
// single DataSource the calculators consume.
type RepositorySource struct {
	employees  employeeReader
	attendance attendanceReader
}

func NewRepositorySource(employees employeeReader, attendance attendanceReader) *RepositorySource {
	return &RepositorySource{employees: employees, attendance: attendance}
}

func (s *RepositorySource) GetAllEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employees.GetAllEmployees(ctx)
}

func (s *RepositorySource) GetAttendanceByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end date.Date) ([]entity.Attendance, error) {
	return s.attendance.GetAttendanceByEmployeeAndDateRange(ctx, employeeID, start, end)
}
