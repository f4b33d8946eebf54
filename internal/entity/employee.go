package entity

import (
	"github.com/uptrace/bun"
)

// Employee is the canonical employee shape. Legacy rows that carry only a
// generic salary or an emp_id column are normalized into this by the
// employee repository; nothing above the repository sees field variants.
type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	BasicEntity
	EmployeeID    *string  `json:"employee_id" bun:"employee_id"`
	Name          *string  `json:"name" bun:"name"`
	Phone         *string  `json:"phone" bun:"phone"`
	Email         *string  `json:"email" bun:"email"`
	Position      *string  `json:"position" bun:"position"`
	DailyWage     *float64 `json:"daily_wage" bun:"daily_wage"`
	Salary        *float64 `json:"salary" bun:"salary"`
	Status        *string  `json:"status" bun:"status"`
	JoiningDate   *string  `json:"joining_date" bun:"joining_date"`
	LastBonusPaid *string  `json:"last_bonus_paid" bun:"last_bonus_paid"`
}
