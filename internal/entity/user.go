package entity

import (
	"github.com/uptrace/bun"
)

// User is a login account, distinct from Employee which is the payroll
// subject. Admin accounts have no employee row.
type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	EmployeeID *string `json:"employee_id" bun:"employee_id"`
	FullName   *string `json:"full_name" bun:"full_name"`
	Password   *string `json:"-" bun:"password"`
	Role       *string `json:"role" bun:"role"`
}
