package employee

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Status *string
}

type GetListResponse struct {
	ID          int      `json:"id"`
	EmployeeID  *string  `json:"employee_id"`
	Name        *string  `json:"name"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Position    *string  `json:"position"`
	DailyWage   *float64 `json:"daily_wage"`
	Status      *string  `json:"status"`
	JoiningDate *string  `json:"joining_date"`
}

type CreateRequest struct {
	EmployeeID  *string  `json:"employee_id" form:"employee_id"`
	Name        *string  `json:"name" form:"name"`
	Phone       *string  `json:"phone" form:"phone"`
	Email       *string  `json:"email" form:"email"`
	Position    *string  `json:"position" form:"position"`
	DailyWage   *float64 `json:"daily_wage" form:"daily_wage"`
	Salary      *float64 `json:"salary" form:"salary"`
	Status      *string  `json:"status" form:"status"`
	JoiningDate *string  `json:"joining_date" form:"joining_date"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:employees"`

	ID          int       `json:"id" bun:"-"`
	EmployeeID  *string   `json:"employee_id" bun:"employee_id"`
	Name        *string   `json:"name" bun:"name"`
	Phone       *string   `json:"phone" bun:"phone"`
	Email       *string   `json:"email" bun:"email"`
	Position    *string   `json:"position" bun:"position"`
	DailyWage   *float64  `json:"daily_wage" bun:"daily_wage"`
	Salary      *float64  `json:"salary" bun:"salary"`
	Status      *string   `json:"status" bun:"status"`
	JoiningDate *string   `json:"joining_date" bun:"joining_date"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID          int      `json:"id" form:"id"`
	EmployeeID  *string  `json:"employee_id" form:"employee_id"`
	Name        *string  `json:"name" form:"name"`
	Phone       *string  `json:"phone" form:"phone"`
	Email       *string  `json:"email" form:"email"`
	Position    *string  `json:"position" form:"position"`
	DailyWage   *float64 `json:"daily_wage" form:"daily_wage"`
	Salary      *float64 `json:"salary" form:"salary"`
	Status      *string  `json:"status" form:"status"`
	JoiningDate *string  `json:"joining_date" form:"joining_date"`
}
