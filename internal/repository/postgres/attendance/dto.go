package attendance

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	EmployeeID *string
	From       *string
	To         *string
	Status     *string
}

type GetListResponse struct {
	ID           int      `json:"id"`
	EmployeeID   *string  `json:"employee_id"`
	EmployeeName *string  `json:"employee_name"`
	WorkDay      string   `json:"work_day"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	WorkingHours *float64 `json:"working_hours"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
}

type CreateRequest struct {
	EmployeeID   *string  `json:"employee_id" form:"employee_id"`
	WorkDay      string   `json:"work_day" form:"work_day"`
	CheckInTime  *string  `json:"check_in_time" form:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time" form:"check_out_time"`
	WorkingHours *float64 `json:"working_hours" form:"working_hours"`
	Status       *string  `json:"status" form:"status"`
	Notes        *string  `json:"notes" form:"notes"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID           int       `json:"id" bun:"-"`
	EmployeeID   *string   `json:"employee_id" bun:"employee_id"`
	WorkDay      string    `json:"work_day" bun:"work_day"`
	CheckInTime  *string   `json:"check_in_time" bun:"check_in_time"`
	CheckOutTime *string   `json:"check_out_time" bun:"check_out_time"`
	WorkingHours *float64  `json:"working_hours" bun:"working_hours"`
	Status       *string   `json:"status" bun:"status"`
	Notes        *string   `json:"notes" bun:"notes"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID           int      `json:"id" form:"id"`
	WorkDay      *string  `json:"work_day" form:"work_day"`
	CheckInTime  *string  `json:"check_in_time" form:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time" form:"check_out_time"`
	WorkingHours *float64 `json:"working_hours" form:"working_hours"`
	Status       *string  `json:"status" form:"status"`
	Notes        *string  `json:"notes" form:"notes"`
}
