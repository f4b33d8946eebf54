package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Role   *string
}

type SignInRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Password   string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Role       *string `json:"role"`
}

type CreateRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password" form:"password"`
	FullName   *string `json:"full_name" form:"full_name"`
	Role       *string `json:"role" form:"role"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID *string   `json:"employee_id" bun:"employee_id"`
	Password   *string   `json:"-" bun:"password"`
	FullName   *string   `json:"full_name" bun:"full_name"`
	Role       *string   `json:"role" bun:"role"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
	CreatedBy  int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password" form:"password"`
	FullName   *string `json:"full_name" form:"full_name"`
	Role       *string `json:"role" form:"role"`
}
