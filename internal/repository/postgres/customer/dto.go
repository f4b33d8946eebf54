package customer

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
	ID                 int      `json:"id"`
	CustomerID         *string  `json:"customer_id"`
	Name               *string  `json:"name"`
	Phone              *string  `json:"phone"`
	Company            *string  `json:"company"`
	CreditLimit        *float64 `json:"credit_limit"`
	OutstandingBalance *float64 `json:"outstanding_balance"`
	Status             *string  `json:"status"`
}

type CreateRequest struct {
	CustomerID         *string  `json:"customer_id" form:"customer_id"`
	Name               *string  `json:"name" form:"name"`
	Email              *string  `json:"email" form:"email"`
	Phone              *string  `json:"phone" form:"phone"`
	Company            *string  `json:"company" form:"company"`
	Address            *string  `json:"address" form:"address"`
	GstNumber          *string  `json:"gst_number" form:"gst_number"`
	CreditLimit        *float64 `json:"credit_limit" form:"credit_limit"`
	OutstandingBalance *float64 `json:"outstanding_balance" form:"outstanding_balance"`
	Status             *string  `json:"status" form:"status"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:customers"`

	ID                 int       `json:"id" bun:"-"`
	CustomerID         *string   `json:"customer_id" bun:"customer_id"`
	Name               *string   `json:"name" bun:"name"`
	Email              *string   `json:"email" bun:"email"`
	Phone              *string   `json:"phone" bun:"phone"`
	Company            *string   `json:"company" bun:"company"`
	Address            *string   `json:"address" bun:"address"`
	GstNumber          *string   `json:"gst_number" bun:"gst_number"`
	CreditLimit        *float64  `json:"credit_limit" bun:"credit_limit"`
	OutstandingBalance *float64  `json:"outstanding_balance" bun:"outstanding_balance"`
	Status             *string   `json:"status" bun:"status"`
	CreatedAt          time.Time `json:"-" bun:"created_at"`
	CreatedBy          int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID                 int      `json:"id" form:"id"`
	Name               *string  `json:"name" form:"name"`
	Email              *string  `json:"email" form:"email"`
	Phone              *string  `json:"phone" form:"phone"`
	Company            *string  `json:"company" form:"company"`
	Address            *string  `json:"address" form:"address"`
	GstNumber          *string  `json:"gst_number" form:"gst_number"`
	CreditLimit        *float64 `json:"credit_limit" form:"credit_limit"`
	OutstandingBalance *float64 `json:"outstanding_balance" form:"outstanding_balance"`
	Status             *string  `json:"status" form:"status"`
}
