package entity

import (
	"github.com/uptrace/bun"
)

type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	BasicEntity
	CustomerID         *string  `json:"customer_id" bun:"customer_id"`
	Name               *string  `json:"name" bun:"name"`
	Email              *string  `json:"email" bun:"email"`
	Phone              *string  `json:"phone" bun:"phone"`
	Company            *string  `json:"company" bun:"company"`
	Address            *string  `json:"address" bun:"address"`
	GstNumber          *string  `json:"gst_number" bun:"gst_number"`
	CreditLimit        *float64 `json:"credit_limit" bun:"credit_limit"`
	OutstandingBalance *float64 `json:"outstanding_balance" bun:"outstanding_balance"`
	Status             *string  `json:"status" bun:"status"`
}
