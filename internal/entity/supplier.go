package entity

import (
	"github.com/uptrace/bun"
)

type Supplier struct {
	bun.BaseModel `bun:"table:suppliers"`

	BasicEntity
	Name              *string  `json:"name" bun:"name"`
	ContactNumber     *string  `json:"contact_number" bun:"contact_number"`
	Email             *string  `json:"email" bun:"email"`
	Address           *string  `json:"address" bun:"address"`
	GstNumber         *string  `json:"gst_number" bun:"gst_number"`
	PaymentTerms      *string  `json:"payment_terms" bun:"payment_terms"`
	Category          *string  `json:"category" bun:"category"`
	TotalPurchases    *float64 `json:"total_purchases" bun:"total_purchases"`
	OutstandingAmount *float64 `json:"outstanding_amount" bun:"outstanding_amount"`
}
