package supplier

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	Category *string
}

type GetListResponse struct {
	ID                int      `json:"id"`
	Name              *string  `json:"name"`
	ContactNumber     *string  `json:"contact_number"`
	Category          *string  `json:"category"`
	TotalPurchases    *float64 `json:"total_purchases"`
	OutstandingAmount *float64 `json:"outstanding_amount"`
}

type CreateRequest struct {
	Name              *string  `json:"name" form:"name"`
	ContactNumber     *string  `json:"contact_number" form:"contact_number"`
	Email             *string  `json:"email" form:"email"`
	Address           *string  `json:"address" form:"address"`
	GstNumber         *string  `json:"gst_number" form:"gst_number"`
	PaymentTerms      *string  `json:"payment_terms" form:"payment_terms"`
	Category          *string  `json:"category" form:"category"`
	TotalPurchases    *float64 `json:"total_purchases" form:"total_purchases"`
	OutstandingAmount *float64 `json:"outstanding_amount" form:"outstanding_amount"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:suppliers"`

	ID                int       `json:"id" bun:"-"`
	Name              *string   `json:"name" bun:"name"`
	ContactNumber     *string   `json:"contact_number" bun:"contact_number"`
	Email             *string   `json:"email" bun:"email"`
	Address           *string   `json:"address" bun:"address"`
	GstNumber         *string   `json:"gst_number" bun:"gst_number"`
	PaymentTerms      *string   `json:"payment_terms" bun:"payment_terms"`
	Category          *string   `json:"category" bun:"category"`
	TotalPurchases    *float64  `json:"total_purchases" bun:"total_purchases"`
	OutstandingAmount *float64  `json:"outstanding_amount" bun:"outstanding_amount"`
	CreatedAt         time.Time `json:"-" bun:"created_at"`
	CreatedBy         int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID                int      `json:"id" form:"id"`
	Name              *string  `json:"name" form:"name"`
	ContactNumber     *string  `json:"contact_number" form:"contact_number"`
	Email             *string  `json:"email" form:"email"`
	Address           *string  `json:"address" form:"address"`
	GstNumber         *string  `json:"gst_number" form:"gst_number"`
	PaymentTerms      *string  `json:"payment_terms" form:"payment_terms"`
	Category          *string  `json:"category" form:"category"`
	TotalPurchases    *float64 `json:"total_purchases" form:"total_purchases"`
	OutstandingAmount *float64 `json:"outstanding_amount" form:"outstanding_amount"`
}
