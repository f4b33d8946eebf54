package purchase

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit         *int
	Offset        *int
	Page          *int
	Search        *string
	Category      *string
	PaymentStatus *string
	From          *string
	To            *string
}

type GetListResponse struct {
	ID            int      `json:"id"`
	PurchaseID    *string  `json:"purchase_id"`
	ItemName      *string  `json:"item_name"`
	Quantity      *int     `json:"quantity"`
	TotalPrice    *float64 `json:"total_price"`
	SupplierName  *string  `json:"supplier_name"`
	Date          *string  `json:"date"`
	PaymentStatus *string  `json:"payment_status"`
	DueAmount     *float64 `json:"due_amount"`
	Category      *string  `json:"category"`
}

type CreateRequest struct {
	PurchaseID      *string  `json:"purchase_id" form:"purchase_id"`
	ItemName        *string  `json:"item_name" form:"item_name"`
	Quantity        *int     `json:"quantity" form:"quantity"`
	UnitPrice       *float64 `json:"unit_price" form:"unit_price"`
	TotalPrice      *float64 `json:"total_price" form:"total_price"`
	SupplierName    *string  `json:"supplier_name" form:"supplier_name"`
	SupplierContact *string  `json:"supplier_contact" form:"supplier_contact"`
	SupplierAddress *string  `json:"supplier_address" form:"supplier_address"`
	Date            *string  `json:"date" form:"date"`
	PaymentMethod   *string  `json:"payment_method" form:"payment_method"`
	PaymentStatus   *string  `json:"payment_status" form:"payment_status"`
	PaidAmount      *float64 `json:"paid_amount" form:"paid_amount"`
	DueAmount       *float64 `json:"due_amount" form:"due_amount"`
	InvoiceNumber   *string  `json:"invoice_number" form:"invoice_number"`
	DeliveryDate    *string  `json:"delivery_date" form:"delivery_date"`
	Category        *string  `json:"category" form:"category"`
	Notes           *string  `json:"notes" form:"notes"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:purchases"`

	ID              int       `json:"id" bun:"-"`
	PurchaseID      *string   `json:"purchase_id" bun:"purchase_id"`
	ItemName        *string   `json:"item_name" bun:"item_name"`
	Quantity        *int      `json:"quantity" bun:"quantity"`
	UnitPrice       *float64  `json:"unit_price" bun:"unit_price"`
	TotalPrice      *float64  `json:"total_price" bun:"total_price"`
	SupplierName    *string   `json:"supplier_name" bun:"supplier_name"`
	SupplierContact *string   `json:"supplier_contact" bun:"supplier_contact"`
	SupplierAddress *string   `json:"supplier_address" bun:"supplier_address"`
	Date            *string   `json:"date" bun:"date"`
	PaymentMethod   *string   `json:"payment_method" bun:"payment_method"`
	PaymentStatus   *string   `json:"payment_status" bun:"payment_status"`
	PaidAmount      *float64  `json:"paid_amount" bun:"paid_amount"`
	DueAmount       *float64  `json:"due_amount" bun:"due_amount"`
	InvoiceNumber   *string   `json:"invoice_number" bun:"invoice_number"`
	DeliveryDate    *string   `json:"delivery_date" bun:"delivery_date"`
	Category        *string   `json:"category" bun:"category"`
	Notes           *string   `json:"notes" bun:"notes"`
	CreatedAt       time.Time `json:"-" bun:"created_at"`
	CreatedBy       int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID              int      `json:"id" form:"id"`
	ItemName        *string  `json:"item_name" form:"item_name"`
	Quantity        *int     `json:"quantity" form:"quantity"`
	UnitPrice       *float64 `json:"unit_price" form:"unit_price"`
	TotalPrice      *float64 `json:"total_price" form:"total_price"`
	SupplierName    *string  `json:"supplier_name" form:"supplier_name"`
	SupplierContact *string  `json:"supplier_contact" form:"supplier_contact"`
	SupplierAddress *string  `json:"supplier_address" form:"supplier_address"`
	Date            *string  `json:"date" form:"date"`
	PaymentMethod   *string  `json:"payment_method" form:"payment_method"`
	PaymentStatus   *string  `json:"payment_status" form:"payment_status"`
	PaidAmount      *float64 `json:"paid_amount" form:"paid_amount"`
	DueAmount       *float64 `json:"due_amount" form:"due_amount"`
	InvoiceNumber   *string  `json:"invoice_number" form:"invoice_number"`
	DeliveryDate    *string  `json:"delivery_date" form:"delivery_date"`
	Category        *string  `json:"category" form:"category"`
	Notes           *string  `json:"notes" form:"notes"`
}
