package entity

import (
	"github.com/uptrace/bun"
)

type Purchase struct {
	bun.BaseModel `bun:"table:purchases"`

	BasicEntity
	PurchaseID      *string  `json:"purchase_id" bun:"purchase_id"`
	ItemName        *string  `json:"item_name" bun:"item_name"`
	Quantity        *int     `json:"quantity" bun:"quantity"`
	UnitPrice       *float64 `json:"unit_price" bun:"unit_price"`
	TotalPrice      *float64 `json:"total_price" bun:"total_price"`
	SupplierName    *string  `json:"supplier_name" bun:"supplier_name"`
	SupplierContact *string  `json:"supplier_contact" bun:"supplier_contact"`
	SupplierAddress *string  `json:"supplier_address" bun:"supplier_address"`
	Date            *string  `json:"date" bun:"date"`
	PaymentMethod   *string  `json:"payment_method" bun:"payment_method"`
	PaymentStatus   *string  `json:"payment_status" bun:"payment_status"`
	PaidAmount      *float64 `json:"paid_amount" bun:"paid_amount"`
	DueAmount       *float64 `json:"due_amount" bun:"due_amount"`
	InvoiceNumber   *string  `json:"invoice_number" bun:"invoice_number"`
	DeliveryDate    *string  `json:"delivery_date" bun:"delivery_date"`
	Category        *string  `json:"category" bun:"category"`
	Notes           *string  `json:"notes" bun:"notes"`
}
