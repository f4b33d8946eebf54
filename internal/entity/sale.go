package entity

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

type Sale struct {
	bun.BaseModel `bun:"table:sales"`

	BasicEntity
	SaleID        *string         `json:"sale_id" bun:"sale_id"`
	CustomerID    *string         `json:"customer_id" bun:"customer_id"`
	CustomerName  *string         `json:"customer_name" bun:"customer_name"`
	Items         json.RawMessage `json:"items" bun:"items,type:jsonb"`
	Subtotal      *float64        `json:"subtotal" bun:"subtotal"`
	TotalDiscount *float64        `json:"total_discount" bun:"total_discount"`
	TotalTax      *float64        `json:"total_tax" bun:"total_tax"`
	TotalAmount   *float64        `json:"total_amount" bun:"total_amount"`
	PaymentMethod *string         `json:"payment_method" bun:"payment_method"`
	PaymentStatus *string         `json:"payment_status" bun:"payment_status"`
	Status        *string         `json:"status" bun:"status"`
	OrderDate     *string         `json:"order_date" bun:"order_date"`
	DeliveryDate  *string         `json:"delivery_date" bun:"delivery_date"`
	Notes         *string         `json:"notes" bun:"notes"`
}
