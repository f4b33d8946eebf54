package sale

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit         *int
	Offset        *int
	Page          *int
	Search        *string
	PaymentStatus *string
	From          *string
	To            *string
}

type GetListResponse struct {
	ID            int      `json:"id"`
	SaleID        *string  `json:"sale_id"`
	CustomerID    *string  `json:"customer_id"`
	CustomerName  *string  `json:"customer_name"`
	TotalAmount   *float64 `json:"total_amount"`
	PaymentMethod *string  `json:"payment_method"`
	PaymentStatus *string  `json:"payment_status"`
	Status        *string  `json:"status"`
	OrderDate     *string  `json:"order_date"`
}

type CreateRequest struct {
	SaleID        *string         `json:"sale_id" form:"sale_id"`
	CustomerID    *string         `json:"customer_id" form:"customer_id"`
	CustomerName  *string         `json:"customer_name" form:"customer_name"`
	Items         json.RawMessage `json:"items" form:"items"`
	Subtotal      *float64        `json:"subtotal" form:"subtotal"`
	TotalDiscount *float64        `json:"total_discount" form:"total_discount"`
	TotalTax      *float64        `json:"total_tax" form:"total_tax"`
	TotalAmount   *float64        `json:"total_amount" form:"total_amount"`
	PaymentMethod *string         `json:"payment_method" form:"payment_method"`
	PaymentStatus *string         `json:"payment_status" form:"payment_status"`
	Status        *string         `json:"status" form:"status"`
	OrderDate     *string         `json:"order_date" form:"order_date"`
	DeliveryDate  *string         `json:"delivery_date" form:"delivery_date"`
	Notes         *string         `json:"notes" form:"notes"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:sales"`

	ID            int             `json:"id" bun:"-"`
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
	CreatedAt     time.Time       `json:"-" bun:"created_at"`
	CreatedBy     int             `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID            int             `json:"id" form:"id"`
	CustomerID    *string         `json:"customer_id" form:"customer_id"`
	CustomerName  *string         `json:"customer_name" form:"customer_name"`
	Items         json.RawMessage `json:"items" form:"items"`
	Subtotal      *float64        `json:"subtotal" form:"subtotal"`
	TotalDiscount *float64        `json:"total_discount" form:"total_discount"`
	TotalTax      *float64        `json:"total_tax" form:"total_tax"`
	TotalAmount   *float64        `json:"total_amount" form:"total_amount"`
	PaymentMethod *string         `json:"payment_method" form:"payment_method"`
	PaymentStatus *string         `json:"payment_status" form:"payment_status"`
	Status        *string         `json:"status" form:"status"`
	OrderDate     *string         `json:"order_date" form:"order_date"`
	DeliveryDate  *string         `json:"delivery_date" form:"delivery_date"`
	Notes         *string         `json:"notes" form:"notes"`
}
