package entity

import (
	"github.com/uptrace/bun"
)

type CompanyInfo struct {
	bun.BaseModel `bun:"table:company_info"`

	BasicEntity
	CompanyName *string `json:"company_name" bun:"company_name"`
	Address     *string `json:"address" bun:"address"`
	Phone       *string `json:"phone" bun:"phone"`
	Email       *string `json:"email" bun:"email"`
	GstNumber   *string `json:"gst_number" bun:"gst_number"`
	Currency    *string `json:"currency" bun:"currency"`
	StartTime   *string `json:"start_time" bun:"start_time"`
	EndTime     *string `json:"end_time" bun:"end_time"`
}
