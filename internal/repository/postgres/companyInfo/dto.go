package companyInfo

import (
	"github.com/uptrace/bun"
)

type GetInfoResponse struct {
	bun.BaseModel `bun:"table:company_info"`

	ID          int     `json:"id" bun:"id"`
	CompanyName *string `json:"company_name" bun:"company_name"`
	Address     *string `json:"address" bun:"address"`
	Phone       *string `json:"phone" bun:"phone"`
	Email       *string `json:"email" bun:"email"`
	GstNumber   *string `json:"gst_number" bun:"gst_number"`
	Currency    *string `json:"currency" bun:"currency"`
	StartTime   *string `json:"start_time" bun:"start_time"`
	EndTime     *string `json:"end_time" bun:"end_time"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	CompanyName *string `json:"company_name" form:"company_name"`
	Address     *string `json:"address" form:"address"`
	Phone       *string `json:"phone" form:"phone"`
	Email       *string `json:"email" form:"email"`
	GstNumber   *string `json:"gst_number" form:"gst_number"`
	Currency    *string `json:"currency" form:"currency"`
	StartTime   *string `json:"start_time" form:"start_time"`
	EndTime     *string `json:"end_time" form:"end_time"`
}
