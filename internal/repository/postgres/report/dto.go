package report

type Filter struct {
	From *string
	To   *string
}

type DashboardResponse struct {
	TotalSales         float64 `json:"total_sales"`
	SaleCount          int     `json:"sale_count"`
	TotalPurchases     float64 `json:"total_purchases"`
	PurchaseCount      int     `json:"purchase_count"`
	PurchaseDueAmount  float64 `json:"purchase_due_amount"`
	CustomerCount      int     `json:"customer_count"`
	ActiveEmployees    int     `json:"active_employees"`
	PresentToday       int     `json:"present_today"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}
