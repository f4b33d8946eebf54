package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetDashboard aggregates the headline numbers for the dashboard in one
// round trip per table. An empty filter covers all time.
func (r Repository) GetDashboard(ctx context.Context, filter Filter) (DashboardResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	saleWhere := `WHERE deleted_at IS NULL`
	purchaseWhere := `WHERE deleted_at IS NULL`

	if filter.From != nil {
		from, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "from date parse"), http.StatusBadRequest)
		}
		saleWhere += fmt.Sprintf(` AND order_date >= '%s'`, from.Format("2006-01-02"))
		purchaseWhere += fmt.Sprintf(` AND date >= '%s'`, from.Format("2006-01-02"))
	}
	if filter.To != nil {
		to, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "to date parse"), http.StatusBadRequest)
		}
		saleWhere += fmt.Sprintf(` AND order_date <= '%s'`, to.Format("2006-01-02"))
		purchaseWhere += fmt.Sprintf(` AND date <= '%s'`, to.Format("2006-01-02"))
	}

	var response DashboardResponse

	saleQuery := fmt.Sprintf(`
		SELECT COALESCE(sum(total_amount), 0), count(id)
		FROM sales %s
	`, saleWhere)
	if err = r.QueryRowContext(ctx, saleQuery).Scan(&response.TotalSales, &response.SaleCount); err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "aggregating sales"), http.StatusInternalServerError)
	}

	purchaseQuery := fmt.Sprintf(`
		SELECT COALESCE(sum(total_price), 0), count(id), COALESCE(sum(due_amount), 0)
		FROM purchases %s
	`, purchaseWhere)
	if err = r.QueryRowContext(ctx, purchaseQuery).Scan(&response.TotalPurchases, &response.PurchaseCount, &response.PurchaseDueAmount); err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "aggregating purchases"), http.StatusInternalServerError)
	}

	customerQuery := `
		SELECT count(id), COALESCE(sum(outstanding_balance), 0)
		FROM customers WHERE deleted_at IS NULL
	`
	if err = r.QueryRowContext(ctx, customerQuery).Scan(&response.CustomerCount, &response.OutstandingBalance); err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "aggregating customers"), http.StatusInternalServerError)
	}

	employeeQuery := `
		SELECT count(id)
		FROM employees WHERE deleted_at IS NULL AND (status IS NULL OR status != 'inactive')
	`
	if err = r.QueryRowContext(ctx, employeeQuery).Scan(&response.ActiveEmployees); err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "counting employees"), http.StatusInternalServerError)
	}

	attendanceQuery := fmt.Sprintf(`
		SELECT count(id)
		FROM attendance
		WHERE deleted_at IS NULL AND work_day = '%s' AND status = 'present'
	`, time.Now().Format("2006-01-02"))
	if err = r.QueryRowContext(ctx, attendanceQuery).Scan(&response.PresentToday); err != nil {
		return DashboardResponse{}, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return response, nil
}
