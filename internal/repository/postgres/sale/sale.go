package sale

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/pkg/repository/postgresql"
	"bizmanage/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE s.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (s.sale_id ilike '%s' OR s.customer_name ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.PaymentStatus != nil {
		status := strings.Replace(*filter.PaymentStatus, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND s.payment_status = '%s'`, status)
	}
	if filter.From != nil {
		from, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "from date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND s.order_date >= '%s'`, from.Format("2006-01-02"))
	}
	if filter.To != nil {
		to, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "to date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND s.order_date <= '%s'`, to.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY s.order_date desc, s.id desc"

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.sale_id,
			s.customer_id,
			s.customer_name,
			s.total_amount,
			s.payment_method,
			s.payment_status,
			s.status,
			s.order_date
		FROM sales s
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting sale list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.SaleID,
			&detail.CustomerID,
			&detail.CustomerName,
			&detail.TotalAmount,
			&detail.PaymentMethod,
			&detail.PaymentStatus,
			&detail.Status,
			&detail.OrderDate,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning sale list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(s.id) FROM sales s %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting sales"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Sale, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Sale{}, err
	}

	var detail entity.Sale

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Sale{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Sale{}, web.NewRequestError(errors.Wrap(err, "selecting sale detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "SaleID", "TotalAmount"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		SaleID:        request.SaleID,
		CustomerID:    request.CustomerID,
		CustomerName:  request.CustomerName,
		Items:         request.Items,
		Subtotal:      request.Subtotal,
		TotalDiscount: request.TotalDiscount,
		TotalTax:      request.TotalTax,
		TotalAmount:   request.TotalAmount,
		PaymentMethod: request.PaymentMethod,
		PaymentStatus: request.PaymentStatus,
		Status:        request.Status,
		OrderDate:     request.OrderDate,
		DeliveryDate:  request.DeliveryDate,
		Notes:         request.Notes,
		CreatedAt:     time.Now(),
		CreatedBy:     claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating sale"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("sales").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.CustomerID != nil {
		q.Set("customer_id = ?", request.CustomerID)
	}
	if request.CustomerName != nil {
		q.Set("customer_name = ?", request.CustomerName)
	}
	if request.Items != nil {
		q.Set("items = ?", string(request.Items))
	}
	if request.Subtotal != nil {
		q.Set("subtotal = ?", request.Subtotal)
	}
	if request.TotalDiscount != nil {
		q.Set("total_discount = ?", request.TotalDiscount)
	}
	if request.TotalTax != nil {
		q.Set("total_tax = ?", request.TotalTax)
	}
	if request.TotalAmount != nil {
		q.Set("total_amount = ?", request.TotalAmount)
	}
	if request.PaymentMethod != nil {
		q.Set("payment_method = ?", request.PaymentMethod)
	}
	if request.PaymentStatus != nil {
		q.Set("payment_status = ?", request.PaymentStatus)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	if request.OrderDate != nil {
		q.Set("order_date = ?", request.OrderDate)
	}
	if request.DeliveryDate != nil {
		q.Set("delivery_date = ?", request.DeliveryDate)
	}
	if request.Notes != nil {
		q.Set("notes = ?", request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating sale"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "sales", id)
}
