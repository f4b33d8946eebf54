package customer

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

	whereQuery := `WHERE c.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (c.customer_id ilike '%s' OR c.name ilike '%s' OR c.company ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.status = '%s'`, status)
	}

	orderQuery := "ORDER BY c.name"

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
			c.id,
			c.customer_id,
			c.name,
			c.phone,
			c.company,
			c.credit_limit,
			c.outstanding_balance,
			c.status
		FROM customers c
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting customer list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.CustomerID,
			&detail.Name,
			&detail.Phone,
			&detail.Company,
			&detail.CreditLimit,
			&detail.OutstandingBalance,
			&detail.Status,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning customer list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(c.id) FROM customers c %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting customers"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Customer, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	var detail entity.Customer

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Customer{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Customer{}, web.NewRequestError(errors.Wrap(err, "selecting customer detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		CustomerID:         request.CustomerID,
		Name:               request.Name,
		Email:              request.Email,
		Phone:              request.Phone,
		Company:            request.Company,
		Address:            request.Address,
		GstNumber:          request.GstNumber,
		CreditLimit:        request.CreditLimit,
		OutstandingBalance: request.OutstandingBalance,
		Status:             request.Status,
		CreatedAt:          time.Now(),
		CreatedBy:          claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating customer"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("customers").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Company != nil {
		q.Set("company = ?", request.Company)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.GstNumber != nil {
		q.Set("gst_number = ?", request.GstNumber)
	}
	if request.CreditLimit != nil {
		q.Set("credit_limit = ?", request.CreditLimit)
	}
	if request.OutstandingBalance != nil {
		q.Set("outstanding_balance = ?", request.OutstandingBalance)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating customer"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "customers", id)
}
