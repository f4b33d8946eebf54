package supplier

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
		whereQuery += fmt.Sprintf(` AND s.name ilike '%s'`, "%"+search+"%")
	}
	if filter.Category != nil {
		category := strings.Replace(*filter.Category, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND s.category = '%s'`, category)
	}

	orderQuery := "ORDER BY s.name"

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
			s.name,
			s.contact_number,
			s.category,
			s.total_purchases,
			s.outstanding_amount
		FROM suppliers s
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting supplier list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.ContactNumber,
			&detail.Category,
			&detail.TotalPurchases,
			&detail.OutstandingAmount,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning supplier list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(s.id) FROM suppliers s %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting suppliers"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Supplier, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Supplier{}, err
	}

	var detail entity.Supplier

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Supplier{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Supplier{}, web.NewRequestError(errors.Wrap(err, "selecting supplier detail"), http.StatusInternalServerError)
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
		Name:              request.Name,
		ContactNumber:     request.ContactNumber,
		Email:             request.Email,
		Address:           request.Address,
		GstNumber:         request.GstNumber,
		PaymentTerms:      request.PaymentTerms,
		Category:          request.Category,
		TotalPurchases:    request.TotalPurchases,
		OutstandingAmount: request.OutstandingAmount,
		CreatedAt:         time.Now(),
		CreatedBy:         claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating supplier"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("suppliers").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.ContactNumber != nil {
		q.Set("contact_number = ?", request.ContactNumber)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.GstNumber != nil {
		q.Set("gst_number = ?", request.GstNumber)
	}
	if request.PaymentTerms != nil {
		q.Set("payment_terms = ?", request.PaymentTerms)
	}
	if request.Category != nil {
		q.Set("category = ?", request.Category)
	}
	if request.TotalPurchases != nil {
		q.Set("total_purchases = ?", request.TotalPurchases)
	}
	if request.OutstandingAmount != nil {
		q.Set("outstanding_amount = ?", request.OutstandingAmount)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating supplier"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "suppliers", id)
}
