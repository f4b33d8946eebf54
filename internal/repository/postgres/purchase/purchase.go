package purchase

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

	whereQuery := `WHERE p.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (p.purchase_id ilike '%s' OR p.item_name ilike '%s' OR p.supplier_name ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.Category != nil {
		category := strings.Replace(*filter.Category, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND p.category = '%s'`, category)
	}
	if filter.PaymentStatus != nil {
		status := strings.Replace(*filter.PaymentStatus, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND p.payment_status = '%s'`, status)
	}
	if filter.From != nil {
		from, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "from date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND p.date >= '%s'`, from.Format("2006-01-02"))
	}
	if filter.To != nil {
		to, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "to date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND p.date <= '%s'`, to.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY p.date desc, p.id desc"

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
			p.id,
			p.purchase_id,
			p.item_name,
			p.quantity,
			p.total_price,
			p.supplier_name,
			p.date,
			p.payment_status,
			p.due_amount,
			p.category
		FROM purchases p
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting purchase list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.PurchaseID,
			&detail.ItemName,
			&detail.Quantity,
			&detail.TotalPrice,
			&detail.SupplierName,
			&detail.Date,
			&detail.PaymentStatus,
			&detail.DueAmount,
			&detail.Category,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning purchase list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(p.id) FROM purchases p %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting purchases"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Purchase, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Purchase{}, err
	}

	var detail entity.Purchase

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Purchase{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Purchase{}, web.NewRequestError(errors.Wrap(err, "selecting purchase detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "PurchaseID", "ItemName"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		PurchaseID:      request.PurchaseID,
		ItemName:        request.ItemName,
		Quantity:        request.Quantity,
		UnitPrice:       request.UnitPrice,
		TotalPrice:      request.TotalPrice,
		SupplierName:    request.SupplierName,
		SupplierContact: request.SupplierContact,
		SupplierAddress: request.SupplierAddress,
		Date:            request.Date,
		PaymentMethod:   request.PaymentMethod,
		PaymentStatus:   request.PaymentStatus,
		PaidAmount:      request.PaidAmount,
		DueAmount:       request.DueAmount,
		InvoiceNumber:   request.InvoiceNumber,
		DeliveryDate:    request.DeliveryDate,
		Category:        request.Category,
		Notes:           request.Notes,
		CreatedAt:       time.Now(),
		CreatedBy:       claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating purchase"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("purchases").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.ItemName != nil {
		q.Set("item_name = ?", request.ItemName)
	}
	if request.Quantity != nil {
		q.Set("quantity = ?", request.Quantity)
	}
	if request.UnitPrice != nil {
		q.Set("unit_price = ?", request.UnitPrice)
	}
	if request.TotalPrice != nil {
		q.Set("total_price = ?", request.TotalPrice)
	}
	if request.SupplierName != nil {
		q.Set("supplier_name = ?", request.SupplierName)
	}
	if request.SupplierContact != nil {
		q.Set("supplier_contact = ?", request.SupplierContact)
	}
	if request.SupplierAddress != nil {
		q.Set("supplier_address = ?", request.SupplierAddress)
	}
	if request.Date != nil {
		q.Set("date = ?", request.Date)
	}
	if request.PaymentMethod != nil {
		q.Set("payment_method = ?", request.PaymentMethod)
	}
	if request.PaymentStatus != nil {
		q.Set("payment_status = ?", request.PaymentStatus)
	}
	if request.PaidAmount != nil {
		q.Set("paid_amount = ?", request.PaidAmount)
	}
	if request.DueAmount != nil {
		q.Set("due_amount = ?", request.DueAmount)
	}
	if request.InvoiceNumber != nil {
		q.Set("invoice_number = ?", request.InvoiceNumber)
	}
	if request.DeliveryDate != nil {
		q.Set("delivery_date = ?", request.DeliveryDate)
	}
	if request.Category != nil {
		q.Set("category = ?", request.Category)
	}
	if request.Notes != nil {
		q.Set("notes = ?", request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating purchase"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "purchases", id)
}
