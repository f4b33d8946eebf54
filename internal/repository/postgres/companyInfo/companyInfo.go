package companyInfo

import (
	"context"
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

// GetInfo returns the single company settings row. Seeded by migration, so
// a miss means the database was never initialized.
func (r Repository) GetInfo(ctx context.Context) (GetInfoResponse, error) {
	var detail GetInfoResponse

	err := r.NewSelect().
		Model(&detail).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return GetInfoResponse{}, &web.Error{
			Err:    errors.New("company data not found"),
			Status: http.StatusNotFound,
		}
	}

	return detail, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "CompanyName"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("company_info").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("company_name = ?", request.CompanyName)
	q.Set("address = ?", request.Address)
	q.Set("phone = ?", request.Phone)
	q.Set("email = ?", request.Email)
	q.Set("gst_number = ?", request.GstNumber)
	q.Set("currency = ?", request.Currency)
	q.Set("start_time = ?", request.StartTime)
	q.Set("end_time = ?", request.EndTime)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating company_info"), http.StatusBadRequest)
	}

	return nil
}
