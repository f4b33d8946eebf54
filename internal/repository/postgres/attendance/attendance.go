package attendance

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

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetAttendanceByEmployeeAndDateRange feeds the wage engine: records for one
// employee restricted to [start, end], both inclusive. Raw time strings are
// returned untouched; the engine does its own best-effort parsing.
func (r Repository) GetAttendanceByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end date.Date) ([]entity.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.employee_id,
			a.work_day,
			a.check_in_time,
			a.check_out_time,
			a.working_hours,
			a.status,
			a.notes
		FROM attendance a
		WHERE a.deleted_at IS NULL
		  AND a.employee_id = '%s'
		  AND a.work_day BETWEEN '%s' AND '%s'
		ORDER BY a.work_day
	`, strings.Replace(employeeID, "'", "''", -1), start.String(), end.String())

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []entity.Attendance
	for rows.Next() {
		var detail entity.Attendance
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.WorkDay,
			&detail.CheckInTime,
			&detail.CheckOutTime,
			&detail.WorkingHours,
			&detail.Status,
			&detail.Notes,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading attendance"), http.StatusInternalServerError)
	}

	return list, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE a.deleted_at IS NULL`

	if filter.EmployeeID != nil {
		employeeID := strings.Replace(*filter.EmployeeID, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.employee_id = '%s'`, employeeID)
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.status = '%s'`, status)
	}
	if filter.From != nil {
		from, err := time.Parse("2006-01-02", *filter.From)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "from date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND a.work_day >= '%s'`, from.Format("2006-01-02"))
	}
	if filter.To != nil {
		to, err := time.Parse("2006-01-02", *filter.To)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "to date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND a.work_day <= '%s'`, to.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY a.work_day desc, a.id desc"

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
			a.id,
			a.employee_id,
			e.name,
			a.work_day,
			a.check_in_time,
			a.check_out_time,
			a.working_hours,
			a.status,
			a.notes
		FROM attendance a
		LEFT JOIN employees e ON a.employee_id = COALESCE(e.employee_id, e.emp_id)
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.EmployeeName,
			&detail.WorkDay,
			&detail.CheckInTime,
			&detail.CheckOutTime,
			&detail.WorkingHours,
			&detail.Status,
			&detail.Notes,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(a.id) FROM attendance a %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Attendance, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Attendance{}, err
	}

	var detail entity.Attendance

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Attendance{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "selecting attendance detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "WorkDay"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		EmployeeID:   request.EmployeeID,
		WorkDay:      request.WorkDay,
		CheckInTime:  request.CheckInTime,
		CheckOutTime: request.CheckOutTime,
		WorkingHours: request.WorkingHours,
		Status:       request.Status,
		Notes:        request.Notes,
		CreatedAt:    time.Now(),
		CreatedBy:    claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("attendance").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.WorkDay != nil {
		q.Set("work_day = ?", request.WorkDay)
	}
	if request.CheckInTime != nil {
		q.Set("check_in_time = ?", request.CheckInTime)
	}
	if request.CheckOutTime != nil {
		q.Set("check_out_time = ?", request.CheckOutTime)
	}
	if request.WorkingHours != nil {
		q.Set("working_hours = ?", request.WorkingHours)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	if request.Notes != nil {
		q.Set("notes = ?", request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "attendance", id)
}
