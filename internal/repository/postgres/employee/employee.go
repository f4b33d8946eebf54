package employee

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

// GetAllEmployees returns the canonical employee set for the wage engine.
// Legacy rows predate the daily_wage and employee_id columns: some carry
// only salary, some only emp_id. COALESCE folds the variants here so the
// calculators never see them.
func (r Repository) GetAllEmployees(ctx context.Context) ([]entity.Employee, error) {
	query := `
		SELECT
			e.id,
			COALESCE(e.employee_id, e.emp_id),
			e.name,
			e.daily_wage,
			e.salary,
			e.status,
			e.last_bonus_paid
		FROM employees e
		WHERE e.deleted_at IS NULL
		ORDER BY e.id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []entity.Employee
	for rows.Next() {
		var detail entity.Employee
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.Name,
			&detail.DailyWage,
			&detail.Salary,
			&detail.Status,
			&detail.LastBonusPaid,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning employee"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading employees"), http.StatusInternalServerError)
	}

	return list, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE e.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (COALESCE(e.employee_id, e.emp_id) ilike '%s' OR e.name ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND e.status = '%s'`, status)
	}

	orderQuery := "ORDER BY e.name"

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
			e.id,
			COALESCE(e.employee_id, e.emp_id),
			e.name,
			e.phone,
			e.email,
			e.position,
			COALESCE(e.daily_wage, e.salary),
			e.status,
			e.joining_date
		FROM employees e
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employee list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.Name,
			&detail.Phone,
			&detail.Email,
			&detail.Position,
			&detail.DailyWage,
			&detail.Status,
			&detail.JoiningDate,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(e.id) FROM employees e %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting employees"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (entity.Employee, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Employee{}, err
	}

	var detail entity.Employee

	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Name"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		EmployeeID:  request.EmployeeID,
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		Position:    request.Position,
		DailyWage:   request.DailyWage,
		Salary:      request.Salary,
		Status:      request.Status,
		JoiningDate: request.JoiningDate,
		CreatedAt:   time.Now(),
		CreatedBy:   claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating employee"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("employees").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.EmployeeID != nil {
		q.Set("employee_id = ?", request.EmployeeID)
	}
	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Position != nil {
		q.Set("position = ?", request.Position)
	}
	if request.DailyWage != nil {
		q.Set("daily_wage = ?", request.DailyWage)
	}
	if request.Salary != nil {
		q.Set("salary = ?", request.Salary)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	if request.JoiningDate != nil {
		q.Set("joining_date = ?", request.JoiningDate)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating employee"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "employees", id)
}
