package attendance

import (
	"context"

	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (entity.Attendance, error)
	Create(ctx context.Context, request attendance.CreateRequest) (attendance.CreateResponse, error)
	UpdateColumns(ctx context.Context, request attendance.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
