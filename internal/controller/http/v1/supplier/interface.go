package supplier

import (
	"context"

	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/repository/postgres/supplier"
)

type Supplier interface {
	GetList(ctx context.Context, filter supplier.Filter) ([]supplier.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (entity.Supplier, error)
	Create(ctx context.Context, request supplier.CreateRequest) (supplier.CreateResponse, error)
	UpdateColumns(ctx context.Context, request supplier.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
