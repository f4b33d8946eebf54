package sale

import (
	"context"

	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/repository/postgres/sale"
)

type Sale interface {
	GetList(ctx context.Context, filter sale.Filter) ([]sale.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (entity.Sale, error)
	Create(ctx context.Context, request sale.CreateRequest) (sale.CreateResponse, error)
	UpdateColumns(ctx context.Context, request sale.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
