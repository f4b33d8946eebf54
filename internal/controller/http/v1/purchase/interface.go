package purchase

import (
	"context"

	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/repository/postgres/purchase"
)

type Purchase interface {
	GetList(ctx context.Context, filter purchase.Filter) ([]purchase.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (entity.Purchase, error)
	Create(ctx context.Context, request purchase.CreateRequest) (purchase.CreateResponse, error)
	UpdateColumns(ctx context.Context, request purchase.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
