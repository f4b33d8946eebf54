package customer

import (
	"context"

	"bizmanage/backend/internal/entity"
	"bizmanage/backend/internal/repository/postgres/customer"
)

type Customer interface {
	GetList(ctx context.Context, filter customer.Filter) ([]customer.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (entity.Customer, error)
	Create(ctx context.Context, request customer.CreateRequest) (customer.CreateResponse, error)
	UpdateColumns(ctx context.Context, request customer.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
