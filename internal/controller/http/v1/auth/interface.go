package auth

import (
	"context"

	"bizmanage/backend/internal/entity"
)

type User interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error)
}
