package report

import (
	"context"

	"bizmanage/backend/internal/repository/postgres/report"
)

type Report interface {
	GetDashboard(ctx context.Context, filter report.Filter) (report.DashboardResponse, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}
