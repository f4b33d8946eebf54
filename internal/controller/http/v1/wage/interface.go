package wage

import (
	"context"

	"bizmanage/backend/internal/repository/postgres/companyInfo"
	"bizmanage/backend/internal/service/wage"
)

type WageService interface {
	CalculateWages(ctx context.Context, req wage.PeriodRequest) ([]wage.WageCalculationResult, error)
	CalculateBonus(ctx context.Context, req wage.BonusRequest) ([]wage.BonusCalculationResult, error)
}

type CompanyInfo interface {
	GetInfo(ctx context.Context) (companyInfo.GetInfoResponse, error)
}
