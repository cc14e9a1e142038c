package table

import (
	"context"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

// tipRate estimates waiter tips from the total sold over a shift.
const tipRate = 0.10

type tableUseCase struct {
	repo Repository
}

func NewUseCase(repo Repository) UseCase {
	return &tableUseCase{repo: repo}
}

func (uc *tableUseCase) GetTableSession(ctx context.Context, tableID string) (*domain.TableSession, error) {
	session, err := uc.repo.FindSessionByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	for _, customer := range session.Customers {
		if err := customer.Validate(); err != nil {
			return nil, err
		}
	}
	if session.Customers == nil {
		session.Customers = []domain.TableSessionCustomer{}
	}
	if session.OrderHistory == nil {
		session.OrderHistory = []domain.TableSessionOrder{}
	}

	return session, nil
}

func (uc *tableUseCase) GetWaiterShiftSummary(ctx context.Context) (*domain.WaiterShiftSummary, error) {
	totalSold, err := uc.repo.TotalSoldToday(ctx)
	if err != nil {
		return nil, err
	}
	totalOrdered, err := uc.repo.TotalOrderedToday(ctx)
	if err != nil {
		return nil, err
	}
	servingTables, err := uc.repo.ServingTables(ctx)
	if err != nil {
		return nil, err
	}
	if servingTables == nil {
		servingTables = []domain.WaiterShiftSummaryTable{}
	}

	return &domain.WaiterShiftSummary{
		TotalSold:     totalSold,
		EstimatedTips: totalSold * tipRate,
		TotalOrdered:  totalOrdered,
		ServingTables: servingTables,
	}, nil
}
