package table

import (
	"context"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type UseCase interface {
	GetTableSession(ctx context.Context, tableID string) (*domain.TableSession, error)
	GetWaiterShiftSummary(ctx context.Context) (*domain.WaiterShiftSummary, error)
}

type Repository interface {
	FindSessionByTable(ctx context.Context, tableID string) (*domain.TableSession, error)
	TotalSoldToday(ctx context.Context) (float64, error)
	TotalOrderedToday(ctx context.Context) (int, error)
	ServingTables(ctx context.Context) ([]domain.WaiterShiftSummaryTable, error)
}
