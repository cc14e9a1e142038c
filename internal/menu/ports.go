package menu

import (
	"context"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type UseCase interface {
	GetMenu(ctx context.Context) (*MenuResponse, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
}

type Service interface {
	GetMenu(ctx context.Context) (*domain.Menu, error)
	GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error)
}

type Repository interface {
	FindMenu(ctx context.Context) (*domain.Menu, error)
	FindItemByID(ctx context.Context, itemID string) (*domain.MenuItem, error)
}
