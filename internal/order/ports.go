package order

import (
	"context"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type UseCase interface {
	// CreateOrder turns a finished draft into a confirmed order. The
	// submission boundary owns the customer-presence check; the draft
	// store never prevents building a customerless draft.
	CreateOrder(ctx context.Context, creation domain.OrderCreation) (*domain.Order, error)
	// GetCustomerOrder returns the customer's most recent order,
	// optionally narrowed to one status. Empty status means any.
	GetCustomerOrder(ctx context.Context, customerID, status string) (*domain.Order, error)
}

type Repository interface {
	InsertOrder(ctx context.Context, order domain.Order) error
	FindLatestByCustomer(ctx context.Context, customerID, status string) (*domain.Order, error)
}
