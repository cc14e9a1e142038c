package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

type orderUseCase struct {
	repo   Repository
	logger *zap.Logger
}

func NewUseCase(repo Repository, logger *zap.Logger) UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, creation domain.OrderCreation) (*domain.Order, error) {
	if creation.CustomerID == "" {
		return nil, apperrors.NewBadRequestError("order has no customer assigned")
	}
	if len(creation.Items) == 0 {
		return nil, apperrors.NewBadRequestError("order has no items")
	}
	if err := creation.Validate(); err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:         uuid.New().String(),
		CustomerID: creation.CustomerID,
		Status:     domain.OrderStatusCreated,
		CreatedAt:  time.Now().UTC(),
	}
	for _, item := range creation.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:           uuid.New().String(),
			ItemID:       item.ItemID,
			Item:         item.Item,
			ItemQuantity: item.ItemQuantity,
			Note:         item.Note,
		})
	}

	if err := uc.repo.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("customerId", order.CustomerID),
		zap.Int("itemCount", len(order.Items)),
	)

	return &order, nil
}

func (uc *orderUseCase) GetCustomerOrder(ctx context.Context, customerID, status string) (*domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(status) {
		return nil, apperrors.NewValidationError("unknown order status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of the known order statuses",
		})
	}

	order, err := uc.repo.FindLatestByCustomer(ctx, customerID, status)
	if err != nil {
		return nil, err
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}
