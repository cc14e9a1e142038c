package domain

import (
	"fmt"
	"time"

	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

const maxNoteLength = 255

const (
	OrderStatusCreated         = "created"
	OrderStatusPendingApproval = "pendingApproval"
	OrderStatusPreparing       = "preparing"
	OrderStatusReady           = "ready"
	OrderStatusServed          = "served"
	OrderStatusCanceled        = "canceled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusCreated:         {},
	OrderStatusPendingApproval: {},
	OrderStatusPreparing:       {},
	OrderStatusReady:           {},
	OrderStatusServed:          {},
	OrderStatusCanceled:        {},
}

// ValidOrderStatus reports whether status belongs to the closed order
// status enumeration. Unknown values are rejected, never coerced.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

// OrderItemSnapshot is the denormalized copy of a menu item captured at
// add-time. It is an owned value, not a reference: later menu changes do
// not retroactively alter a draft or a confirmed order.
type OrderItemSnapshot struct {
	Name         string  `json:"name"`
	UnitaryPrice float64 `json:"unitaryPrice"`
	Image        string  `json:"image"`
}

// OrderItemCreationData is one line of an order draft.
type OrderItemCreationData struct {
	ItemID       string            `json:"itemId"`
	Item         OrderItemSnapshot `json:"item"`
	ItemQuantity int               `json:"itemQuantity"`
	Note         *string           `json:"note,omitempty"`
}

func (d OrderItemCreationData) Validate() error {
	var details []apperrors.ValidationDetail

	if d.ItemID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "itemId",
			Message: "itemId is required",
		})
	}
	if d.ItemQuantity <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "itemQuantity",
			Message: "itemQuantity must be a positive integer",
		})
	}
	if d.Item.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "item.name",
			Message: "item name is required",
		})
	}
	if len(d.Item.Name) > maxItemNameLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "item.name",
			Message: fmt.Sprintf("item name must be at most %d characters", maxItemNameLength),
		})
	}
	if d.Item.UnitaryPrice < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "item.unitaryPrice",
			Message: "unitaryPrice must not be negative",
		})
	}
	if d.Note != nil && len(*d.Note) > maxNoteLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "note",
			Message: fmt.Sprintf("note must be at most %d characters", maxNoteLength),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order item", details...)
	}
	return nil
}

// OrderCreation is the in-progress order draft. CustomerID stays empty
// until a customer is chosen; submission requires it.
type OrderCreation struct {
	CustomerID string                  `json:"customerId"`
	Items      []OrderItemCreationData `json:"items"`
}

func (o OrderCreation) Validate() error {
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OrderItem is a line of a server-confirmed order.
type OrderItem struct {
	ID           string            `json:"id"`
	ItemID       string            `json:"itemId"`
	Item         OrderItemSnapshot `json:"item"`
	ItemQuantity int               `json:"itemQuantity"`
	Note         *string           `json:"note,omitempty"`
}

// Order is server-owned; clients derive drafts from it but never mutate
// it directly.
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customerId"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CompletedAt *time.Time  `json:"completedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (o Order) Validate() error {
	var details []apperrors.ValidationDetail

	if o.ID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "id",
			Message: "id is required",
		})
	}
	if o.CustomerID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
	}
	if !ValidOrderStatus(o.Status) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("unknown order status %q", o.Status),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order", details...)
	}
	return nil
}
