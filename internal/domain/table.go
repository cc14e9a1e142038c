package domain

import (
	"fmt"
	"time"

	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

const maxCustomerNameLength = 30

const (
	TableStatusOpen             = "open"
	TableStatusRequestingWaiter = "requesting_waiter"
	TableStatusOrdering         = "ordering"
	TableStatusWaitingOrder     = "waiting_order"
	TableStatusClosed           = "closed"
)

var tableStatuses = map[string]struct{}{
	TableStatusOpen:             {},
	TableStatusRequestingWaiter: {},
	TableStatusOrdering:         {},
	TableStatusWaitingOrder:     {},
	TableStatusClosed:           {},
}

func ValidTableStatus(status string) bool {
	_, ok := tableStatuses[status]
	return ok
}

// TableSessionCustomer is the identity projection of a seated customer,
// read-only from the draft's perspective.
type TableSessionCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (c TableSessionCustomer) Validate() error {
	var details []apperrors.ValidationDetail

	if c.ID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "id",
			Message: "id is required",
		})
	}
	if c.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(c.Name) > maxCustomerNameLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", maxCustomerNameLength),
		})
	}
	if err := validateImageRef(c.Image); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "image",
			Message: err.Error(),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid table session customer", details...)
	}
	return nil
}

// TableSessionOrder is one entry of a session's order history: who
// ordered, and the items with their add-time snapshots.
type TableSessionOrder struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type TableSession struct {
	ID           string                 `json:"id"`
	Seats        int                    `json:"seats"`
	TotalOrdered float64                `json:"totalOrdered"`
	Customers    []TableSessionCustomer `json:"customers"`
	OrderHistory []TableSessionOrder    `json:"orderHistory"`
	CreatedAt    time.Time              `json:"createdAt"`
}

type WaiterShiftSummaryTable struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Status    string    `json:"status"`
	LastOrder time.Time `json:"lastOrder"`
}

// WaiterShiftSummary is read-only aggregate data; there is no mutation
// contract for it.
type WaiterShiftSummary struct {
	TotalSold     float64                   `json:"totalSold"`
	EstimatedTips float64                   `json:"estimatedTips"`
	TotalOrdered  int                       `json:"totalOrdered"`
	ServingTables []WaiterShiftSummaryTable `json:"servingTables"`
}
