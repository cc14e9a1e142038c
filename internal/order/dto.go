package order

import "github.com/ikaro-souza/warlike-spiders/internal/domain"

type SetCustomerRequest struct {
	CustomerID string `json:"customerId"`
}

// DraftResponse is the draft plus the resolved identity of its customer,
// when the roster can resolve it.
type DraftResponse struct {
	CustomerID string                         `json:"customerId"`
	Customer   *domain.TableSessionCustomer   `json:"customer,omitempty"`
	Items      []domain.OrderItemCreationData `json:"items"`
}
