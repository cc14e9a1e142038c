package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

func validOrderItemCreation() OrderItemCreationData {
	return OrderItemCreationData{
		ItemID: "itm_1",
		Item: OrderItemSnapshot{
			Name:         "Margherita",
			UnitaryPrice: 12.5,
			Image:        "https://images.example.com/margherita.jpg",
		},
		ItemQuantity: 2,
	}
}

func TestOrderItemCreationData_Validate(t *testing.T) {
	assert.NoError(t, validOrderItemCreation().Validate())
}

func TestOrderItemCreationData_Validate_ZeroQuantity(t *testing.T) {
	item := validOrderItemCreation()
	item.ItemQuantity = 0

	err := item.Validate()
	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "itemQuantity", ve.Details[0].Field)
}

func TestOrderItemCreationData_Validate_NegativeQuantity(t *testing.T) {
	item := validOrderItemCreation()
	item.ItemQuantity = -3

	_, ok := apperrors.IsValidationError(item.Validate())
	assert.True(t, ok)
}

func TestOrderItemCreationData_Validate_NoteTooLong(t *testing.T) {
	note := strings.Repeat("n", 256)
	item := validOrderItemCreation()
	item.Note = &note

	err := item.Validate()
	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "note", ve.Details[0].Field)
}

func TestOrderItemCreationData_Validate_NoteAtLimit(t *testing.T) {
	note := strings.Repeat("n", 255)
	item := validOrderItemCreation()
	item.Note = &note

	assert.NoError(t, item.Validate())
}

func TestOrderCreation_Validate(t *testing.T) {
	order := OrderCreation{
		CustomerID: "cus_1",
		Items:      []OrderItemCreationData{validOrderItemCreation()},
	}

	assert.NoError(t, order.Validate())
}

func TestOrderCreation_Validate_EmptyCustomerAllowed(t *testing.T) {
	// A draft may exist without a customer; the submission boundary is
	// what rejects it, not the contract.
	order := OrderCreation{Items: []OrderItemCreationData{validOrderItemCreation()}}

	assert.NoError(t, order.Validate())
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusCreated,
		OrderStatusPendingApproval,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusServed,
		OrderStatusCanceled,
	} {
		assert.True(t, ValidOrderStatus(status), status)
	}
}

func TestValidOrderStatus_RejectsUnknown(t *testing.T) {
	assert.False(t, ValidOrderStatus("delivered"))
	assert.False(t, ValidOrderStatus("CREATED"))
	assert.False(t, ValidOrderStatus(""))
}

func TestOrder_Validate(t *testing.T) {
	order := Order{
		ID:         "ord_1",
		CustomerID: "cus_1",
		Status:     OrderStatusPendingApproval,
		Items: []OrderItem{
			{
				ID:           "oit_1",
				ItemID:       "itm_1",
				Item:         OrderItemSnapshot{Name: "Margherita", UnitaryPrice: 12.5, Image: "https://images.example.com/m.jpg"},
				ItemQuantity: 1,
			},
		},
		CreatedAt: time.Now(),
	}

	assert.NoError(t, order.Validate())
	assert.Nil(t, order.CompletedAt)
}

func TestOrder_Validate_UnknownStatus(t *testing.T) {
	order := Order{
		ID:         "ord_1",
		CustomerID: "cus_1",
		Status:     "on_the_way",
	}

	err := order.Validate()
	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "status", ve.Details[0].Field)
}
