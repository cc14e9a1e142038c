package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/menu"
	"github.com/ikaro-souza/warlike-spiders/internal/order"
	"github.com/ikaro-souza/warlike-spiders/internal/table"
)

func NewRouter(
	menuCtrl *menu.Controller,
	orderModule *order.Module,
	tableCtrl *table.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuCtrl.HandleGetMenu)
		r.Get("/menu/items/{itemId}", menuCtrl.HandleGetMenuItem)

		r.Post("/orders", orderModule.Orders.HandleCreateOrder)
		r.Get("/customers/{customerId}/order", orderModule.Orders.HandleGetCustomerOrder)

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", orderModule.Drafts.HandleGetDraft)
			r.Put("/", orderModule.Drafts.HandleSetDraft)
			r.Delete("/", orderModule.Drafts.HandleClearDraft)
			r.Post("/customer", orderModule.Drafts.HandleSetCustomer)
			r.Post("/items", orderModule.Drafts.HandleAddItem)
			r.Patch("/items", orderModule.Drafts.HandleUpdateItem)
			r.Delete("/items/{itemId}", orderModule.Drafts.HandleRemoveItem)
			r.Post("/submit", orderModule.Drafts.HandleSubmit)
		})

		r.Get("/tables/{tableId}/session", tableCtrl.HandleGetTableSession)
		r.Get("/waiter/shift-summary", tableCtrl.HandleGetWaiterShiftSummary)
	})

	return r
}
