package order

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/draft"
	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
	"github.com/ikaro-souza/warlike-spiders/internal/roster"
)

// SessionKeyHeader carries the opaque key scoping a client's draft. A
// missing key is minted here and echoed back so the client can persist
// its cart across reloads.
const SessionKeyHeader = "X-Session-Key"

// DraftController exposes the order draft store over HTTP. Store
// mutations never fail user-visibly; only payload problems do.
type DraftController struct {
	drafts  *draft.Manager
	roster  *roster.Cache
	useCase UseCase
	logger  *zap.Logger
}

func NewDraftController(drafts *draft.Manager, rosterCache *roster.Cache, useCase UseCase, logger *zap.Logger) *DraftController {
	return &DraftController{
		drafts:  drafts,
		roster:  rosterCache,
		useCase: useCase,
		logger:  logger,
	}
}

func (c *DraftController) store(w http.ResponseWriter, r *http.Request) *draft.Store {
	key := r.Header.Get(SessionKeyHeader)
	if key == "" {
		key = uuid.New().String()
	}
	w.Header().Set(SessionKeyHeader, key)
	return c.drafts.ForSession(key)
}

func (c *DraftController) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	store := c.store(w, r)

	current, ok := store.GetDraft()
	if !ok {
		writeJSON(w, c.logger, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no draft in progress",
		})
		return
	}

	writeJSON(w, c.logger, http.StatusOK, c.draftResponse(current))
}

// HandleSetDraft seeds the draft wholesale, typically from a previously
// confirmed order. A prior draft is overwritten unconditionally.
func (c *DraftController) HandleSetDraft(w http.ResponseWriter, r *http.Request) {
	store := c.store(w, r)

	var creation domain.OrderCreation
	if err := json.NewDecoder(r.Body).Decode(&creation); err != nil {
		writeValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if err := creation.Validate(); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		writeValidationError(w, c.logger, ve.Message, ve.Details...)
		return
	}

	store.SetDraft(creation)
	current, _ := store.GetDraft()
	writeJSON(w, c.logger, http.StatusOK, c.draftResponse(current))
}

func (c *DraftController) HandleSetCustomer(w http.ResponseWriter, r *http.Request) {
	store := c.store(w, r)

	var req SetCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if req.CustomerID == "" {
		writeValidationError(w, c.logger, "customerId is required", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
		return
	}

	store.SetCustomer(req.CustomerID)
	current, _ := store.GetDraft()
	writeJSON(w, c.logger, http.StatusOK, c.draftResponse(current))
}

func (c *DraftController) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	c.handleItemWrite(w, r, func(store *draft.Store, item domain.OrderItemCreationData) {
		store.AddItem(item)
	})
}

func (c *DraftController) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	c.handleItemWrite(w, r, func(store *draft.Store, item domain.OrderItemCreationData) {
		store.UpdateItem(item)
	})
}

// handleItemWrite validates the payload and applies the mutation. The
// store may turn it into a no-op (no draft yet, duplicate add, unknown
// id on update); the response reflects whatever state resulted, with
// 200 either way.
func (c *DraftController) handleItemWrite(w http.ResponseWriter, r *http.Request, apply func(*draft.Store, domain.OrderItemCreationData)) {
	store := c.store(w, r)

	var item domain.OrderItemCreationData
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if err := item.Validate(); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		writeValidationError(w, c.logger, ve.Message, ve.Details...)
		return
	}

	apply(store, item)

	current, ok := store.GetDraft()
	if !ok {
		writeJSON(w, c.logger, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no draft in progress",
		})
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.draftResponse(current))
}

func (c *DraftController) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	store := c.store(w, r)

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		writeValidationError(w, c.logger, "itemId is required", apperrors.ValidationDetail{
			Field:   "itemId",
			Message: "itemId is required",
		})
		return
	}

	store.RemoveItem(itemID)

	current, ok := store.GetDraft()
	if !ok {
		writeJSON(w, c.logger, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no draft in progress",
		})
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.draftResponse(current))
}

func (c *DraftController) HandleClearDraft(w http.ResponseWriter, r *http.Request) {
	store := c.store(w, r)
	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// HandleSubmit confirms the draft. The draft is cleared only after the
// order was created; any rejection leaves it untouched so the user can
// correct and retry.
func (c *DraftController) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	store := c.store(w, r)

	current, ok := store.GetDraft()
	if !ok {
		writeJSON(w, logger, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no draft to submit",
		})
		return
	}

	order, err := c.useCase.CreateOrder(r.Context(), current)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	store.Clear()
	writeJSON(w, logger, http.StatusCreated, order)
}

func (c *DraftController) draftResponse(creation domain.OrderCreation) DraftResponse {
	resp := DraftResponse{
		CustomerID: creation.CustomerID,
		Items:      creation.Items,
	}
	if resp.Items == nil {
		resp.Items = []domain.OrderItemCreationData{}
	}
	if customer, ok := c.roster.Resolve(creation.CustomerID); ok {
		resp.Customer = &customer
	}
	return resp
}
