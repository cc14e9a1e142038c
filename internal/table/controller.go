package table

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
	"github.com/ikaro-souza/warlike-spiders/internal/roster"
)

type Controller struct {
	useCase UseCase
	roster  *roster.Cache
	logger  *zap.Logger
}

func NewController(useCase UseCase, rosterCache *roster.Cache, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		roster:  rosterCache,
		logger:  logger,
	}
}

func (c *Controller) HandleGetTableSession(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableId")
	if tableID == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "tableId is required",
		})
		return
	}

	session, err := c.useCase.GetTableSession(r.Context(), tableID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	// Every successful session fetch repopulates the roster; the
	// session record stays authoritative.
	c.roster.SetRoster(session.Customers)

	c.writeJSON(w, http.StatusOK, session)
}

func (c *Controller) HandleGetWaiterShiftSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.useCase.GetWaiterShiftSummary(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, summary)
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nf.Message,
		})
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.logger.Error("table session data failed validation", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": ve.Message,
		})
		return
	}

	c.logger.Error("table fetch failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
