package order

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var creation domain.OrderCreation
	if err := json.NewDecoder(r.Body).Decode(&creation); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.useCase.CreateOrder(r.Context(), creation)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, order)
}

func (c *Controller) HandleGetCustomerOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		writeValidationError(w, logger, "invalid customerId", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
		return
	}
	status := r.URL.Query().Get("status")

	order, err := c.useCase.GetCustomerOrder(r.Context(), customerID, status)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, order)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func writeValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	writeJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func writeUseCaseError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeValidationError(w, logger, ve.Message, ve.Details...)
		return
	}
	if br, ok := apperrors.IsBadRequestError(err); ok {
		writeJSON(w, logger, http.StatusBadRequest, map[string]string{
			"error":   "BAD_REQUEST",
			"message": br.Message,
		})
		return
	}
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		writeJSON(w, logger, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nf.Message,
		})
		return
	}

	logger.Error("order operation failed", zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
