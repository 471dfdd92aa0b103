package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arthurquine/RB-Exchange-1/internal/api/middlew"
	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/service"
	"github.com/arthurquine/RB-Exchange-1/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.Transactions
}

func NewTransactionHandler(service service.Transactions) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// CreateTransaction godoc
// @Summary      Зарегистрировать операцию
// @Description  Добавляет в историю операцию покупки или продажи валюты по указанному курсу
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body models.CreateTransactionRequest true "Данные операции"
// @Success      201 {object} models.CreateTransactionResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CreateTransaction"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	transaction, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrDuplicateRequest):
			response.WriteJSONError(w, log, http.StatusConflict, "duplicate_request",
				"Transaction with this requestID already processed")
		case errors.Is(err, custom_err.ErrInvalidCurrency):
			log.Warn("invalid currency", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_currency", "Target currency must be USD or EUR")
		case errors.Is(err, custom_err.ErrInvalidType):
			log.Warn("invalid transaction type", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_type", "Type must be buy or sell")
		case errors.Is(err, custom_err.ErrInvalidAmount):
			log.Warn("invalid amount", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_amount", "Amount must be positive")
		case errors.Is(err, custom_err.ErrInvalidRate):
			log.Warn("invalid rate", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_rate", "Rate must be positive")
		case errors.Is(err, custom_err.ErrInvalidInput):
			log.Warn("invalid input", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "currency_code and requestID are required")
		default:
			log.Error("failed to create transaction", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusCreated, models.CreateTransactionResponse{
		Message:     "Transaction recorded",
		Transaction: *transaction,
	})
}

// GetTransaction godoc
// @Summary      Операция по идентификатору
// @Description  Возвращает одну операцию из истории по её UUID
// @Tags         transactions
// @Produce      json
// @Param        id path string true "UUID операции"
// @Success      200 {object} models.Transaction
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetTransaction"
	log := middlew.GetLogger(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("invalid transaction id", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_id", "Transaction id must be a valid UUID")
		return
	}

	transaction, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_err.ErrNotFound) {
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Transaction not found")
			return
		}
		log.Error("failed to get transaction", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, transaction)
}

// ListTransactions godoc
// @Summary      История операций
// @Description  Возвращает полную историю операций в порядке добавления
// @Tags         transactions
// @Produce      json
// @Success      200 {object} models.TransactionListResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListTransactions"
	log := middlew.GetLogger(r.Context())

	transactions, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list transactions", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to retrieve transactions")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, models.TransactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
	})
}
