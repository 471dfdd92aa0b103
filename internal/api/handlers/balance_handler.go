package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arthurquine/RB-Exchange-1/internal/api/middlew"
	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/service"
	"github.com/arthurquine/RB-Exchange-1/pkg/response"
)

type BalanceHandler struct {
	service service.Balance
}

func NewBalanceHandler(service service.Balance) *BalanceHandler {
	return &BalanceHandler{
		service: service,
	}
}

// GetBalanceView godoc
// @Summary      Получить экран балансов
// @Description  Возвращает агрегированные балансы по исходным валютам в выбранной валюте отображения (USD или EUR), итог в DZD и его эквивалент по среднему курсу
// @Tags         balance
// @Produce      json
// @Param        display query string false "Валюта отображения (USD или EUR)" default(EUR)
// @Success      200 {object} models.BalanceView
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /balances [get]
func (h *BalanceHandler) GetBalanceView(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetBalanceView"
	log := middlew.GetLogger(r.Context())

	display := models.DefaultDisplayCurrency
	if v := r.URL.Query().Get("display"); v != "" {
		display = models.Currency(strings.ToUpper(v))
	}

	view, err := h.service.GetBalanceView(r.Context(), display)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidCurrency):
			log.Warn("invalid display currency", slog.String("op", op), slog.String("display", string(display)))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_currency", "Display currency must be USD or EUR")
		default:
			log.Error("failed to build balance view", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to retrieve balances")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, view)
}
