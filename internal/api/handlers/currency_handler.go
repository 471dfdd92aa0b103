package handlers

import (
	"net/http"

	"github.com/arthurquine/RB-Exchange-1/internal/api/middlew"
	"github.com/arthurquine/RB-Exchange-1/internal/currency"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/pkg/response"
)

// CurrencyHandler отдаёт статический справочник валют
type CurrencyHandler struct{}

func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// ListCurrencies godoc
// @Summary      Справочник валют
// @Description  Возвращает статические справочные данные валют (код, имя, символ, флаг)
// @Tags         currency
// @Produce      json
// @Success      200 {object} models.CurrencyListResponse
// @Router       /currencies [get]
func (h *CurrencyHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	response.WriteJSONSuccess(w, log, http.StatusOK, models.CurrencyListResponse{
		Currencies: currency.All(),
	})
}
