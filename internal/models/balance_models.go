package models

// Tone стиль отображения суммы: success для положительных, error для остальных.
// Граница строгая: ровно ноль считается отрицательным состоянием.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// ToneForAmount возвращает стиль для суммы (строгая проверка > 0)
func ToneForAmount(amount float64) Tone {
	if amount > 0 {
		return ToneSuccess
	}
	return ToneError
}

// CurrencyInfo статические справочные данные валюты (имя, флаг)
type CurrencyInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

// CurrencyBalance агрегированный баланс по одной исходной валюте.
// Вычисляется на каждый запрос из истории операций и нигде не хранится.
// Rate — курс первой встреченной операции по этой валюте.
type CurrencyBalance struct {
	Code     string        `json:"code"`
	Currency *CurrencyInfo `json:"currency,omitempty"`
	Buys     float64       `json:"buys"`
	Sells    float64       `json:"sells"`
	NetTotal float64       `json:"net_total"`
	Rate     float64       `json:"rate"`
	Tone     Tone          `json:"tone"`
}

// BalanceSummary итоговый баланс: сумма в базовой валюте (DZD) по всем операциям
// и её эквивалент в валюте отображения по среднему наблюдённому курсу
type BalanceSummary struct {
	Total           float64  `json:"total_dzd"`
	Converted       float64  `json:"converted,omitempty"`
	AverageRate     float64  `json:"average_rate,omitempty"`
	DisplayCurrency Currency `json:"display_currency"`
	Tone            Tone     `json:"tone"`
}

// BalanceView полные данные экрана балансов.
// DisplayOptions — допустимые значения переключателя валюты отображения.
type BalanceView struct {
	Summary        BalanceSummary    `json:"summary"`
	Balances       []CurrencyBalance `json:"balances"`
	DisplayOptions []Currency        `json:"display_options"`
	Message        string            `json:"message,omitempty"`
}

// CurrencyListResponse ответ со справочником валют
type CurrencyListResponse struct {
	Currencies []CurrencyInfo `json:"currencies"`
}
