package models

import (
	"time"

	"github.com/google/uuid"
)

// Currency валюта отображения (в ней пользователь видит агрегированные балансы)
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// DefaultDisplayCurrency валюта отображения по умолчанию
const DefaultDisplayCurrency = CurrencyEUR

// IsValid проверяет валидность валюты отображения
func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyEUR
}

// SupportedCurrencies возвращает список поддерживаемых валют отображения
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR}
}

// TransactionType тип операции: покупка или продажа валюты
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionBuy || t == TransactionSell
}

// Transaction запись об операции обмена валюты.
// Rate — курс на момент операции (сколько target-валюты за единицу исходной).
// История неизменяема: записи только добавляются.
type Transaction struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	CurrencyCode   string          `json:"currency_code" db:"currency_code"`
	TargetCurrency Currency        `json:"target_currency" db:"target_currency"`
	Type           TransactionType `json:"type" db:"type"`
	Amount         float64         `json:"amount" db:"amount"`
	Rate           float64         `json:"rate" db:"rate"`
	RequestID      string          `json:"-" db:"request_id"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// CreateTransactionRequest запрос на регистрацию операции
type CreateTransactionRequest struct {
	CurrencyCode   string          `json:"currency_code"`
	TargetCurrency Currency        `json:"target_currency"`
	Type           TransactionType `json:"type"`
	Amount         float64         `json:"amount"`
	Rate           float64         `json:"rate"`
	RequestID      string          `json:"requestID"`
}

// CreateTransactionResponse ответ на регистрацию операции
type CreateTransactionResponse struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}

// TransactionListResponse ответ со списком операций
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Count        int           `json:"count"`
}
