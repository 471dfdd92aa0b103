package models

import "time"

// событие о крупной операции обмена (эквивалент >= 1000000 DZD)
type LargeTransactionEvent struct {
	TransactionID  string    `json:"transaction_id"`  // Уникальный ID операции
	CurrencyCode   string    `json:"currency_code"`   // Исходная валюта
	TargetCurrency string    `json:"target_currency"` // Валюта назначения
	Type           string    `json:"type"`            // buy или sell
	Amount         float64   `json:"amount"`          // Сумма в исходной валюте
	AmountBase     float64   `json:"amount_base"`     // Эквивалент в базовой валюте (DZD)
	AmountDisplay  string    `json:"amount_display"`  // Отформатированный эквивалент, например "DA1500000.00"
	Rate           float64   `json:"rate"`            // Курс операции
	Timestamp      time.Time `json:"timestamp"`       // Время операции
}
