package service

import "github.com/arthurquine/RB-Exchange-1/internal/models"

// Чистые функции агрегации балансов. Пересчитываются на каждый запрос,
// результат нигде не сохраняется.

// CalculateBalances агрегирует покупки и продажи по исходным валютам за один
// проход. Учитываются только операции с target-валютой, совпадающей с валютой
// отображения. Порядок строк — порядок первого появления валюты в истории.
// Курс для net-итога берётся из первой встреченной операции по валюте и
// переносится в аккумулятор (повторное сканирование истории не выполняется).
func CalculateBalances(transactions []models.Transaction, display models.Currency) []models.CurrencyBalance {
	index := make(map[string]int, len(transactions))
	var balances []models.CurrencyBalance

	for _, t := range transactions {
		if t.TargetCurrency != display {
			continue
		}

		i, ok := index[t.CurrencyCode]
		if !ok {
			i = len(balances)
			index[t.CurrencyCode] = i
			balances = append(balances, models.CurrencyBalance{
				Code: t.CurrencyCode,
				Rate: t.Rate,
			})
		}

		switch t.Type {
		case models.TransactionBuy:
			balances[i].Buys += t.Amount
		case models.TransactionSell:
			balances[i].Sells += t.Amount
		}
	}

	for i := range balances {
		b := &balances[i]
		b.NetTotal = (b.Buys - b.Sells) * b.Rate
		b.Tone = models.ToneForAmount(b.NetTotal)
	}

	return balances
}

// CalculateTotalBalance суммирует все операции независимо от валюты
// отображения: покупка со знаком плюс, продажа со знаком минус, каждая по
// собственному курсу. Результат — итог в базовой валюте (DZD).
func CalculateTotalBalance(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionBuy:
			total += t.Amount * t.Rate
		case models.TransactionSell:
			total -= t.Amount * t.Rate
		}
	}
	return total
}

// AverageRate среднее арифметическое курсов операций с заданной валютой
// отображения. Ноль, если таких операций нет (защита от деления на ноль).
func AverageRate(transactions []models.Transaction, display models.Currency) float64 {
	var sum float64
	var count int
	for _, t := range transactions {
		if t.TargetCurrency != display {
			continue
		}
		sum += t.Rate
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
