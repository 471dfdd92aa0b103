package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthurquine/RB-Exchange-1/internal/models"
)

func tx(code string, target models.Currency, txType models.TransactionType, amount, rate float64) models.Transaction {
	return models.Transaction{
		CurrencyCode:   code,
		TargetCurrency: target,
		Type:           txType,
		Amount:         amount,
		Rate:           rate,
	}
}

func TestCalculateBalances_SingleBuy(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
	}

	balances := CalculateBalances(transactions, models.CurrencyEUR)

	assert.Len(t, balances, 1)
	assert.Equal(t, "USD", balances[0].Code)
	assert.Equal(t, 100.0, balances[0].Buys)
	assert.Equal(t, 0.0, balances[0].Sells)
	assert.Equal(t, 90.0, balances[0].NetTotal)
	assert.Equal(t, 0.9, balances[0].Rate)
	assert.Equal(t, models.ToneSuccess, balances[0].Tone)
}

func TestCalculateBalances_SkipsOtherTargetCurrencies(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
		tx("GBP", models.CurrencyUSD, models.TransactionBuy, 50, 1.25),
		tx("USD", models.CurrencyEUR, models.TransactionSell, 40, 0.92),
	}

	balances := CalculateBalances(transactions, models.CurrencyEUR)

	assert.Len(t, balances, 1)
	assert.Equal(t, "USD", balances[0].Code)
	assert.Equal(t, 100.0, balances[0].Buys)
	assert.Equal(t, 40.0, balances[0].Sells)
}

func TestCalculateBalances_NoDoubleCounting(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
		tx("USD", models.CurrencyUSD, models.TransactionBuy, 300, 1.0),
		tx("GBP", models.CurrencyEUR, models.TransactionSell, 20, 1.15),
	}

	eur := CalculateBalances(transactions, models.CurrencyEUR)
	usd := CalculateBalances(transactions, models.CurrencyUSD)

	var eurNet, usdNet float64
	for _, b := range eur {
		eurNet += b.Buys - b.Sells
	}
	for _, b := range usd {
		usdNet += b.Buys - b.Sells
	}

	assert.Equal(t, 80.0, eurNet)
	assert.Equal(t, 300.0, usdNet)
}

func TestCalculateBalances_FirstSeenInsertionOrder(t *testing.T) {
	transactions := []models.Transaction{
		tx("GBP", models.CurrencyEUR, models.TransactionBuy, 10, 1.15),
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 20, 0.9),
		tx("GBP", models.CurrencyEUR, models.TransactionSell, 5, 1.17),
		tx("CAD", models.CurrencyEUR, models.TransactionBuy, 30, 0.68),
	}

	balances := CalculateBalances(transactions, models.CurrencyEUR)

	assert.Len(t, balances, 3)
	assert.Equal(t, "GBP", balances[0].Code)
	assert.Equal(t, "USD", balances[1].Code)
	assert.Equal(t, "CAD", balances[2].Code)
}

func TestCalculateBalances_FirstSeenRateForNetTotal(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.95),
	}

	balances := CalculateBalances(transactions, models.CurrencyEUR)

	assert.Len(t, balances, 1)
	assert.Equal(t, 200.0, balances[0].Buys)
	// курс первой операции, не последней
	assert.Equal(t, 0.9, balances[0].Rate)
	assert.Equal(t, 180.0, balances[0].NetTotal)
}

func TestCalculateBalances_ZeroNetIsErrorTone(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
		tx("USD", models.CurrencyEUR, models.TransactionSell, 100, 0.9),
	}

	balances := CalculateBalances(transactions, models.CurrencyEUR)

	assert.Len(t, balances, 1)
	assert.Equal(t, 0.0, balances[0].NetTotal)
	// граница строгая: ровно ноль — стиль error
	assert.Equal(t, models.ToneError, balances[0].Tone)
}

func TestCalculateBalances_Empty(t *testing.T) {
	balances := CalculateBalances(nil, models.CurrencyEUR)
	assert.Empty(t, balances)
}

func TestCalculateTotalBalance_IncludesAllTargetCurrencies(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),   // +90
		tx("GBP", models.CurrencyUSD, models.TransactionBuy, 50, 1.25),   // +62.5
		tx("USD", models.CurrencyEUR, models.TransactionSell, 40, 0.92),  // -36.8
	}

	total := CalculateTotalBalance(transactions)

	assert.InDelta(t, 115.7, total, 1e-9)
}

func TestCalculateTotalBalance_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalculateTotalBalance(nil))
}

func TestAverageRate_MeanOfMatchingRates(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyEUR, models.TransactionBuy, 100, 0.9),
		tx("GBP", models.CurrencyEUR, models.TransactionSell, 10, 1.1),
		tx("USD", models.CurrencyUSD, models.TransactionBuy, 100, 1.0),
	}

	avg := AverageRate(transactions, models.CurrencyEUR)

	assert.InDelta(t, 1.0, avg, 1e-9)
}

func TestAverageRate_NoMatchingTransactions(t *testing.T) {
	transactions := []models.Transaction{
		tx("USD", models.CurrencyUSD, models.TransactionBuy, 100, 1.0),
	}

	// защита от деления на ноль
	assert.Equal(t, 0.0, AverageRate(transactions, models.CurrencyEUR))
	assert.Equal(t, 0.0, AverageRate(nil, models.CurrencyEUR))
}

func TestToneForAmount_StrictBoundary(t *testing.T) {
	assert.Equal(t, models.ToneSuccess, models.ToneForAmount(0.01))
	assert.Equal(t, models.ToneError, models.ToneForAmount(0))
	assert.Equal(t, models.ToneError, models.ToneForAmount(-5))
}
