package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurquine/RB-Exchange-1/internal/currency"
	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/storage/postgres"
)

type Balance interface {
	GetBalanceView(ctx context.Context, display models.Currency) (*models.BalanceView, error)
}

type BalanceService struct {
	repo postgres.TransactionRepository
	log  *slog.Logger
}

func NewBalanceService(repo postgres.TransactionRepository, log *slog.Logger) Balance {
	return &BalanceService{
		repo: repo,
		log:  log,
	}
}

// GetBalanceView собирает данные экрана балансов: агрегаты по исходным валютам
// в выбранной валюте отображения, итог в базовой валюте и его эквивалент по
// среднему наблюдённому курсу. Пустые состояния кодируются полем Message.
func (s *BalanceService) GetBalanceView(ctx context.Context, display models.Currency) (*models.BalanceView, error) {
	const op = "service.GetBalanceView"

	if !display.IsValid() {
		return nil, custom_err.ErrInvalidCurrency
	}

	transactions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	balances := CalculateBalances(transactions, display)
	for i := range balances {
		if info, ok := currency.Lookup(balances[i].Code); ok {
			balances[i].Currency = &info
		}
	}

	total := CalculateTotalBalance(transactions)
	avgRate := AverageRate(transactions, display)

	view := &models.BalanceView{
		Summary: models.BalanceSummary{
			Total:           total,
			AverageRate:     avgRate,
			DisplayCurrency: display,
			Tone:            models.ToneForAmount(total),
		},
		Balances:       balances,
		DisplayOptions: models.SupportedCurrencies(),
	}
	if avgRate > 0 {
		view.Summary.Converted = total * avgRate
	}

	switch {
	case len(transactions) == 0:
		view.Message = "No transactions yet"
	case len(balances) == 0:
		view.Message = fmt.Sprintf("No transactions in %s yet", display)
	}

	s.log.Debug("экран балансов собран",
		slog.String("op", op),
		slog.String("display", string(display)),
		slog.Int("transactions", len(transactions)),
		slog.Int("rows", len(balances)),
		slog.Float64("total", total))

	return view, nil
}
