package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arthurquine/RB-Exchange-1/internal/currency"
	"github.com/arthurquine/RB-Exchange-1/internal/custom_err"
	"github.com/arthurquine/RB-Exchange-1/internal/kafka"
	"github.com/arthurquine/RB-Exchange-1/internal/models"
	"github.com/arthurquine/RB-Exchange-1/internal/storage/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// порог крупной операции в базовой валюте (DZD)
const largeTransactionThreshold = 1000000.0

type Transactions interface {
	Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
}

type TransactionService struct {
	repo          postgres.TransactionRepository
	txManager     TxManager
	kafkaProducer kafka.Producer
	log           *slog.Logger

	eventQueue chan models.LargeTransactionEvent
	wg         sync.WaitGroup
	stopCh     chan struct{}
}

func NewTransactionService(
	repo postgres.TransactionRepository,
	txManager TxManager,
	kafkaProducer kafka.Producer,
	log *slog.Logger,
) *TransactionService {
	svc := &TransactionService{
		repo:          repo,
		txManager:     txManager,
		kafkaProducer: kafkaProducer,
		eventQueue:    make(chan models.LargeTransactionEvent, 100),
		stopCh:        make(chan struct{}),
		log:           log,
	}

	for i := 0; i < 3; i++ {
		svc.wg.Add(1)
		go svc.kafkaWorker(i)
	}

	return svc
}

func (s *TransactionService) kafkaWorker(id int) {
	defer s.wg.Done()
	s.log.Info("kafka worker started", slog.Int("worker_id", id))

	for {
		select {
		case event := <-s.eventQueue:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.kafkaProducer.SendLargeTransactionEvent(ctx, event); err != nil {
				s.log.Error("kafka send failed",
					slog.Int("worker_id", id),
					slog.String("tx_id", event.TransactionID),
					slog.String("error", err.Error()))
			} else {
				s.log.Info("event sent to kafka",
					slog.Int("worker_id", id),
					slog.String("tx_id", event.TransactionID))
			}
			cancel()

		case <-s.stopCh:
			s.log.Info("kafka worker stopping", slog.Int("worker_id", id))
			return
		}
	}
}

func (s *TransactionService) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down transaction service")

	close(s.stopCh)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all kafka workers stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("shutdown timeout exceeded")
		return ctx.Err()
	}
}

// Create регистрирует операцию обмена. Повторный запрос с тем же requestID
// не создаёт дубликат. Для крупных операций публикуется событие в Kafka.
func (s *TransactionService) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	const op = "service.CreateTransaction"

	if req.CurrencyCode == "" {
		return nil, custom_err.ErrInvalidInput
	}
	if !req.TargetCurrency.IsValid() {
		return nil, custom_err.ErrInvalidCurrency
	}
	if !req.Type.IsValid() {
		return nil, custom_err.ErrInvalidType
	}
	if req.Amount <= 0 {
		return nil, custom_err.ErrInvalidAmount
	}
	if req.Rate <= 0 {
		return nil, custom_err.ErrInvalidRate
	}
	if req.RequestID == "" {
		return nil, custom_err.ErrInvalidInput
	}

	transaction := &models.Transaction{
		ID:             uuid.New(),
		CurrencyCode:   req.CurrencyCode,
		TargetCurrency: req.TargetCurrency,
		Type:           req.Type,
		Amount:         req.Amount,
		Rate:           req.Rate,
		RequestID:      req.RequestID,
	}

	s.log.Info("регистрация операции",
		slog.String("op", op),
		slog.String("currency", req.CurrencyCode),
		slog.String("target", string(req.TargetCurrency)),
		slog.String("type", string(req.Type)),
		slog.Float64("amount", req.Amount),
		slog.Float64("rate", req.Rate))

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.TransactionExistsTx(ctx, tx, req.RequestID)
		if err != nil {
			return fmt.Errorf("failed to check transaction: %w", err)
		}
		if exists {
			return custom_err.ErrDuplicateRequest
		}

		if err := s.repo.CreateTx(ctx, tx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	amountBase := req.Amount * req.Rate
	if amountBase >= largeTransactionThreshold {
		event := models.LargeTransactionEvent{
			TransactionID:  transaction.ID.String(),
			CurrencyCode:   req.CurrencyCode,
			TargetCurrency: string(req.TargetCurrency),
			Type:           string(req.Type),
			Amount:         req.Amount,
			AmountBase:     amountBase,
			AmountDisplay:  currency.FormatAmount(amountBase, "DZD"),
			Rate:           req.Rate,
			Timestamp:      time.Now(),
		}

		select {
		case s.eventQueue <- event:
			s.log.Debug("событие о крупной операции добавлено в очередь",
				slog.String("transaction_id", event.TransactionID))
		default:
			s.log.Error("очередь событий переполнена, событие отброшено",
				slog.String("transaction_id", event.TransactionID),
				slog.Float64("amount_base", amountBase))
		}
	}

	return transaction, nil
}

func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "service.GetTransaction"

	transaction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return transaction, nil
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	const op = "service.ListTransactions"

	transactions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return transactions, nil
}
