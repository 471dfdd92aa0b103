package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthurquine/RB-Exchange-1/internal/api/handlers"
	"github.com/arthurquine/RB-Exchange-1/internal/api/middlew"
	"github.com/arthurquine/RB-Exchange-1/internal/config"
	"github.com/arthurquine/RB-Exchange-1/internal/db"
	"github.com/arthurquine/RB-Exchange-1/internal/kafka"
	"github.com/arthurquine/RB-Exchange-1/internal/server"
	"github.com/arthurquine/RB-Exchange-1/internal/service"
	"github.com/arthurquine/RB-Exchange-1/internal/storage/postgres"
	"github.com/arthurquine/RB-Exchange-1/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	log                *slog.Logger
	server             *server.Server
	pool               *pgxpool.Pool
	logFile            *os.File
	cfg                *config.Config
	transactionService *service.TransactionService
	kafkaProducer      kafka.Producer
}

func NewApp() (*App, error) {
	loggerWithFile := logger.NewLoggerWithFile("exchange.log")
	log := loggerWithFile.Logger
	log.Info("инициализация приложения")

	// при ошибке инициализации уже занятые ресурсы освобождаются здесь
	cleanup := func(pool *pgxpool.Pool) {
		if pool != nil {
			pool.Close()
		}
		_ = loggerWithFile.LogFile.Close()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		cleanup(nil)
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}
	log.Info("конфигурация загружена", slog.String("port", cfg.HTTPPort))

	log.Info("выполнение миграций базы данных")
	if err := db.RunMigrations(cfg.DB.MigrationURL(), "migrations"); err != nil {
		cleanup(nil)
		return nil, fmt.Errorf("ошибка выполнения миграций: %w", err)
	}
	log.Info("миграции успешно применены")

	poolCfg := db.PoolConfig{
		MaxConns:          100,
		MinConns:          5,
		HealthCheckPeriod: 30 * time.Second,
		PoolTimeout:       5 * time.Second,
		RetryAttempts:     5,
		RetryDelay:        1 * time.Second,
		ApplicationName:   "rb-exchange",
	}

	pool, err := db.NewPool(context.Background(), cfg.DB.DSN(), poolCfg, log)
	if err != nil {
		cleanup(nil)
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	log.Info("подключение к базе данных установлено")

	var kafkaProducer kafka.Producer
	if cfg.Kafka.Enabled {
		log.Info("инициализация kafka producer", slog.Any("brokers", cfg.Kafka.Brokers))
		kafkaProducer, err = kafka.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			cleanup(pool)
			return nil, fmt.Errorf("ошибка инициализации kafka: %w", err)
		}
	} else {
		log.Info("kafka отключен в конфигурации")
		kafkaProducer = kafka.NewNoOpProducer(log)
	}

	srv := server.NewServer(cfg.HTTPPort)
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))
	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(middleware.Recoverer)
	srv.RegisterSwagger()

	return &App{
		log:           log,
		server:        srv,
		pool:          pool,
		logFile:       loggerWithFile.LogFile,
		cfg:           cfg,
		kafkaProducer: kafkaProducer,
	}, nil
}

func (a *App) BuildTransactionLayer() {
	txManager := service.NewPgxTxManager(a.pool)
	transactionRepo := postgres.NewTransactionRepository(a.pool)

	a.transactionService = service.NewTransactionService(
		transactionRepo,
		txManager,
		a.kafkaProducer,
		a.log,
	)

	transactionHandler := handlers.NewTransactionHandler(a.transactionService)

	a.server.Router.Post("/api/v1/transactions", transactionHandler.CreateTransaction)
	a.server.Router.Get("/api/v1/transactions", transactionHandler.ListTransactions)
	a.server.Router.Get("/api/v1/transactions/{id}", transactionHandler.GetTransaction)

	a.log.Info("слой 'transactions' собран и маршруты зарегистрированы")
}

func (a *App) BuildBalanceLayer() {
	transactionRepo := postgres.NewTransactionRepository(a.pool)
	balanceService := service.NewBalanceService(transactionRepo, a.log)

	balanceHandler := handlers.NewBalanceHandler(balanceService)
	currencyHandler := handlers.NewCurrencyHandler()

	a.server.Router.Get("/api/v1/balances", balanceHandler.GetBalanceView)
	a.server.Router.Get("/api/v1/currencies", currencyHandler.ListCurrencies)

	a.log.Info("слой 'balance' собран и маршруты зарегистрированы")
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.transactionService != nil {
		a.log.Info("остановка transaction service")
		if err := a.transactionService.Shutdown(ctx); err != nil {
			a.log.Error("ошибка при остановке transaction service", slog.String("error", err.Error()))
		}
	}

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	if a.kafkaProducer != nil {
		a.log.Info("закрытие kafka producer")
		if err := a.kafkaProducer.Close(); err != nil {
			a.log.Error("ошибка при закрытии kafka producer", slog.String("error", err.Error()))
		}
	}

	a.log.Info("закрытие соединения с базой данных")
	a.pool.Close()

	a.log.Info("закрытие файла логов")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			a.log.Error("ошибка при закрытии файла логов", slog.String("error", err.Error()))
		}
	}

	a.log.Info("приложение остановлено")
	return nil
}
