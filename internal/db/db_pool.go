package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	MaxConns          int
	MinConns          int
	HealthCheckPeriod time.Duration
	PoolTimeout       time.Duration
	RetryAttempts     int
	RetryDelay        time.Duration
	ApplicationName   string
}

// NewPool создаёт пул соединений с экспоненциальной задержкой между попытками.
// База может подниматься дольше сервиса, поэтому первые неудачи не фатальны.
func NewPool(ctx context.Context, dsn string, cfg PoolConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось распарсить DSN: %w", err)
	}

	conf.MaxConns = int32(cfg.MaxConns)
	conf.MinConns = int32(cfg.MinConns)
	conf.HealthCheckPeriod = cfg.HealthCheckPeriod
	conf.MaxConnLifetime = 30 * time.Minute
	conf.MaxConnIdleTime = 5 * time.Minute
	conf.ConnConfig.ConnectTimeout = cfg.PoolTimeout
	if cfg.ApplicationName != "" {
		conf.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.RetryAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, conf)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info("подключение к базе данных успешно", slog.Int("attempt", attempt))
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		log.Warn("база данных недоступна",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.RetryAttempts),
			slog.String("error", err.Error()))

		select {
		case <-time.After(cfg.RetryDelay * time.Duration(1<<(attempt-1))):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("не удалось создать пул соединений после %d попыток: %w", cfg.RetryAttempts, lastErr)
}
