package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/arthurquine/RB-Exchange-1/internal/models"

	"github.com/IBM/sarama"
)

type Producer interface {
	SendLargeTransactionEvent(ctx context.Context, event models.LargeTransactionEvent) error
	Close() error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

func NewKafkaProducer(brokers []string, topic string, log *slog.Logger) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 250 * time.Millisecond
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer создан", slog.String("topic", topic), slog.Any("brokers", brokers))

	return &KafkaProducer{
		producer: producer,
		topic:    topic,
		log:      log,
	}, nil
}

// SendLargeTransactionEvent публикует событие о крупной операции.
// Ключ сообщения — ID операции, события по одной операции попадают в одну партицию.
func (p *KafkaProducer) SendLargeTransactionEvent(ctx context.Context, event models.LargeTransactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.TransactionID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("large_transaction")},
		},
	}

	// SendMessage блокирует без учёта контекста, поэтому ждём в отдельной горутине
	done := make(chan error, 1)
	var partition int32
	var offset int64

	go func() {
		var sendErr error
		partition, offset, sendErr = p.producer.SendMessage(msg)
		done <- sendErr
	}()

	select {
	case err := <-done:
		if err != nil {
			p.log.Error("не удалось отправить событие в kafka",
				slog.String("transaction_id", event.TransactionID),
				slog.String("error", err.Error()))
			return fmt.Errorf("send message: %w", err)
		}
		p.log.Debug("событие отправлено в kafka",
			slog.String("transaction_id", event.TransactionID),
			slog.Int("partition", int(partition)),
			slog.Int64("offset", offset))
		return nil

	case <-ctx.Done():
		p.log.Warn("отправка события в kafka отменена",
			slog.String("transaction_id", event.TransactionID))
		return ctx.Err()
	}
}

func (p *KafkaProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("закрытие kafka producer")
	return p.producer.Close()
}

// NoOpProducer используется, когда kafka выключена в конфигурации
type NoOpProducer struct {
	log *slog.Logger
}

func NewNoOpProducer(log *slog.Logger) Producer {
	return &NoOpProducer{log: log}
}

func (p *NoOpProducer) SendLargeTransactionEvent(ctx context.Context, event models.LargeTransactionEvent) error {
	p.log.Debug("kafka отключен, событие не отправлено",
		slog.String("transaction_id", event.TransactionID))
	return nil
}

func (p *NoOpProducer) Close() error {
	return nil
}
