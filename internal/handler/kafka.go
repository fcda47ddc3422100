package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type Restocker interface {
	Restock(ctx context.Context, code string, quantity int) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler читает поставки со склада и пополняет остатки каталога.
type kafkaHandler struct {
	dlq       MessageWriter
	reader    MessageReader
	logger    *slog.Logger
	validate  *validator.Validate
	restocker Restocker
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, restocker Restocker) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.RestockTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaHandlerWithIO(logger, reader, dlq, restocker)
}

func NewKafkaHandlerWithIO(logger *slog.Logger, reader MessageReader, dlq MessageWriter, restocker Restocker) *kafkaHandler {
	return &kafkaHandler{
		logger:    logger.With(slog.String("handler", "kafka")),
		reader:    reader,
		dlq:       dlq,
		validate:  validator.New(),
		restocker: restocker,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		restockInProgress.Inc()
		start := time.Now()
		err = h.handleRestock(ctx, m)
		restockProcessingDuration.Observe(time.Since(start).Seconds())
		restockInProgress.Dec()

		if err != nil {
			restockFailed.Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
			)

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			restockDLQ.Inc()
		} else {
			restockProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleRestock(ctx context.Context, m kafka.Message) error {
	var msg RestockMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal restock: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid restock data: %w", err)
	}

	return h.restocker.Restock(ctx, msg.ItemCode, msg.Quantity)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
