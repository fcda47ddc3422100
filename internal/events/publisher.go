package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher пишет события заказов в kafka. Ключ сообщения - код заказа,
// поэтому события одного заказа попадают в одну партицию по порядку.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.EventsTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

type OrderLine struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderEvent struct {
	Type       string      `json:"type"`
	OrderCode  string      `json:"order_code"`
	UserID     int64       `json:"user_id"`
	TotalPrice int64       `json:"total_price"`
	Lines      []OrderLine `json:"lines"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func EventToJSON(e entities.OrderEvent) OrderEvent {
	lines := make([]OrderLine, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, OrderLine{
			ItemCode: l.ItemCode,
			ItemName: l.ItemName,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}
	return OrderEvent{
		Type:       string(e.Type),
		OrderCode:  e.OrderCode,
		UserID:     e.UserID,
		TotalPrice: e.TotalPrice,
		Lines:      lines,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

func (p *Publisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	value, err := json.Marshal(EventToJSON(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.OrderCode),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
