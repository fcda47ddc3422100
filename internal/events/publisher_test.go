package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w)

	event := entities.OrderEvent{
		Type:       entities.EventOrderCompleted,
		OrderCode:  "b6f1c1c2-4c0e-4f5e-9d51-7f8a7e0b6a11",
		UserID:     3,
		TotalPrice: 20000,
		Lines: []entities.OrderLine{
			{ItemCode: "item-1", ItemName: "T-Shirt", Price: 10000, Quantity: 2},
		},
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte(event.OrderCode), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order.completed", string(msg.Headers[0].Value))

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "order.completed", got.Type)
	assert.Equal(t, int64(20000), got.TotalPrice)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "T-Shirt", got.Lines[0].ItemName)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestPublisher_PublishError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	p := NewPublisherWithWriter(&fakeWriter{err: writeErr})

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.EventOrderCancelled})
	assert.ErrorIs(t, err, writeErr)
}
