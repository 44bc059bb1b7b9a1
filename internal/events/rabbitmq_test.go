package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"crm-backend/internal/database/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitMQPublisher_PublishLeadStatusChanged(t *testing.T) {
	changedBy := uint(7)
	event := LeadStatusChanged{
		LeadID:      42,
		OldStatus:   models.LeadStatusNew,
		NewStatus:   models.LeadStatusQualified,
		ChangedByID: &changedBy,
		ChangedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		RequestID:   "req-1",
	}

	t.Run("Publishes persistent JSON on the configured exchange", func(t *testing.T) {
		ch := &fakeChannel{}
		publisher := &RabbitMQPublisher{ch: ch, exchange: "crm.events"}

		err := publisher.PublishLeadStatusChanged(context.Background(), event)
		require.NoError(t, err)
		require.Len(t, ch.published, 1)

		msg := ch.published[0]
		assert.Equal(t, "crm.events", msg.exchange)
		assert.Equal(t, RoutingKeyLeadStatusChanged, msg.key)
		assert.Equal(t, "application/json", msg.msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.msg.DeliveryMode)

		var decoded LeadStatusChanged
		require.NoError(t, json.Unmarshal(msg.msg.Body, &decoded))
		assert.Equal(t, event, decoded)
	})

	t.Run("Wraps broker errors", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		publisher := &RabbitMQPublisher{ch: ch, exchange: "crm.events"}

		err := publisher.PublishLeadStatusChanged(context.Background(), event)
		assert.ErrorContains(t, err, "publish lead.status_changed")
		assert.ErrorContains(t, err, "channel closed")
	})
}

func TestRabbitMQPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &RabbitMQPublisher{ch: ch, exchange: "crm.events"}

	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
	assert.False(t, publisher.Healthy())
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher()

	assert.NoError(t, publisher.PublishLeadStatusChanged(context.Background(), LeadStatusChanged{LeadID: 1}))
	assert.True(t, publisher.Healthy())
	assert.NoError(t, publisher.Close())
}
