package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublishEvent_WritesJSONToTopic(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{w: w}

	ev := New(OrderCreated, map[string]any{"order_id": 7})
	require.NoError(t, p.PublishEvent(context.Background(), TopicOrders, "7", ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, TopicOrders, w.msgs[0].Topic)
	assert.Equal(t, "7", string(w.msgs[0].Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &body))
	assert.Equal(t, OrderCreated, body["type"])
	assert.EqualValues(t, 7, body["order_id"])
	_, err := uuid.Parse(body["event_id"].(string))
	assert.NoError(t, err)
	assert.NotEmpty(t, body["occurred_at"])
}

func TestPublishEvent_WrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := &Producer{w: &fakeWriter{err: boom}}

	err := p.PublishEvent(context.Background(), TopicProducts, "1", New(ProductCreated, nil))
	require.ErrorIs(t, err, boom)
}

func TestPublishEvent_UnmarshalableEvent(t *testing.T) {
	p := &Producer{w: &fakeWriter{}}

	err := p.PublishEvent(context.Background(), TopicProducts, "1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	require.Error(t, err)

	p, err := NewProducer([]string{"localhost:9092"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestNew_EnvelopeOverridesFields(t *testing.T) {
	ev := New(PaymentCreated, map[string]any{"type": "spoofed", "payment_id": 3})

	assert.Equal(t, PaymentCreated, ev["type"])
	assert.Equal(t, 3, ev["payment_id"])
}

func TestClose_ClosesWriter(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&Producer{w: w}).Close())
	assert.True(t, w.closed)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.PublishEvent(context.Background(), TopicOrders, "1", nil))
}
