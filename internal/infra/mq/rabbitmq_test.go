package mq

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pendingConfirm приходит от брокера, когда тест пишет в ch.
type pendingConfirm struct{ ch chan bool }

func (p *pendingConfirm) WaitContext(ctx context.Context) (bool, error) {
	select {
	case ack := <-p.ch:
		return ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeBroker struct {
	mu        sync.Mutex
	published []amqp.Publishing
	confirms  []*pendingConfirm
	err       error
	noConfirm bool
}

func (b *fakeBroker) publish(_ context.Context, _, _ string, msg amqp.Publishing) (confirmation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	b.published = append(b.published, msg)
	if b.noConfirm {
		return nil, nil
	}
	pc := &pendingConfirm{ch: make(chan bool, 1)}
	b.confirms = append(b.confirms, pc)
	return pc, nil
}

// confirm ждёт i-ю публикацию и отдаёт её подтверждение.
func (b *fakeBroker) confirm(t *testing.T, i int) *pendingConfirm {
	t.Helper()
	var pc *pendingConfirm
	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if len(b.confirms) > i {
			pc = b.confirms[i]
			return true
		}
		return false
	}, time.Second, time.Millisecond)
	return pc
}

func publish(ctx context.Context, c *Client) error {
	return c.Publish(ctx, "supply_notifications", "order.notification", []byte(`{}`), amqp.Table{"x": "y"}, "application/json", true)
}

func TestPublish_Ack(t *testing.T) {
	b := &fakeBroker{}
	c := &Client{out: b}

	done := make(chan error, 1)
	go func() { done <- publish(context.Background(), c) }()

	b.confirm(t, 0).ch <- true
	require.NoError(t, <-done)

	b.mu.Lock()
	msg := b.published[0]
	b.mu.Unlock()
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Table{"x": "y"}, msg.Headers)
}

func TestPublish_Nack(t *testing.T) {
	b := &fakeBroker{}
	c := &Client{out: b}

	done := make(chan error, 1)
	go func() { done <- publish(context.Background(), c) }()

	b.confirm(t, 0).ch <- false
	assert.ErrorIs(t, <-done, ErrNack)
}

func TestPublish_LateConfirmDoesNotLeakIntoNextPublish(t *testing.T) {
	b := &fakeBroker{}
	c := &Client{out: b}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, publish(ctx, c), context.DeadlineExceeded)

	// ack первой публикации пришёл уже после таймаута
	b.confirm(t, 0).ch <- true

	done := make(chan error, 1)
	go func() { done <- publish(context.Background(), c) }()

	b.confirm(t, 1).ch <- false
	assert.ErrorIs(t, <-done, ErrNack)
}

func TestPublish_ChannelError(t *testing.T) {
	c := &Client{out: &fakeBroker{err: errors.New("channel closed")}}
	assert.EqualError(t, publish(context.Background(), c), "channel closed")
}

func TestPublish_NoConfirmMode(t *testing.T) {
	c := &Client{out: &fakeBroker{noConfirm: true}}
	assert.NoError(t, publish(context.Background(), c))
}

func TestPing_NoConnection(t *testing.T) {
	assert.Error(t, (&Client{}).Ping())
}
