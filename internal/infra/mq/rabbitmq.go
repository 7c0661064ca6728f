package mq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNack = errors.New("publish NACK from broker")

// confirmation — подтверждение одной конкретной публикации (по delivery tag).
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type confirmPublisher interface {
	publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
}

type channelPublisher struct{ ch *amqp.Channel }

func (p channelPublisher) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		// канал не в confirm-режиме
		return nil, nil
	}
	return dc, nil
}

type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	out  confirmPublisher
}

// Dial подключается по URL (amqp:// или amqps://), включает publisher confirms
// и объявляет fanout-exchange для уведомлений.
func Dial(url, exchange string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Client{conn: conn, ch: ch, out: channelPublisher{ch: ch}}, nil
}

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Ping — проверка готовности для /ready.
func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Publish публикует сообщение и ждёт ack/nack именно этой публикации или
// отмену ctx. Опоздавшее подтверждение чужой публикации сюда не попадёт.
func (c *Client) Publish(ctx context.Context, exchange, key string,
	body []byte, headers amqp.Table, contentType string, persistent bool) error {

	mode := amqp.Transient
	if persistent {
		mode = amqp.Persistent
	}

	conf, err := c.out.publish(ctx, exchange, key, amqp.Publishing{
		DeliveryMode: mode,
		ContentType:  contentType,
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return err
	}
	if conf == nil {
		return nil
	}

	ack, err := conf.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !ack {
		return ErrNack
	}
	return nil
}
