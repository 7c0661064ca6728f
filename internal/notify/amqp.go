package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher — часть mq.Client, через которую письмо уходит в брокер;
// само письмо отправляет внешний почтовый воркер.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte, headers amqp.Table, contentType string, persistent bool) error
}

type AMQPTransport struct {
	pub      Publisher
	exchange string
}

const amqpRoutingKey = "order.notification"

func NewAMQPTransport(pub Publisher, exchange string) *AMQPTransport {
	return &AMQPTransport{pub: pub, exchange: exchange}
}

func (t *AMQPTransport) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	headers := amqp.Table{
		"x-source":     "supplyhub",
		"x-message-id": id,
	}
	if err := t.pub.Publish(ctx, t.exchange, amqpRoutingKey, body, headers, "application/json", true); err != nil {
		return "", err
	}
	return id, nil
}
