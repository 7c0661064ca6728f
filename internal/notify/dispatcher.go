// Package notify — письмо менеджеру о новом заказе. Доставка не гарантируется:
// результат только возвращается и логируется, повторов нет.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Spok95/supplyhub/internal/domain/orders"
)

var ErrNoRecipient = errors.New("notify: recipient is not configured")

// Message — то, что уходит в транспорт. Text — альтернатива для чатов.
type Message struct {
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
	Text      string `json:"text"`
	Recipient string `json:"recipient"`
}

// Transport — единственная операция: отправить. Возвращает id сообщения,
// если транспорт его знает.
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type Result struct {
	Success   bool
	MessageID string
	Error     string
}

type Dispatcher struct {
	transport Transport
	recipient string
	company   string
	log       *slog.Logger
	now       func() time.Time
}

func NewDispatcher(t Transport, recipient, company string, log *slog.Logger) *Dispatcher {
	return &Dispatcher{transport: t, recipient: recipient, company: company, log: log, now: time.Now}
}

// Dispatch строит письмо и отправляет его. Паника транспорта — тоже просто неуспех.
func (d *Dispatcher) Dispatch(ctx context.Context, lines []orders.Line, orderID string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Error: fmt.Sprintf("transport panic: %v", r)}
		}
	}()

	if d.recipient == "" {
		return Result{Error: ErrNoRecipient.Error()}
	}

	at := d.now()
	html, err := RenderHTML(d.company, orderID, lines, at)
	if err != nil {
		return Result{Error: fmt.Sprintf("render email: %v", err)}
	}
	msg := Message{
		Subject:   Subject(d.company, orderID, len(lines)),
		HTML:      html,
		Text:      Summary(lines, at),
		Recipient: d.recipient,
	}

	d.log.Debug("sending order email", "order_id", orderID, "recipient", d.recipient)
	id, err := d.transport.Send(ctx, msg)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Success: true, MessageID: id}
}
