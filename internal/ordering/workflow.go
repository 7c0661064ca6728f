// Package ordering — отправка корзины: проверка, запись в журнал заказов,
// фоновое письмо менеджеру. Ответ клиенту не ждёт письма.
package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/infra/metrics"
	"github.com/Spok95/supplyhub/internal/notify"
)

var ErrValidation = errors.New("invalid order data")

const SuccessMessage = "Order submitted successfully"

type OrderLog interface {
	Create(ctx context.Context, lines []orders.Line) (*orders.Order, error)
	Count(ctx context.Context) (int, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, lines []orders.Line, orderID string) notify.Result
}

// Result — ответ клиенту. OrderNumber — просто текущее число заказов для
// экрана, не порядковый номер. EmailSent всегда true: это намерение, а не факт.
type Result struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber int    `json:"orderNumber"`
	EmailSent   bool   `json:"emailSent"`
	Message     string `json:"message"`
}

type Workflow struct {
	orders   OrderLog
	notifier Notifier
	log      *slog.Logger
	metrics  *metrics.Metrics
	timeout  time.Duration
	now      func() time.Time

	wg sync.WaitGroup
}

func New(ol OrderLog, n Notifier, log *slog.Logger, m *metrics.Metrics, notifyTimeout time.Duration) *Workflow {
	if notifyTimeout <= 0 {
		notifyTimeout = 30 * time.Second
	}
	return &Workflow{orders: ol, notifier: n, log: log, metrics: m, timeout: notifyTimeout, now: time.Now}
}

// Validate: минимум одна позиция, все четыре поля — непустые строки.
func Validate(lines []orders.Line) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: items must contain at least 1 element", ErrValidation)
	}
	for i, l := range lines {
		switch {
		case strings.TrimSpace(l.ItemID) == "":
			return fmt.Errorf("%w: items[%d].itemId is required", ErrValidation, i)
		case strings.TrimSpace(l.ItemName) == "":
			return fmt.Errorf("%w: items[%d].itemName is required", ErrValidation, i)
		case strings.TrimSpace(l.GroupID) == "":
			return fmt.Errorf("%w: items[%d].groupId is required", ErrValidation, i)
		case strings.TrimSpace(l.GroupName) == "":
			return fmt.Errorf("%w: items[%d].groupName is required", ErrValidation, i)
		}
	}
	return nil
}

func (w *Workflow) Submit(ctx context.Context, lines []orders.Line) (Result, error) {
	if err := Validate(lines); err != nil {
		return Result{}, err
	}

	order, err := w.orders.Create(ctx, lines)
	if err != nil {
		return Result{}, fmt.Errorf("create order: %w", err)
	}

	// Заказ уже записан: если счётчик не посчитался, не роняем ответ,
	// иначе клиент отправит заказ повторно.
	number, err := w.orders.Count(ctx)
	if err != nil {
		w.log.Warn("order count failed", "order_id", order.ID, "err", err)
		number = 0
	}

	w.log.Info("order submitted", "order_id", order.ID, "number", number, "items", len(lines))
	w.log.Debug("order summary", "order_id", order.ID, "summary", notify.Summary(lines, w.now()))
	w.metrics.OrderSubmitted(len(lines))

	snapshot := make([]orders.Line, len(lines))
	copy(snapshot, lines)
	w.wg.Add(1)
	go w.sendEmail(snapshot, order.ID)

	return Result{
		Success:     true,
		OrderID:     order.ID,
		OrderNumber: number,
		EmailSent:   true,
		Message:     SuccessMessage,
	}, nil
}

// sendEmail живёт отдельно от запроса: свой контекст с таймаутом, ошибки только в лог.
func (w *Workflow) sendEmail(lines []orders.Line, orderID string) {
	defer w.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			w.metrics.Notification(false)
			w.log.Error("order email panic", "order_id", orderID, "panic", fmt.Sprint(r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	res := w.notifier.Dispatch(ctx, lines, orderID)
	w.metrics.Notification(res.Success)
	if res.Success {
		w.log.Info("order email sent", "order_id", orderID, "message_id", res.MessageID)
		return
	}
	w.log.Error("order email failed", "order_id", orderID, "err", res.Error)
}

// Wait ждёт фоновые письма (для тестов и graceful shutdown).
func (w *Workflow) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
