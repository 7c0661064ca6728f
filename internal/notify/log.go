package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogTransport ничего не отправляет, только пишет письмо в лог (dev-режим).
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport { return &LogTransport{log: log} }

func (t *LogTransport) Send(_ context.Context, msg Message) (string, error) {
	id := "log-" + uuid.NewString()
	t.log.Info("order email (log transport)",
		"message_id", id,
		"recipient", msg.Recipient,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return id, nil
}
