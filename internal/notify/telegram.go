package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatSender — часть *tgbotapi.BotAPI, которая нам нужна.
type chatSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramTransport шлёт текстовую сводку в админ-чат. Recipient — chat_id
// (личка или группа); если в Message его нет, берётся дефолтный чат.
type TelegramTransport struct {
	api         chatSender
	defaultChat int64
}

func NewTelegramTransport(token string, adminChatID int64) (*TelegramTransport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramTransport{api: api, defaultChat: adminChatID}, nil
}

func (t *TelegramTransport) chatID(recipient string) (int64, error) {
	if id, err := strconv.ParseInt(recipient, 10, 64); err == nil && id != 0 {
		return id, nil
	}
	if t.defaultChat != 0 {
		return t.defaultChat, nil
	}
	return 0, fmt.Errorf("telegram: no chat id for recipient %q", recipient)
}

func (t *TelegramTransport) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	chatID, err := t.chatID(msg.Recipient)
	if err != nil {
		return "", err
	}
	text := msg.Subject
	if msg.Text != "" {
		text += "\n\n" + msg.Text
	}
	sent, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return "", fmt.Errorf("telegram send: %w", err)
	}
	return strconv.Itoa(sent.MessageID), nil
}
