package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
	Timeout  time.Duration
}

// MailTransport шлёт письмо через SMTP (по умолчанию Gmail, SSL на 465).
type MailTransport struct {
	cfg MailConfig
}

func NewMailTransport(cfg MailConfig) *MailTransport {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &MailTransport{cfg: cfg}
}

func (t *MailTransport) message(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(t.cfg.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := m.To(msg.Recipient); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	}
	return m, nil
}

func (t *MailTransport) Send(ctx context.Context, msg Message) (string, error) {
	m, err := t.message(msg)
	if err != nil {
		return "", err
	}

	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.Username),
		mail.WithPassword(t.cfg.Password),
	}
	if t.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}
	if t.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(t.cfg.Timeout))
	}
	c, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	var id string
	if ids := m.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		id = ids[0]
	}
	return id, nil
}
