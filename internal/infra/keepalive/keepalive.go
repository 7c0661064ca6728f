// Package keepalive периодически дёргает собственный /api/health, чтобы
// бесплатный хостинг не усыплял инстанс. С данными не работает.
package keepalive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	log      *slog.Logger
}

// New: baseURL — внешний адрес сервиса (или http://localhost:PORT).
func New(baseURL string, interval time.Duration, log *slog.Logger) *Pinger {
	return &Pinger{
		url:      strings.TrimRight(baseURL, "/") + "/api/health",
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (p *Pinger) URL() string { return p.url }

func (p *Pinger) Run(ctx context.Context) {
	p.log.Info("keep-alive started", "url", p.url, "interval", p.interval.String())
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := p.Ping(ctx); err != nil {
				p.log.Warn("keep-alive ping failed", "err", err)
				continue
			}
			p.log.Debug("keep-alive ping ok")
		}
	}
}

func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}
	return nil
}
