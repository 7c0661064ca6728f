package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Spok95/supplyhub/internal/access"
	"github.com/Spok95/supplyhub/internal/api"
	"github.com/Spok95/supplyhub/internal/cart"
	"github.com/Spok95/supplyhub/internal/config"
	"github.com/Spok95/supplyhub/internal/domain/catalog"
	"github.com/Spok95/supplyhub/internal/domain/ledger"
	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/domain/usage"
	"github.com/Spok95/supplyhub/internal/infra/db"
	httpx "github.com/Spok95/supplyhub/internal/infra/http"
	"github.com/Spok95/supplyhub/internal/infra/keepalive"
	"github.com/Spok95/supplyhub/internal/infra/logger"
	"github.com/Spok95/supplyhub/internal/infra/metrics"
	"github.com/Spok95/supplyhub/internal/infra/mq"
	"github.com/Spok95/supplyhub/internal/memstore"
	"github.com/Spok95/supplyhub/internal/notify"
	"github.com/Spok95/supplyhub/internal/ordering"
	"github.com/Spok95/supplyhub/migrations"
)

type catalogStore interface {
	api.CatalogStore
	catalog.Seeder
}

type orderStore interface {
	api.OrderLog
	ordering.OrderLog
}

type storage struct {
	catalog catalogStore
	ledger  api.Ledger
	orders  orderStore
	usage   api.UsageLog
	close   func()
}

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	goose.SetBaseFS(migrations.FS)
	return goose.Up(sqlDB, ".")
}

func openStorage(ctx context.Context, cfg config.Config, log *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn("using in-memory storage, data is lost on restart")
		ms := memstore.New()
		return &storage{
			catalog: ms.Catalog(), ledger: ms.Ledger(),
			orders: ms.Orders(), usage: ms.Usage(),
			close: func() {},
		}, nil
	case "postgres", "":
		if err := runMigrations(cfg.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations applied")

		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		log.Info("db connected")
		return &storage{
			catalog: catalog.NewRepo(pool), ledger: ledger.NewRepo(pool),
			orders: orders.NewRepo(pool), usage: usage.NewRepo(pool),
			close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

type notifySetup struct {
	transport notify.Transport
	recipient string
	close     func()
	ready     []httpx.ReadyCheck
}

// buildTransport выбирает, куда уходит письмо о заказе.
func buildTransport(cfg config.Config, log *slog.Logger) (*notifySetup, error) {
	ns := &notifySetup{recipient: cfg.Notify.Recipient, close: func() {}}

	switch cfg.Notify.Transport {
	case "smtp":
		ns.transport = notify.NewMailTransport(notify.MailConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			SSL:      cfg.SMTP.SSL,
			Timeout:  cfg.Notify.Timeout,
		})
	case "telegram":
		t, err := notify.NewTelegramTransport(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
		if err != nil {
			return nil, err
		}
		ns.transport = t
		if ns.recipient == "" {
			ns.recipient = strconv.FormatInt(cfg.Telegram.AdminChatID, 10)
		}
	case "amqp":
		c, err := mq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		ns.transport = notify.NewAMQPTransport(c, cfg.RabbitMQ.Exchange)
		ns.close = c.Close
		ns.ready = append(ns.ready, c.Ping)
	case "log", "":
		ns.transport = notify.NewLogTransport(log)
		if ns.recipient == "" {
			ns.recipient = "log"
		}
	default:
		return nil, fmt.Errorf("unknown notify transport %q", cfg.Notify.Transport)
	}
	return ns, nil
}

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to YAML config (empty: defaults + env)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using UTC", "tz", cfg.App.Timezone, "err", err)
		loc = time.UTC
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", "err", err)
		return
	}
	defer st.close()

	if seeded, err := catalog.Seed(ctx, st.catalog); err != nil {
		log.Error("catalog seed failed", "err", err)
		return
	} else if seeded {
		log.Info("catalog seeded")
	}

	var reg prometheus.Registerer
	if cfg.Metrics.Enabled {
		reg = prometheus.DefaultRegisterer
	}
	m := metrics.New(reg)

	ns, err := buildTransport(cfg, log)
	if err != nil {
		log.Error("notify transport init failed", "err", err)
		return
	}
	defer ns.close()
	log.Info("notify transport ready", "transport", cfg.Notify.Transport, "recipient", ns.recipient)

	dispatcher := notify.NewDispatcher(ns.transport, ns.recipient, cfg.App.Company, log)
	workflow := ordering.New(st.orders, dispatcher, log, m, cfg.Notify.Timeout)

	router := api.NewRouter(api.Deps{
		Log:       log,
		Catalog:   st.catalog,
		Ledger:    st.ledger,
		Orders:    st.orders,
		Usage:     st.usage,
		Submitter: workflow,
		Carts:     cart.NewStore(cfg.Cart.TTL),
		Gate:      access.NewGate(cfg.Manager.PIN),
		Metrics:   m,
		Location:  loc,
	})

	srv := httpx.New(cfg.HTTP.Addr, router, cfg.Metrics.Enabled, ns.ready...)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			stop()
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.KeepAlive.Enabled {
		base := cfg.KeepAlive.URL
		if base == "" {
			base = "http://localhost" + cfg.HTTP.Addr
		}
		go keepalive.New(base, cfg.KeepAlive.Interval, log).Run(ctx)
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if err := workflow.Wait(shutdownCtx); err != nil {
		log.Warn("pending order emails not finished", "err", err)
	}
	log.Info("graceful shutdown complete")
}
