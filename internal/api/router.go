// Package api — JSON HTTP API киоска и менеджерского экрана.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Spok95/supplyhub/internal/cart"
	"github.com/Spok95/supplyhub/internal/domain/catalog"
	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/domain/usage"
	"github.com/Spok95/supplyhub/internal/infra/metrics"
	"github.com/Spok95/supplyhub/internal/ordering"
)

type CatalogStore interface {
	ListGroupsWithItems(ctx context.Context) ([]catalog.GroupWithItems, error)
	GetGroup(ctx context.Context, id string) (*catalog.Group, error)
	CreateGroup(ctx context.Context, in catalog.NewGroup) (*catalog.Group, error)
	ListItems(ctx context.Context) ([]catalog.Item, error)
	ListItemsByGroup(ctx context.Context, groupID string) ([]catalog.Item, error)
	GetItem(ctx context.Context, id string) (*catalog.Item, error)
	CreateItem(ctx context.Context, in catalog.NewItem) (*catalog.Item, error)
}

type Ledger interface {
	RequestRestock(ctx context.Context, itemID string) (*catalog.Item, error)
	ClearRequest(ctx context.Context, itemID string) (*catalog.Item, error)
	ClearAll(ctx context.Context) (int64, error)
	ListRequested(ctx context.Context) ([]catalog.Item, error)
}

type OrderLog interface {
	List(ctx context.Context) ([]orders.Order, error)
	Clear(ctx context.Context) error
}

type UsageLog interface {
	Record(ctx context.Context, in usage.NewLog) (*usage.Log, error)
	List(ctx context.Context) ([]usage.Log, error)
}

type Submitter interface {
	Submit(ctx context.Context, lines []orders.Line) (ordering.Result, error)
}

type PinValidator interface {
	Validate(pin string) bool
}

type Deps struct {
	Log       *slog.Logger
	Catalog   CatalogStore
	Ledger    Ledger
	Orders    OrderLog
	Usage     UsageLog
	Submitter Submitter
	Carts     *cart.Store
	Gate      PinValidator
	Metrics   *metrics.Metrics
	Location  *time.Location
}

type Handler struct {
	log       *slog.Logger
	catalog   CatalogStore
	ledger    Ledger
	orders    OrderLog
	usage     UsageLog
	submitter Submitter
	carts     *cart.Store
	gate      PinValidator
	metrics   *metrics.Metrics
	loc       *time.Location
	now       func() time.Time
}

func NewRouter(d Deps) http.Handler {
	h := &Handler{
		log: d.Log, catalog: d.Catalog, ledger: d.Ledger,
		orders: d.Orders, usage: d.Usage, submitter: d.Submitter,
		carts: d.Carts, gate: d.Gate, metrics: d.Metrics,
		loc: d.Location, now: time.Now,
	}
	if h.loc == nil {
		h.loc = time.UTC
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(d.Log))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Get("/groups", h.listGroups)
		r.Post("/groups", h.createGroup)
		r.Get("/groups/{groupId}/items", h.listGroupItems)

		r.Get("/items", h.listItems)
		r.Post("/items", h.createItem)
		r.Get("/items/requested", h.listRequested)
		r.Post("/items/clear-all", h.clearAll)
		r.Post("/items/{id}/request", h.requestRestock)
		r.Post("/items/{id}/clear", h.clearRequest)

		r.Post("/orders/submit", h.submitOrder)
		r.Get("/orders", h.listOrders)
		r.Get("/orders/export.xlsx", h.exportOrders)
		r.Get("/admin/reset-now", h.resetOrders)

		r.Post("/auth/validate-pin", h.validatePIN)

		r.Post("/usage/record", h.recordUsage)
		r.Get("/usage", h.listUsage)

		r.Get("/cart", h.getCart)
		r.Delete("/cart", h.clearCart)
		r.Post("/cart/items", h.addToCart)
		r.Delete("/cart/items/{itemId}", h.removeFromCart)
		r.Post("/cart/submit", h.submitCart)
	})
	return r
}

// health — тот же ответ, что и корневой /health; его дёргает keep-alive.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// accessLog пишет одну slog-запись на запрос.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
