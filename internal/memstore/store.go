// Package memstore — хранилище в памяти с тем же поведением, что и
// pgx-репозитории. Используется в тестах и при storage.driver=memory
// (локальный запуск киоска без Postgres). Данные живут до перезапуска.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/supplyhub/internal/domain/catalog"
	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/domain/usage"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	groups []catalog.Group
	items  []catalog.Item
	orders []orders.Order
	usage  []usage.Log
}

type Option func(*Store)

// WithClock подменяет часы (тестам нужно детерминированное время).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Catalog() *Catalog { return &Catalog{s: s} }
func (s *Store) Ledger() *Ledger   { return &Ledger{s: s} }
func (s *Store) Orders() *Orders   { return &Orders{s: s} }
func (s *Store) Usage() *Usage     { return &Usage{s: s} }

func (s *Store) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) group(id string) *catalog.Group {
	for i := range s.groups {
		if s.groups[i].ID == id {
			g := s.groups[i]
			return &g
		}
	}
	return nil
}

/* Catalog */

type Catalog struct{ s *Store }

func (c *Catalog) ListGroups(_ context.Context) ([]catalog.Group, error) {
	c.s.mu.RLock()
	out := append([]catalog.Group(nil), c.s.groups...)
	c.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return catalog.DedupeGroups(out), nil
}

func (c *Catalog) GetGroup(_ context.Context, id string) (*catalog.Group, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return c.s.group(id), nil
}

func (c *Catalog) ListGroupsWithItems(ctx context.Context) ([]catalog.GroupWithItems, error) {
	groups, err := c.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	items, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Assemble(groups, items), nil
}

func (c *Catalog) CreateGroup(_ context.Context, in catalog.NewGroup) (*catalog.Group, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	g := catalog.Group{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Icon:         in.Icon,
		SortOrder:    in.SortOrder,
		IsSingleItem: in.IsSingleItem,
	}
	c.s.mu.Lock()
	c.s.groups = append(c.s.groups, g)
	c.s.mu.Unlock()
	return &g, nil
}

func (c *Catalog) ListItems(_ context.Context) ([]catalog.Item, error) {
	c.s.mu.RLock()
	out := append([]catalog.Item{}, c.s.items...)
	c.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (c *Catalog) ListItemsByGroup(ctx context.Context, groupID string) ([]catalog.Item, error) {
	all, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := []catalog.Item{}
	for _, it := range all {
		if it.GroupID == groupID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *Catalog) GetItem(_ context.Context, id string) (*catalog.Item, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	i := c.s.itemIndex(id)
	if i < 0 {
		return nil, nil
	}
	it := c.s.items[i]
	return &it, nil
}

func (c *Catalog) CreateItem(_ context.Context, in catalog.NewItem) (*catalog.Item, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.group(in.GroupID) == nil {
		return nil, fmt.Errorf("%w: group %q not found", catalog.ErrInvalid, in.GroupID)
	}
	it := catalog.Item{ID: uuid.NewString(), Name: in.Name, GroupID: in.GroupID, SortOrder: in.SortOrder}
	c.s.items = append(c.s.items, it)
	return &it, nil
}

/* Ledger */

type Ledger struct{ s *Store }

func (l *Ledger) RequestRestock(_ context.Context, itemID string) (*catalog.Item, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	i := l.s.itemIndex(itemID)
	if i < 0 {
		return nil, nil
	}
	at := l.s.now()
	l.s.items[i].IsRequested = true
	l.s.items[i].RequestedAt = &at
	it := l.s.items[i]
	return &it, nil
}

func (l *Ledger) ClearRequest(_ context.Context, itemID string) (*catalog.Item, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	i := l.s.itemIndex(itemID)
	if i < 0 {
		return nil, nil
	}
	l.s.items[i].IsRequested = false
	l.s.items[i].RequestedAt = nil
	it := l.s.items[i]
	return &it, nil
}

func (l *Ledger) ClearAll(_ context.Context) (int64, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	var n int64
	for i := range l.s.items {
		if l.s.items[i].IsRequested {
			l.s.items[i].IsRequested = false
			l.s.items[i].RequestedAt = nil
			n++
		}
	}
	return n, nil
}

func (l *Ledger) ListRequested(_ context.Context) ([]catalog.Item, error) {
	l.s.mu.RLock()
	out := []catalog.Item{}
	for _, it := range l.s.items {
		if it.IsRequested {
			out = append(out, it)
		}
	}
	l.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].RequestedAt.After(*out[j].RequestedAt) })
	return out, nil
}

/* Orders */

type Orders struct{ s *Store }

func (o *Orders) Create(_ context.Context, lines []orders.Line) (*orders.Order, error) {
	items, err := orders.EncodeLines(lines)
	if err != nil {
		return nil, err
	}
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	ord := orders.Order{
		ID:        uuid.NewString(),
		Items:     items,
		Status:    orders.StatusPending,
		CreatedAt: o.s.now(),
	}
	o.s.orders = append(o.s.orders, ord)
	return &ord, nil
}

// List — свежие сверху; при равном времени позже добавленный идёт первым.
func (o *Orders) List(_ context.Context) ([]orders.Order, error) {
	o.s.mu.RLock()
	out := make([]orders.Order, 0, len(o.s.orders))
	for i := len(o.s.orders) - 1; i >= 0; i-- {
		out = append(out, o.s.orders[i])
	}
	o.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (o *Orders) Count(_ context.Context) (int, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()
	return len(o.s.orders), nil
}

func (o *Orders) Clear(_ context.Context) error {
	o.s.mu.Lock()
	o.s.orders = nil
	o.s.mu.Unlock()
	return nil
}

/* Usage */

type Usage struct{ s *Store }

func (u *Usage) Record(_ context.Context, in usage.NewLog) (*usage.Log, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	l := in.Build(uuid.NewString(), u.s.now())
	u.s.usage = append(u.s.usage, l)
	return &l, nil
}

func (u *Usage) List(_ context.Context) ([]usage.Log, error) {
	u.s.mu.RLock()
	out := make([]usage.Log, 0, len(u.s.usage))
	for i := len(u.s.usage) - 1; i >= 0; i-- {
		out = append(out, u.s.usage[i])
	}
	u.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
