// Package cart — корзина техника на время одной сессии киоска.
// В базу корзина не пишется: перезагрузка страницы или истёкшая сессия её теряют.
package cart

import (
	"time"

	"github.com/Spok95/supplyhub/internal/domain/catalog"
	"github.com/Spok95/supplyhub/internal/domain/orders"
)

type Item struct {
	ItemID    string    `json:"itemId"`
	ItemName  string    `json:"itemName"`
	GroupID   string    `json:"groupId"`
	GroupName string    `json:"groupName"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart не потокобезопасна: её меняет Store под своим мьютексом.
// Инвариант: не больше одной позиции на itemId.
type Cart struct {
	items []Item
	now   func() time.Time
}

func New() *Cart { return &Cart{now: time.Now} }

// Add кладёт товар в корзину. Повторное добавление — no-op (вернёт false).
func (c *Cart) Add(item catalog.Item, group catalog.Group) bool {
	if c.Contains(item.ID) {
		return false
	}
	c.items = append(c.items, Item{
		ItemID:    item.ID,
		ItemName:  item.Name,
		GroupID:   group.ID,
		GroupName: group.Name,
		AddedAt:   c.now(),
	})
	return true
}

func (c *Cart) Remove(itemID string) bool {
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Contains(itemID string) bool {
	for _, it := range c.items {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

func (c *Cart) Count() int { return len(c.items) }

// Items возвращает копию, наружу внутренний слайс не отдаём.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lines — позиции в формате заказа, в порядке добавления.
func (c *Cart) Lines() []orders.Line {
	out := make([]orders.Line, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, orders.Line{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			GroupID:   it.GroupID,
			GroupName: it.GroupName,
		})
	}
	return out
}
