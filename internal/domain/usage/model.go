package usage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalid = errors.New("usage: invalid input")

// Log — техник взял товар с полки (режим "Take item").
// ItemID опционален: товар могли удалить из каталога.
type Log struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"itemName"`
	ItemID    *string   `json:"itemId"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

type NewLog struct {
	ItemName string `json:"itemName"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Normalize: пустое количество = 1, отрицательное — ошибка.
func (n *NewLog) Normalize() error {
	n.ItemName = strings.TrimSpace(n.ItemName)
	n.ItemID = strings.TrimSpace(n.ItemID)
	if n.ItemName == "" {
		return fmt.Errorf("%w: itemName is required", ErrInvalid)
	}
	if n.Quantity == 0 {
		n.Quantity = 1
	}
	if n.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be > 0", ErrInvalid)
	}
	return nil
}

func (n NewLog) itemIDPtr() *string {
	if n.ItemID == "" {
		return nil
	}
	id := n.ItemID
	return &id
}

// Build собирает запись с уже выданными id и временем (для memstore).
func (n NewLog) Build(id string, at time.Time) Log {
	return Log{ID: id, ItemName: n.ItemName, ItemID: n.itemIDPtr(), Quantity: n.Quantity, Timestamp: at}
}
