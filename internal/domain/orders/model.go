package orders

import (
	"encoding/json"
	"time"
)

const StatusPending = "pending"

// Line — позиция заказа. Имена копируются в момент отправки, чтобы старые
// заказы читались, даже если каталог потом поменяли.
type Line struct {
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
}

// Order — запись журнала заказов. Items хранится как JSON-строка (так же
// отдаётся в API); разобрать её можно через Lines.
type Order struct {
	ID        string     `json:"id"`
	Items     string     `json:"items"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt"`
}

func (o Order) Lines() ([]Line, error) {
	var out []Line
	if err := json.Unmarshal([]byte(o.Items), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeLines — снимок позиций для колонки orders.items.
func EncodeLines(lines []Line) (string, error) {
	raw, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
