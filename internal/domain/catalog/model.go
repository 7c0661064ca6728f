package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const DefaultIcon = "package"

var ErrInvalid = errors.New("catalog: invalid input")

// Group — категория расходников ("Primer", "DA Paper" ...).
// IsSingleItem: у группы ровно один вариант, тап сразу кладёт его в корзину.
type Group struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	SortOrder    int    `json:"sortOrder"`
	IsSingleItem bool   `json:"isSingleItem"`
}

// Item — конкретный вариант внутри группы.
// IsRequested и RequestedAt меняются только парой (см. ledger).
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	GroupID     string     `json:"groupId"`
	SortOrder   int        `json:"sortOrder"`
	IsRequested bool       `json:"isRequested"`
	RequestedAt *time.Time `json:"requestedAt"`
}

type GroupWithItems struct {
	Group
	Items []Item `json:"items"`
}

type NewGroup struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	SortOrder    int    `json:"sortOrder"`
	IsSingleItem bool   `json:"isSingleItem"`
}

func (g *NewGroup) Normalize() error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	g.Icon = strings.TrimSpace(g.Icon)
	if g.Icon == "" {
		g.Icon = DefaultIcon
	}
	return nil
}

type NewItem struct {
	Name      string `json:"name"`
	GroupID   string `json:"groupId"`
	SortOrder int    `json:"sortOrder"`
}

func (it *NewItem) Normalize() error {
	it.Name = strings.TrimSpace(it.Name)
	it.GroupID = strings.TrimSpace(it.GroupID)
	if it.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if it.GroupID == "" {
		return fmt.Errorf("%w: groupId is required", ErrInvalid)
	}
	return nil
}

// DedupeGroups оставляет первую группу с каждым именем (по trim).
// Дубли появлялись при повторном сидировании старой базы.
func DedupeGroups(groups []Group) []Group {
	seen := make(map[string]struct{}, len(groups))
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		key := strings.TrimSpace(g.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

// Assemble раскладывает товары по группам. Группы — в порядке показа
// (sortOrder, затем имя), товары внутри — по sortOrder.
func Assemble(groups []Group, items []Item) []GroupWithItems {
	byGroup := make(map[string][]Item, len(groups))
	for _, it := range items {
		byGroup[it.GroupID] = append(byGroup[it.GroupID], it)
	}

	out := make([]GroupWithItems, 0, len(groups))
	for _, g := range groups {
		its := byGroup[g.ID]
		if its == nil {
			its = []Item{}
		}
		sort.SliceStable(its, func(i, j int) bool { return its[i].SortOrder < its[j].SortOrder })
		out = append(out, GroupWithItems{Group: g, Items: its})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}
