package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const (
	groupColumns = `id, name, icon, sort_order, is_single_item`
	// ItemColumns — порядок колонок для ScanItem, общий с ledger.
	ItemColumns = `id, name, group_id, sort_order, is_requested, requested_at`
)

func scanGroup(row pgx.Row) (*Group, error) {
	var g Group
	if err := row.Scan(&g.ID, &g.Name, &g.Icon, &g.SortOrder, &g.IsSingleItem); err != nil {
		return nil, err
	}
	return &g, nil
}

// ScanItem читает строку items; pgx.ErrNoRows превращается в (nil, nil).
func ScanItem(row pgx.Row) (*Item, error) {
	var it Item
	if err := row.Scan(&it.ID, &it.Name, &it.GroupID, &it.SortOrder, &it.IsRequested, &it.RequestedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

/* Groups */

func (r *Repo) ListGroups(ctx context.Context) ([]Group, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+groupColumns+`
		FROM item_groups
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return DedupeGroups(out), nil
}

func (r *Repo) GetGroup(ctx context.Context, id string) (*Group, error) {
	g, err := scanGroup(r.pool.QueryRow(ctx, `
		SELECT `+groupColumns+` FROM item_groups WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return g, err
}

func (r *Repo) ListGroupsWithItems(ctx context.Context) ([]GroupWithItems, error) {
	groups, err := r.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	items, err := r.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return Assemble(groups, items), nil
}

func (r *Repo) CreateGroup(ctx context.Context, in NewGroup) (*Group, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	return scanGroup(r.pool.QueryRow(ctx, `
		INSERT INTO item_groups (id, name, icon, sort_order, is_single_item)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+groupColumns,
		uuid.NewString(), in.Name, in.Icon, in.SortOrder, in.IsSingleItem))
}

/* Items */

func (r *Repo) ListItems(ctx context.Context) ([]Item, error) {
	return r.queryItems(ctx, `SELECT `+ItemColumns+` FROM items ORDER BY sort_order`)
}

func (r *Repo) ListItemsByGroup(ctx context.Context, groupID string) ([]Item, error) {
	return r.queryItems(ctx, `
		SELECT `+ItemColumns+`
		FROM items
		WHERE group_id = $1
		ORDER BY sort_order
	`, groupID)
}

func (r *Repo) queryItems(ctx context.Context, q string, args ...any) ([]Item, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		it, err := ScanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *Repo) GetItem(ctx context.Context, id string) (*Item, error) {
	return ScanItem(r.pool.QueryRow(ctx, `SELECT `+ItemColumns+` FROM items WHERE id = $1`, id))
}

// CreateItem проверяет, что группа существует: внешнего ключа в схеме нет.
func (r *Repo) CreateItem(ctx context.Context, in NewItem) (*Item, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	g, err := r.GetGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: group %q not found", ErrInvalid, in.GroupID)
	}
	return ScanItem(r.pool.QueryRow(ctx, `
		INSERT INTO items (id, name, group_id, sort_order)
		VALUES ($1,$2,$3,$4)
		RETURNING `+ItemColumns,
		uuid.NewString(), in.Name, in.GroupID, in.SortOrder))
}
