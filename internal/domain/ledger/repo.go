// Package ledger — флажки "нужно докупить" на товарах каталога.
// Это простой тумблер: is_requested + requested_at, без промежуточных статусов.
package ledger

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/supplyhub/internal/domain/catalog"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// RequestRestock ставит флаг и время запроса. (nil, nil) — товара нет.
func (r *Repo) RequestRestock(ctx context.Context, itemID string) (*catalog.Item, error) {
	return catalog.ScanItem(r.pool.QueryRow(ctx, `
		UPDATE items SET is_requested = TRUE, requested_at = now()
		WHERE id = $1
		RETURNING `+catalog.ItemColumns,
		itemID))
}

// ClearRequest снимает флаг (товар заказан). (nil, nil) — товара нет.
func (r *Repo) ClearRequest(ctx context.Context, itemID string) (*catalog.Item, error) {
	return catalog.ScanItem(r.pool.QueryRow(ctx, `
		UPDATE items SET is_requested = FALSE, requested_at = NULL
		WHERE id = $1
		RETURNING `+catalog.ItemColumns,
		itemID))
}

// ClearAll снимает все флаги, возвращает сколько товаров было помечено.
func (r *Repo) ClearAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE items SET is_requested = FALSE, requested_at = NULL
		WHERE is_requested = TRUE
	`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListRequested — помеченные товары, свежие запросы сверху.
func (r *Repo) ListRequested(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+catalog.ItemColumns+`
		FROM items
		WHERE is_requested = TRUE
		ORDER BY requested_at DESC, sort_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalog.Item{}
	for rows.Next() {
		it, err := catalog.ScanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}
