package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const orderColumns = `id, items, status, created_at, sent_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	if err := row.Scan(&o.ID, &o.Items, &o.Status, &o.CreatedAt, &o.SentAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create пишет новый заказ. Журнал только дописывается: обновлений нет.
func (r *Repo) Create(ctx context.Context, lines []Line) (*Order, error) {
	items, err := EncodeLines(lines)
	if err != nil {
		return nil, err
	}
	return scanOrder(r.pool.QueryRow(ctx, `
		INSERT INTO orders (id, items, status)
		VALUES ($1,$2,$3)
		RETURNING `+orderColumns,
		uuid.NewString(), items, StatusPending))
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Count — сколько заказов всего. Используется только как "номер" для экрана.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

// Clear обнуляет журнал (админский сброс нумерации).
func (r *Repo) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}
