package usage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Record(ctx context.Context, in NewLog) (*Log, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO usage_logs (id, item_name, item_id, quantity)
		VALUES ($1,$2,$3,$4)
		RETURNING id, item_name, item_id, quantity, "timestamp"
	`, uuid.NewString(), in.ItemName, in.itemIDPtr(), in.Quantity)

	var l Log
	if err := row.Scan(&l.ID, &l.ItemName, &l.ItemID, &l.Quantity, &l.Timestamp); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repo) List(ctx context.Context) ([]Log, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, item_name, item_id, quantity, "timestamp"
		FROM usage_logs
		ORDER BY "timestamp" DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Log{}
	for rows.Next() {
		var l Log
		if err := rows.Scan(&l.ID, &l.ItemName, &l.ItemID, &l.Quantity, &l.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
