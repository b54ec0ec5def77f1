package maps

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Create(ctx context.Context, m Map) (int, error)
	Get(ctx context.Context, id int) (Map, error)
	List(ctx context.Context) ([]Map, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Create(ctx context.Context, m Map) (int, error) {
	const q = `
		INSERT INTO maps (world_id, name, width, height, background_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q, m.WorldID, m.Name, m.Width, m.Height, m.BackgroundURL).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id int) (Map, error) {
	const q = `SELECT id, world_id, name, width, height, background_url FROM maps WHERE id = $1`

	var m Map
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.WorldID, &m.Name, &m.Width, &m.Height, &m.BackgroundURL)
	if errors.Is(err, sql.ErrNoRows) {
		return Map{}, ErrNotFound
	}
	if err != nil {
		return Map{}, err
	}
	return m, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Map, error) {
	const q = `SELECT id, world_id, name, width, height, background_url FROM maps ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Map
	for rows.Next() {
		var m Map
		if err := rows.Scan(&m.ID, &m.WorldID, &m.Name, &m.Width, &m.Height, &m.BackgroundURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
