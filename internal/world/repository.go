package world

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, w World) (int, error)
	List(ctx context.Context) ([]World, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Create(ctx context.Context, w World) (int, error) {
	const q = `
		INSERT INTO worlds (name, description, thumbnail_url, creator_id, is_public)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q, w.Name, w.Description, w.ThumbnailURL, w.CreatorID, w.IsPublic).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]World, error) {
	const q = `SELECT id, name, description, thumbnail_url, creator_id, is_public FROM worlds ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []World
	for rows.Next() {
		var w World
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.ThumbnailURL, &w.CreatorID, &w.IsPublic); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
