package space

import (
	"context"
	"database/sql"
	"errors"

	"metaspace/pkg/utils"
)

type Repository interface {
	Create(ctx context.Context, s Space) (int, error)
	Get(ctx context.Context, id int) (Space, error)
	List(ctx context.Context) ([]Space, error)
	Delete(ctx context.Context, id int) error
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Create(ctx context.Context, s Space) (int, error) {
	const q = `
		INSERT INTO spaces (map_id, name, width, height, created_by, max_occupancy)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	occupancy := s.MaxOccupancy
	if occupancy <= 0 {
		occupancy = DefaultMaxOccupancy
	}

	var id int
	err := r.db.QueryRowContext(ctx, q, s.MapID, s.Name, s.Width, s.Height, s.CreatedBy, occupancy).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id int) (Space, error) {
	const q = `
		SELECT id, map_id, name, width, height, created_by, max_occupancy
		FROM spaces WHERE id = $1`

	var s Space
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.MapID, &s.Name, &s.Width, &s.Height, &s.CreatedBy, &s.MaxOccupancy)
	if errors.Is(err, sql.ErrNoRows) {
		return Space{}, ErrNotFound
	}
	if err != nil {
		return Space{}, err
	}
	return s, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Space, error) {
	const q = `
		SELECT id, map_id, name, width, height, created_by, max_occupancy
		FROM spaces ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Space
	for rows.Next() {
		var s Space
		if err := rows.Scan(&s.ID, &s.MapID, &s.Name, &s.Width, &s.Height, &s.CreatedBy, &s.MaxOccupancy); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a space and its placed elements atomically.
func (r *PostgresRepo) Delete(ctx context.Context, id int) error {
	return utils.WithTx(ctx, r.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM space_elements WHERE space_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM spaces WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
