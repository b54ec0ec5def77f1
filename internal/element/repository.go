package element

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateElement(ctx context.Context, e Element) (int, error)
	UpdateElementImage(ctx context.Context, elementID int, imageURL string) error

	CreateTemplate(ctx context.Context, t Template) (int, error)
	ListTemplates(ctx context.Context) ([]Template, error)

	AddSpaceElement(ctx context.Context, se SpaceElement) error
	AddMapElement(ctx context.Context, me MapElement) error
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) CreateElement(ctx context.Context, e Element) (int, error) {
	const q = `
		INSERT INTO elements (image_url, width, height, is_static)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q, e.ImageURL, e.Width, e.Height, e.IsStatic).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) UpdateElementImage(ctx context.Context, elementID int, imageURL string) error {
	const q = `UPDATE elements SET image_url = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, q, imageURL, elementID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) CreateTemplate(ctx context.Context, t Template) (int, error) {
	const q = `
		INSERT INTO element_templates
			(name, type, image_url, model_url, width, height, is_collidable, interaction_data, physics_properties)
		VALUES ($1, $2::element_type_enum, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, q,
		t.Name, string(t.Type), t.ImageURL, t.ModelURL, t.Width, t.Height,
		t.IsCollidable, t.InteractionData, t.PhysicsProperties,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) ListTemplates(ctx context.Context) ([]Template, error) {
	const q = `
		SELECT id, name, type, image_url, model_url, width, height, is_collidable, interaction_data, physics_properties
		FROM element_templates ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		var t Template
		var typ string
		if err := rows.Scan(&t.ID, &t.Name, &typ, &t.ImageURL, &t.ModelURL, &t.Width, &t.Height, &t.IsCollidable, &t.InteractionData, &t.PhysicsProperties); err != nil {
			return nil, err
		}
		t.Type = Type(typ)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) AddSpaceElement(ctx context.Context, se SpaceElement) error {
	const q = `
		INSERT INTO space_elements (space_id, template_id, x, y, z_index, rotation, custom_properties)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, q, se.SpaceID, se.TemplateID, se.X, se.Y, se.ZIndex, se.Rotation, se.CustomProperties)
	return err
}

func (r *PostgresRepo) AddMapElement(ctx context.Context, me MapElement) error {
	const q = `
		INSERT INTO map_elements (map_id, template_id, x, y, z_index, target_space_id, custom_properties)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, q, me.MapID, me.TemplateID, me.X, me.Y, me.ZIndex, me.TargetSpaceID, me.CustomProperties)
	return err
}
