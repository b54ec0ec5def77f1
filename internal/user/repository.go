package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"metaspace/internal/auth"

	"github.com/jackc/pgx/v5/pgconn"
)

// Repository is the credential and avatar store.
type Repository interface {
	GetCredentials(ctx context.Context, username string) (Credentials, error)
	CreateUser(ctx context.Context, username, passwordHash string, avatarID *int, role auth.Role) error
	TouchLastLogin(ctx context.Context, userID int, at time.Time) error

	SetAvatar(ctx context.Context, userID, avatarID int) error
	AvatarsByUserIDs(ctx context.Context, userIDs []int) ([]UserAvatar, error)
	ListAvatars(ctx context.Context) ([]Avatar, error)
	CreateAvatar(ctx context.Context, name, imageURL string) (int, error)
}

// PostgresRepo implements Repository against the users/avatars tables.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *PostgresRepo) GetCredentials(ctx context.Context, username string) (Credentials, error) {
	const q = `SELECT id, username, password, role FROM users WHERE username = $1`

	var c Credentials
	var role string
	err := r.db.QueryRowContext(ctx, q, username).Scan(&c.ID, &c.Username, &c.PasswordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, err
	}
	c.Role = auth.Role(role)
	return c, nil
}

func (r *PostgresRepo) CreateUser(ctx context.Context, username, passwordHash string, avatarID *int, role auth.Role) error {
	const q = `INSERT INTO users (username, password, avatar_id, role) VALUES ($1, $2, $3, $4::role_enum)`

	_, err := r.db.ExecContext(ctx, q, username, passwordHash, avatarID, string(role))
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	return err
}

func (r *PostgresRepo) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	const q = `UPDATE users SET last_login = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, q, at, userID)
	return err
}

func (r *PostgresRepo) SetAvatar(ctx context.Context, userID, avatarID int) error {
	const q = `UPDATE users SET avatar_id = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, q, avatarID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) AvatarsByUserIDs(ctx context.Context, userIDs []int) ([]UserAvatar, error) {
	const q = `SELECT id, avatar_id FROM users WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, q, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserAvatar, 0, len(userIDs))
	for rows.Next() {
		var ua UserAvatar
		if err := rows.Scan(&ua.UserID, &ua.AvatarID); err != nil {
			return nil, err
		}
		out = append(out, ua)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListAvatars(ctx context.Context) ([]Avatar, error) {
	const q = `SELECT id, name, image_url FROM avatars`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Avatar
	for rows.Next() {
		var a Avatar
		if err := rows.Scan(&a.ID, &a.Name, &a.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateAvatar(ctx context.Context, name, imageURL string) (int, error) {
	const q = `INSERT INTO avatars (name, image_url) VALUES ($1, $2) RETURNING id`

	var id int
	if err := r.db.QueryRowContext(ctx, q, name, imageURL).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
