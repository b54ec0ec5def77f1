package user

import (
	"errors"

	"metaspace/internal/auth"
)

// Credentials is the stored credential record for one user. Read-only from
// the auth flow's perspective except for the last_login touch on sign-in.
type Credentials struct {
	ID           int
	Username     string
	PasswordHash string
	Role         auth.Role
}

type Avatar struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// UserAvatar pairs a user with their selected avatar, for bulk metadata reads.
type UserAvatar struct {
	UserID   int  `json:"user_id"`
	AvatarID *int `json:"avatar_id"`
}

type SignUpRequest struct {
	Username string
	Password string
	AvatarID *int
	Role     auth.Role
}

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidArgument    = errors.New("invalid argument")
)
