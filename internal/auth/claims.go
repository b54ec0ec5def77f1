package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the coarse permission tag carried in token claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a recognized role. An unrecognized role in a
// token is a verification failure, never a silent downgrade to "user".
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Claims are the only supported JWT claims shape for this service.
// Subject is the numeric user id serialized as text; Role is optional and,
// when absent, grants no elevated privilege.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role,omitempty"`
}

// Identity is the verified caller identity handed to downstream handlers.
// It is derived from Claims exactly once, in the authentication middleware.
type Identity struct {
	UserID int
	Role   Role
}

// Identity converts verified claims into the downstream identity,
// parsing the numeric subject.
func (c Claims) Identity() (Identity, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: id, Role: c.Role}, nil
}

func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }
