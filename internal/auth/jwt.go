package auth

import (
	"errors"
	"strconv"
	"time"

	"metaspace/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies bearer tokens. The secret comes from config at
// construction time and is immutable afterwards; it is safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg config.AuthConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("SECRET_KEY_JWT is required")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs an HS256 token for userID with the given role.
// The subject is always the numeric user id serialized as text.
func (m *Manager) Issue(now time.Time, userID int, role Role) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature, algorithm and expiry, then validates the claims
// shape. All failure modes (malformed, tampered, expired, wrong algorithm,
// bad claims) collapse into a single error; callers map it to one rejection.
func (m *Manager) Verify(tokenString string, now time.Time) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	if claims.Subject == "" {
		return Claims{}, errors.New("subject missing")
	}
	if claims.Role != "" && !claims.Role.Valid() {
		return Claims{}, errors.New("unrecognized role")
	}

	return claims, nil
}
