package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades sign-in latency for brute-force resistance. Hashing runs
// inline on the request goroutine; sign-in/sign-up are low-frequency, so the
// cost stays at the library default.
const bcryptCost = bcrypt.DefaultCost

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword produces a salted bcrypt hash of the plaintext.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// CheckPassword reports whether plaintext matches the stored hash.
// A malformed stored hash is treated as "does not match" rather than an
// error; stored-record corruption must never become an auth bypass.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
