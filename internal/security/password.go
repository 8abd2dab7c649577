package security

import (
	"errors"

	"github.com/geocoder89/alumnihub/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// Cost matches the salt rounds existing hashes in the users collection were made with.
const Cost = bcrypt.DefaultCost

// MaxPasswordBytes is bcrypt's input limit. It counts bytes, not characters.
const MaxPasswordBytes = 72

var (
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// Hasher turns a plaintext password into its stored form.
type Hasher func(plain string) (string, error)

// HashPassword hashes a plain text password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// helper that compares a bcrypt hash with a plaintext password.

func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// HashIfChanged is the write-path step that runs before a user is persisted.
// prev is the stored record (nil for a new user). When next carries the same
// password field as prev it is returned untouched; otherwise next.Password is
// treated as plaintext and replaced by its hash.
func HashIfChanged(prev *user.User, next user.User, hash Hasher) (user.User, error) {
	if prev != nil && prev.Password == next.Password {
		return next, nil
	}

	if next.Password == "" {
		return next, ErrEmptyPassword
	}

	if len(next.Password) > MaxPasswordBytes {
		return next, ErrPasswordTooLong
	}

	h, err := hash(next.Password)
	if err != nil {
		return next, err
	}

	next.Password = h
	return next, nil
}
