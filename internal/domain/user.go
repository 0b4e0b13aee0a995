package domain

import (
	"context"
	"time"
)

// RoleAdmin is the single privileged role. Only callers resolved to this
// role may mutate events and residents or read dashboard statistics.
const RoleAdmin = "ADMIN"

// User represents an account that can sign in to the admin area.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller's identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines the business logic for admin sign-in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	// GetUser re-resolves a token-derived identity to the stored user,
	// so a deleted account stops resolving even while its token is valid.
	GetUser(ctx context.Context, id string) (*User, error)
}
