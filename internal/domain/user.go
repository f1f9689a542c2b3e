package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for admin account operations.
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminUser is a dashboard administrator.
// swagger:model AdminUser
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAdminUser returns a new AdminUser. ID is set by the repository on create.
func NewAdminUser(email, name string, createdAt time.Time) *AdminUser {
	return &AdminUser{
		Email:     email,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// AdminUserRepository defines the interface for admin account storage.
type AdminUserRepository interface {
	Create(ctx context.Context, user *AdminUser, passwordHash, passwordSalt string) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, string, string, error)
	GetByID(ctx context.Context, id string) (*AdminUser, error)
}

// AuthService defines signup and login for dashboard administrators.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) (*AdminUser, error)
	Login(ctx context.Context, email, password string) (token string, user *AdminUser, err error)
}
