package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"multaqa/internal/domain"
)

type adminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) domain.AdminUserRepository {
	return &adminUserRepository{
		DB: db,
	}
}

func (r *adminUserRepository) Create(ctx context.Context, u *domain.AdminUser, passwordHash, passwordSalt string) error {
	query := `
		INSERT INTO admin_users (email, password_hash, salt, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Email, passwordHash, passwordSalt, u.Name, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, string, string, error) {
	query := `
		SELECT id, email, password_hash, salt, name, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`
	u := &domain.AdminUser{}
	var hash, salt string
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &hash, &salt, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", domain.ErrNotFound
		}
		return nil, "", "", err
	}
	return u, hash, salt, nil
}

func (r *adminUserRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	query := `
		SELECT id, email, name, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`
	u := &domain.AdminUser{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
