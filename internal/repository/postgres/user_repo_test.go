package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"multaqa/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAdminUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	user := &domain.AdminUser{
		Email:     "admin@example.com",
		Name:      "Admin",
		CreatedAt: now,
		UpdatedAt: now,
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success assigns id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO admin_users`).
					WithArgs("admin@example.com", "hash", "salt", "Admin", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO admin_users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO admin_users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAdminUserRepository(db)
			err = repo.Create(ctx, user, "hash", "salt")
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "user-uuid-1", user.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("success returns credentials", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "salt", "name", "created_at", "updated_at"}).
			AddRow("user-1", "admin@example.com", "hash", "salt", "Admin", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM admin_users`).
			WithArgs("admin@example.com").
			WillReturnRows(rows)

		repo := NewAdminUserRepository(db)
		user, hash, salt, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-1", user.ID)
		require.Equal(t, "hash", hash)
		require.Equal(t, "salt", salt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM admin_users`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewAdminUserRepository(db)
		_, _, _, err = repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
