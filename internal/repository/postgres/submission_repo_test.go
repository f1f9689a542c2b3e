package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"multaqa/internal/domain"

	"github.com/stretchr/testify/require"
)

var submissionCols = []string{"id", "owner_kind", "owner_id", "section", "data", "status", "created_at"}

func TestSubmissionRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	sub := &domain.Submission{
		ID: "sub-uuid-1",
		Owner: domain.OwnerRef{
			Kind:    domain.OwnerEventSection,
			OwnerID: "evt-1",
			Section: domain.SectionRegistration,
		},
		Data:      map[string]domain.FieldValue{"full_name": domain.StringValue("Alia")},
		Status:    domain.StatusPending,
		CreatedAt: created,
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO submissions`).
					WithArgs("sub-uuid-1", domain.OwnerEventSection, "evt-1", domain.SectionRegistration,
						[]byte(`{"full_name":"Alia"}`), domain.StatusPending, created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO submissions`).
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
			repo := NewSubmissionRepository(db)
			err = repo.Create(ctx, sub)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmissionRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success decodes data",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(submissionCols).
					AddRow("sub-1", "event_section", "evt-1", "registration",
						[]byte(`{"full_name":"Alia","attendees":3,"newsletter":true}`), "pending", created)
				mock.ExpectQuery(`SELECT (.+) FROM submissions`).
					WithArgs("sub-1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM submissions`).
					WithArgs("sub-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSubmissionRepository(db)
			sub, err := repo.GetByID(ctx, "sub-1")
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "sub-1", sub.ID)
				require.Equal(t, domain.OwnerEventSection, sub.Owner.Kind)
				require.Equal(t, domain.StringValue("Alia"), sub.Data["full_name"])
				require.Equal(t, domain.NumberValue(3), sub.Data["attendees"])
				require.Equal(t, domain.BoolValue(true), sub.Data["newsletter"])
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmissionRepository_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("no filter lists all ordered by created_at", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(submissionCols).
			AddRow("sub-2", "sector", "sec-1", "", []byte(`{}`), "pending", created.Add(time.Hour)).
			AddRow("sub-1", "sector", "sec-1", "", []byte(`{}`), "approved", created)
		mock.ExpectQuery(`SELECT (.+) FROM submissions(.+)ORDER BY created_at DESC`).
			WillReturnRows(rows)

		repo := NewSubmissionRepository(db)
		subs, err := repo.List(ctx, domain.SubmissionFilter{})
		require.NoError(t, err)
		require.Len(t, subs, 2)
		require.Equal(t, "sub-2", subs[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters become AND conditions in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM submissions(.+)WHERE owner_kind = \$1 AND owner_id = \$2 AND section = \$3 AND status = \$4`).
			WithArgs(domain.OwnerEventSection, "evt-1", domain.SectionRegistration, domain.StatusPending).
			WillReturnRows(sqlmock.NewRows(submissionCols))

		repo := NewSubmissionRepository(db)
		subs, err := repo.List(ctx, domain.SubmissionFilter{
			Kind:    domain.OwnerEventSection,
			OwnerID: "evt-1",
			Section: domain.SectionRegistration,
			Status:  domain.StatusPending,
		})
		require.NoError(t, err)
		require.Empty(t, subs)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE submissions SET status`).
					WithArgs(domain.StatusApproved, "sub-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found zero rows affected",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE submissions SET status`).
					WithArgs(domain.StatusApproved, "sub-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE submissions SET status`).
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
			repo := NewSubmissionRepository(db)
			err = repo.UpdateStatus(ctx, "sub-1", domain.StatusApproved)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
