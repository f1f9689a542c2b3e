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

var eventCols = []string{
	"id", "slug", "title_ar", "title_en", "description_ar", "description_en",
	"status", "start_date", "end_date", "created_at", "updated_at",
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with nullable dates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(eventCols).
			AddRow("evt-1", "tech-summit", "قمة التقنية", "Tech Summit", "", "",
				"published", start, nil, now, now)
		mock.ExpectQuery(`SELECT (.+) FROM events WHERE id`).
			WithArgs("evt-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		event, err := repo.GetByID(ctx, "evt-1")
		require.NoError(t, err)
		require.Equal(t, "tech-summit", event.Slug)
		require.Equal(t, domain.PublishPublished, event.Status)
		require.NotNil(t, event.StartDate)
		require.Equal(t, start, *event.StartDate)
		require.Nil(t, event.EndDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("partial update sets only provided fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		titleEn := "Renamed Summit"
		status := domain.PublishPublished
		rows := sqlmock.NewRows(eventCols).
			AddRow("evt-1", "tech-summit", "", titleEn, "", "", status, nil, nil, now, now)
		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title_en = \$1, status = \$2 WHERE id = \$3`).
			WithArgs(titleEn, status, "evt-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		event, err := repo.Update(ctx, "evt-1", domain.EventUpdate{TitleEn: &titleEn, Status: &status})
		require.NoError(t, err)
		require.Equal(t, titleEn, event.TitleEn)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update fetches the current row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(eventCols).
			AddRow("evt-1", "tech-summit", "", "Tech Summit", "", "", "draft", nil, nil, now, now)
		mock.ExpectQuery(`SELECT (.+) FROM events WHERE id`).
			WithArgs("evt-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		event, err := repo.Update(ctx, "evt-1", domain.EventUpdate{})
		require.NoError(t, err)
		require.Equal(t, "Tech Summit", event.TitleEn)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Delete(t *testing.T) {
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
				mock.ExpectExec(`DELETE FROM events`).
					WithArgs("evt-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found zero rows affected",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events`).
					WithArgs("evt-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
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
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, "evt-1")
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
