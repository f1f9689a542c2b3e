package postgres

import (
	"context"
	"database/sql"
	"errors"

	"multaqa/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

const sessionColumns = "id, event_id, date, start_time, end_time, title_ar, title_en, speaker_ar, speaker_en, location_ar, location_en, category, description_ar, description_en, created_at, updated_at"

func scanSession(row interface{ Scan(dest ...any) error }) (*domain.SessionItem, error) {
	s := &domain.SessionItem{}
	err := row.Scan(
		&s.ID, &s.EventID, &s.Date, &s.StartTime, &s.EndTime,
		&s.TitleAr, &s.TitleEn, &s.SpeakerAr, &s.SpeakerEn,
		&s.LocationAr, &s.LocationEn, &s.Category,
		&s.DescriptionAr, &s.DescriptionEn, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.SessionItem) error {
	query := `
		INSERT INTO sessions (event_id, date, start_time, end_time, title_ar, title_en, speaker_ar, speaker_en, location_ar, location_en, category, description_ar, description_en, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.EventID, s.Date, s.StartTime, s.EndTime,
		s.TitleAr, s.TitleEn, s.SpeakerAr, s.SpeakerEn,
		s.LocationAr, s.LocationEn, s.Category,
		s.DescriptionAr, s.DescriptionEn, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.SessionItem, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.SessionItem, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE event_id = $1 ORDER BY date, start_time`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.SessionItem, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.SessionItem) error {
	query := `
		UPDATE sessions
		SET date = $1, start_time = $2, end_time = $3, title_ar = $4, title_en = $5, speaker_ar = $6, speaker_en = $7, location_ar = $8, location_en = $9, category = $10, description_ar = $11, description_en = $12, updated_at = $13
		WHERE id = $14
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Date, s.StartTime, s.EndTime,
		s.TitleAr, s.TitleEn, s.SpeakerAr, s.SpeakerEn,
		s.LocationAr, s.LocationEn, s.Category,
		s.DescriptionAr, s.DescriptionEn, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
