package postgres

import (
	"context"
	"database/sql"

	"multaqa/internal/domain"
)

type linkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(db *sql.DB) domain.LinkRepository {
	return &linkRepository{
		DB: db,
	}
}

func (r *linkRepository) Create(ctx context.Context, l *domain.Link) error {
	query := `
		INSERT INTO links (label_ar, label_en, url, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		l.LabelAr, l.LabelEn, l.URL, l.Position, l.CreatedAt,
	).Scan(&l.ID)
}

func (r *linkRepository) List(ctx context.Context) ([]*domain.Link, error) {
	query := `
		SELECT id, label_ar, label_en, url, position, created_at
		FROM links
		ORDER BY position, created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	links := make([]*domain.Link, 0)
	for rows.Next() {
		l := &domain.Link{}
		if err := rows.Scan(&l.ID, &l.LabelAr, &l.LabelEn, &l.URL, &l.Position, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *linkRepository) Update(ctx context.Context, l *domain.Link) error {
	query := `
		UPDATE links
		SET label_ar = $1, label_en = $2, url = $3, position = $4
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, l.LabelAr, l.LabelEn, l.URL, l.Position, l.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *linkRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM links WHERE id = $1`
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
