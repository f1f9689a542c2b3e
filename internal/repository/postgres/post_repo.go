package postgres

import (
	"context"
	"database/sql"
	"errors"

	"multaqa/internal/domain"
)

type postRepository struct {
	DB *sql.DB
}

func NewPostRepository(db *sql.DB) domain.PostRepository {
	return &postRepository{
		DB: db,
	}
}

func (r *postRepository) Create(ctx context.Context, p *domain.Post) error {
	query := `
		INSERT INTO posts (slug, title_ar, title_en, body_ar, body_en, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.Slug, p.TitleAr, p.TitleEn, p.BodyAr, p.BodyEn, p.Status, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `
		SELECT id, slug, title_ar, title_en, body_ar, body_en, status, created_at, updated_at
		FROM posts
		WHERE slug = $1
	`
	p := &domain.Post{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postRepository) List(ctx context.Context, status domain.PublishStatus) ([]*domain.Post, error) {
	query := `
		SELECT id, slug, title_ar, title_en, body_ar, body_en, status, created_at, updated_at
		FROM posts
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := make([]*domain.Post, 0)
	for rows.Next() {
		p := &domain.Post{}
		if err := rows.Scan(&p.ID, &p.Slug, &p.TitleAr, &p.TitleEn, &p.BodyAr, &p.BodyEn, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	query := `
		UPDATE posts
		SET title_ar = $1, title_en = $2, body_ar = $3, body_en = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.TitleAr, p.TitleEn, p.BodyAr, p.BodyEn, p.Status, p.UpdatedAt, p.ID,
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

func (r *postRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`
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
