package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"multaqa/internal/domain"
)

type submissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) domain.SubmissionRepository {
	return &submissionRepository{
		DB: db,
	}
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	dataJSON, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encode submission data: %w", err)
	}
	query := `
		INSERT INTO submissions (id, owner_kind, owner_id, section, data, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.DB.ExecContext(ctx, query,
		s.ID, s.Owner.Kind, s.Owner.OwnerID, s.Owner.Section, dataJSON, s.Status, s.CreatedAt,
	)
	return err
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `
		SELECT id, owner_kind, owner_id, section, data, status, created_at
		FROM submissions
		WHERE id = $1
	`
	s := &domain.Submission{}
	var dataJSON []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Owner.Kind, &s.Owner.OwnerID, &s.Owner.Section, &dataJSON, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(dataJSON, &s.Data); err != nil {
		return nil, fmt.Errorf("decode submission data: %w", err)
	}
	return s, nil
}

func (r *submissionRepository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	where := []string{}
	args := []any{}
	n := 1
	add := func(column string, value any) {
		where = append(where, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if filter.Kind != "" {
		add("owner_kind", filter.Kind)
	}
	if filter.OwnerID != "" {
		add("owner_id", filter.OwnerID)
	}
	if filter.Section != "" {
		add("section", filter.Section)
	}
	if filter.Status != "" {
		add("status", filter.Status)
	}
	query := `
		SELECT id, owner_kind, owner_id, section, data, status, created_at
		FROM submissions
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		s := &domain.Submission{}
		var dataJSON []byte
		if err := rows.Scan(&s.ID, &s.Owner.Kind, &s.Owner.OwnerID, &s.Owner.Section, &dataJSON, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(dataJSON, &s.Data); err != nil {
			return nil, fmt.Errorf("decode submission data: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	query := `UPDATE submissions SET status = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
