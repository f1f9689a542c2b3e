package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"multaqa/internal/domain"
)

type opportunityRepository struct {
	DB *sql.DB
}

func NewOpportunityRepository(db *sql.DB) domain.OpportunityRepository {
	return &opportunityRepository{
		DB: db,
	}
}

func (r *opportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	fieldsJSON, err := json.Marshal(o.Fields)
	if err != nil {
		return fmt.Errorf("encode opportunity fields: %w", err)
	}
	query := `
		INSERT INTO opportunities (title_ar, title_en, description_ar, description_en, open, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		o.TitleAr, o.TitleEn, o.DescriptionAr, o.DescriptionEn, o.Open, fieldsJSON, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
}

func (r *opportunityRepository) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, open, fields, created_at, updated_at
		FROM opportunities
		WHERE id = $1
	`
	o := &domain.Opportunity{}
	var fieldsJSON []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.TitleAr, &o.TitleEn, &o.DescriptionAr, &o.DescriptionEn, &o.Open, &fieldsJSON, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &o.Fields); err != nil {
		return nil, fmt.Errorf("decode opportunity fields: %w", err)
	}
	return o, nil
}

func (r *opportunityRepository) List(ctx context.Context) ([]*domain.Opportunity, error) {
	query := `
		SELECT id, title_ar, title_en, description_ar, description_en, open, fields, created_at, updated_at
		FROM opportunities
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	opportunities := make([]*domain.Opportunity, 0)
	for rows.Next() {
		o := &domain.Opportunity{}
		var fieldsJSON []byte
		if err := rows.Scan(&o.ID, &o.TitleAr, &o.TitleEn, &o.DescriptionAr, &o.DescriptionEn, &o.Open, &fieldsJSON, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fieldsJSON, &o.Fields); err != nil {
			return nil, fmt.Errorf("decode opportunity fields: %w", err)
		}
		opportunities = append(opportunities, o)
	}
	return opportunities, rows.Err()
}

func (r *opportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	fieldsJSON, err := json.Marshal(o.Fields)
	if err != nil {
		return fmt.Errorf("encode opportunity fields: %w", err)
	}
	query := `
		UPDATE opportunities
		SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4, open = $5, fields = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query,
		o.TitleAr, o.TitleEn, o.DescriptionAr, o.DescriptionEn, o.Open, fieldsJSON, o.UpdatedAt, o.ID,
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

func (r *opportunityRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM opportunities WHERE id = $1`
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
