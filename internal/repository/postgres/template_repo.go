package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"multaqa/internal/domain"
)

type sectionTemplateRepository struct {
	DB *sql.DB
}

func NewSectionTemplateRepository(db *sql.DB) domain.SectionTemplateRepository {
	return &sectionTemplateRepository{
		DB: db,
	}
}

func (r *sectionTemplateRepository) Get(ctx context.Context, section domain.SectionSlug) (*domain.SectionTemplate, error) {
	query := `
		SELECT section, fields, updated_at
		FROM section_templates
		WHERE section = $1
	`
	tpl := &domain.SectionTemplate{}
	var fieldsJSON []byte
	err := r.DB.QueryRowContext(ctx, query, section).Scan(&tpl.Section, &fieldsJSON, &tpl.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &tpl.Fields); err != nil {
		return nil, fmt.Errorf("decode template fields: %w", err)
	}
	return tpl, nil
}

func (r *sectionTemplateRepository) List(ctx context.Context) ([]*domain.SectionTemplate, error) {
	query := `
		SELECT section, fields, updated_at
		FROM section_templates
		ORDER BY section
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	templates := make([]*domain.SectionTemplate, 0)
	for rows.Next() {
		tpl := &domain.SectionTemplate{}
		var fieldsJSON []byte
		if err := rows.Scan(&tpl.Section, &fieldsJSON, &tpl.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fieldsJSON, &tpl.Fields); err != nil {
			return nil, fmt.Errorf("decode template fields: %w", err)
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

func (r *sectionTemplateRepository) Upsert(ctx context.Context, tpl *domain.SectionTemplate) error {
	fieldsJSON, err := json.Marshal(tpl.Fields)
	if err != nil {
		return fmt.Errorf("encode template fields: %w", err)
	}
	query := `
		INSERT INTO section_templates (section, fields, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (section) DO UPDATE
		SET fields = EXCLUDED.fields,
		    updated_at = EXCLUDED.updated_at
	`
	_, err = r.DB.ExecContext(ctx, query, tpl.Section, fieldsJSON, tpl.UpdatedAt)
	return err
}
