package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"multaqa/internal/domain"
)

type sectionRepository struct {
	DB *sql.DB
}

func NewSectionRepository(db *sql.DB) domain.SectionRepository {
	return &sectionRepository{
		DB: db,
	}
}

func (r *sectionRepository) Get(ctx context.Context, eventID string, section domain.SectionSlug) (*domain.SectionConfig, error) {
	query := `
		SELECT event_id, section, enabled, title_ar, title_en, fields, updated_at
		FROM event_sections
		WHERE event_id = $1 AND section = $2
	`
	cfg := &domain.SectionConfig{}
	var fieldsJSON []byte
	err := r.DB.QueryRowContext(ctx, query, eventID, section).Scan(
		&cfg.EventID, &cfg.Section, &cfg.Enabled, &cfg.TitleAr, &cfg.TitleEn, &fieldsJSON, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &cfg.Fields); err != nil {
		return nil, fmt.Errorf("decode section fields: %w", err)
	}
	return cfg, nil
}

func (r *sectionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.SectionConfig, error) {
	query := `
		SELECT event_id, section, enabled, title_ar, title_en, fields, updated_at
		FROM event_sections
		WHERE event_id = $1
		ORDER BY section
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sections := make([]*domain.SectionConfig, 0)
	for rows.Next() {
		cfg := &domain.SectionConfig{}
		var fieldsJSON []byte
		if err := rows.Scan(&cfg.EventID, &cfg.Section, &cfg.Enabled, &cfg.TitleAr, &cfg.TitleEn, &fieldsJSON, &cfg.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fieldsJSON, &cfg.Fields); err != nil {
			return nil, fmt.Errorf("decode section fields: %w", err)
		}
		sections = append(sections, cfg)
	}
	return sections, rows.Err()
}

func (r *sectionRepository) Upsert(ctx context.Context, cfg *domain.SectionConfig) error {
	fieldsJSON, err := json.Marshal(cfg.Fields)
	if err != nil {
		return fmt.Errorf("encode section fields: %w", err)
	}
	query := `
		INSERT INTO event_sections (event_id, section, enabled, title_ar, title_en, fields, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id, section) DO UPDATE
		SET enabled = EXCLUDED.enabled,
		    title_ar = EXCLUDED.title_ar,
		    title_en = EXCLUDED.title_en,
		    fields = EXCLUDED.fields,
		    updated_at = EXCLUDED.updated_at
	`
	_, err = r.DB.ExecContext(ctx, query,
		cfg.EventID, cfg.Section, cfg.Enabled, cfg.TitleAr, cfg.TitleEn, fieldsJSON, cfg.UpdatedAt,
	)
	return err
}
