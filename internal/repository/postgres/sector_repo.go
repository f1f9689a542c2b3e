package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"multaqa/internal/domain"
)

type sectorRepository struct {
	DB *sql.DB
}

func NewSectorRepository(db *sql.DB) domain.SectorRepository {
	return &sectorRepository{
		DB: db,
	}
}

func (r *sectorRepository) Create(ctx context.Context, s *domain.Sector) error {
	fieldsJSON, err := json.Marshal(s.Fields)
	if err != nil {
		return fmt.Errorf("encode sector fields: %w", err)
	}
	query := `
		INSERT INTO sectors (name_ar, name_en, description_ar, description_en, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.NameAr, s.NameEn, s.DescriptionAr, s.DescriptionEn, fieldsJSON, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sectorRepository) GetByID(ctx context.Context, id string) (*domain.Sector, error) {
	query := `
		SELECT id, name_ar, name_en, description_ar, description_en, fields, created_at, updated_at
		FROM sectors
		WHERE id = $1
	`
	s := &domain.Sector{}
	var fieldsJSON []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.NameAr, &s.NameEn, &s.DescriptionAr, &s.DescriptionEn, &fieldsJSON, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &s.Fields); err != nil {
		return nil, fmt.Errorf("decode sector fields: %w", err)
	}
	return s, nil
}

func (r *sectorRepository) List(ctx context.Context) ([]*domain.Sector, error) {
	query := `
		SELECT id, name_ar, name_en, description_ar, description_en, fields, created_at, updated_at
		FROM sectors
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sectors := make([]*domain.Sector, 0)
	for rows.Next() {
		s := &domain.Sector{}
		var fieldsJSON []byte
		if err := rows.Scan(&s.ID, &s.NameAr, &s.NameEn, &s.DescriptionAr, &s.DescriptionEn, &fieldsJSON, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fieldsJSON, &s.Fields); err != nil {
			return nil, fmt.Errorf("decode sector fields: %w", err)
		}
		sectors = append(sectors, s)
	}
	return sectors, rows.Err()
}

func (r *sectorRepository) Update(ctx context.Context, s *domain.Sector) error {
	fieldsJSON, err := json.Marshal(s.Fields)
	if err != nil {
		return fmt.Errorf("encode sector fields: %w", err)
	}
	query := `
		UPDATE sectors
		SET name_ar = $1, name_en = $2, description_ar = $3, description_en = $4, fields = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.NameAr, s.NameEn, s.DescriptionAr, s.DescriptionEn, fieldsJSON, s.UpdatedAt, s.ID,
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

func (r *sectorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sectors WHERE id = $1`
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
