package domain

import (
	"context"
	"time"
)

// Sector is an industry category with its own embedded registration form.
// swagger:model Sector
type Sector struct {
	ID            string         `json:"id"`
	NameAr        string         `json:"name_ar"`
	NameEn        string         `json:"name_en"`
	DescriptionAr string         `json:"description_ar"`
	DescriptionEn string         `json:"description_en"`
	Fields        FormDefinition `json:"fields"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Name returns the sector's display name for the given language.
func (s *Sector) Name(lang Lang) string {
	return Localized(lang, s.NameAr, s.NameEn)
}

// SectorRepository defines storage for sectors. Deleting a sector
// cascades to its submissions.
type SectorRepository interface {
	Create(ctx context.Context, s *Sector) error
	GetByID(ctx context.Context, id string) (*Sector, error)
	List(ctx context.Context) ([]*Sector, error)
	Update(ctx context.Context, s *Sector) error
	Delete(ctx context.Context, id string) error
}

// SectorService defines sector management. Saves validate the embedded
// form definition; a failing definition rejects the whole save.
type SectorService interface {
	Create(ctx context.Context, s *Sector) error
	GetByID(ctx context.Context, id string) (*Sector, error)
	List(ctx context.Context) ([]*Sector, error)
	Update(ctx context.Context, s *Sector) error
	Delete(ctx context.Context, id string) error
}
