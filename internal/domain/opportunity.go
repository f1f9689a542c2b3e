package domain

import (
	"context"
	"time"
)

// Opportunity is a partner opportunity (sponsorship package, exhibition
// slot, ...) open for applications through its embedded form.
// swagger:model Opportunity
type Opportunity struct {
	ID            string         `json:"id"`
	TitleAr       string         `json:"title_ar"`
	TitleEn       string         `json:"title_en"`
	DescriptionAr string         `json:"description_ar"`
	DescriptionEn string         `json:"description_en"`
	Open          bool           `json:"open"`
	Fields        FormDefinition `json:"fields"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Title returns the opportunity's display title for the given language.
func (o *Opportunity) Title(lang Lang) string {
	return Localized(lang, o.TitleAr, o.TitleEn)
}

// OpportunityRepository defines storage for partner opportunities.
// Deleting an opportunity cascades to its submissions.
type OpportunityRepository interface {
	Create(ctx context.Context, o *Opportunity) error
	GetByID(ctx context.Context, id string) (*Opportunity, error)
	List(ctx context.Context) ([]*Opportunity, error)
	Update(ctx context.Context, o *Opportunity) error
	Delete(ctx context.Context, id string) error
}

// OpportunityService defines partner-opportunity management. Saves
// validate the embedded form definition.
type OpportunityService interface {
	Create(ctx context.Context, o *Opportunity) error
	GetByID(ctx context.Context, id string) (*Opportunity, error)
	List(ctx context.Context) ([]*Opportunity, error)
	Update(ctx context.Context, o *Opportunity) error
	Delete(ctx context.Context, id string) error
}
