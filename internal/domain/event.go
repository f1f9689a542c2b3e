package domain

import (
	"context"
	"time"
)

// PublishStatus is the visibility state of editorial content (events,
// blog posts).
type PublishStatus string

const (
	PublishDraft     PublishStatus = "draft"
	PublishPublished PublishStatus = "published"
)

// ParsePublishStatus validates a raw publish status string.
func ParsePublishStatus(s string) (PublishStatus, error) {
	switch PublishStatus(s) {
	case PublishDraft, PublishPublished:
		return PublishStatus(s), nil
	}
	return "", ErrInvalidInput
}

// SectionSlug identifies one of the fixed sub-pages of an event.
type SectionSlug string

const (
	SectionHome         SectionSlug = "home"
	SectionTheme        SectionSlug = "theme"
	SectionSponsors     SectionSlug = "sponsors"
	SectionExhibitors   SectionSlug = "exhibitors"
	SectionPartners     SectionSlug = "partners"
	SectionRegistration SectionSlug = "registration"
	SectionProgram      SectionSlug = "program"
)

// SectionSlugs lists every section slug in display order.
var SectionSlugs = []SectionSlug{
	SectionHome,
	SectionTheme,
	SectionSponsors,
	SectionExhibitors,
	SectionPartners,
	SectionRegistration,
	SectionProgram,
}

// ValidSectionSlug reports whether s is one of the fixed section slugs.
func ValidSectionSlug(s SectionSlug) bool {
	for _, known := range SectionSlugs {
		if s == known {
			return true
		}
	}
	return false
}

// SectionConfig is the per-event configuration of one section: whether it
// is enabled, its bilingual title, and its embedded registration form.
// Each event owns its own copy of the form (denormalized, never shared).
// swagger:model SectionConfig
type SectionConfig struct {
	EventID   string         `json:"event_id"`
	Section   SectionSlug    `json:"section"`
	Enabled   bool           `json:"enabled"`
	TitleAr   string         `json:"title_ar"`
	TitleEn   string         `json:"title_en"`
	Fields    FormDefinition `json:"fields"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Title returns the section's display title for the given language,
// falling back to the section slug when neither variant is set.
func (c SectionConfig) Title(lang Lang) string {
	if t := Localized(lang, c.TitleAr, c.TitleEn); t != "" {
		return t
	}
	return string(c.Section)
}

// Event represents one event or conference on the platform.
// swagger:model Event
type Event struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	TitleAr       string        `json:"title_ar"`
	TitleEn       string        `json:"title_en"`
	DescriptionAr string        `json:"description_ar"`
	DescriptionEn string        `json:"description_en"`
	Status        PublishStatus `json:"status"`
	StartDate     *time.Time    `json:"start_date,omitempty"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewEvent returns a draft Event. ID is set by the repository on create.
func NewEvent(slug, titleAr, titleEn string, createdAt time.Time) *Event {
	return &Event{
		Slug:      slug,
		TitleAr:   titleAr,
		TitleEn:   titleEn,
		Status:    PublishDraft,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// Title returns the event's display title for the given language.
func (e *Event) Title(lang Lang) string {
	return Localized(lang, e.TitleAr, e.TitleEn)
}

// EventUpdate carries the mutable event fields for partial updates; nil
// means "leave unchanged".
type EventUpdate struct {
	TitleAr       *string
	TitleEn       *string
	DescriptionAr *string
	DescriptionEn *string
	Status        *PublishStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, status PublishStatus) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// SectionRepository defines storage for per-event section configuration.
type SectionRepository interface {
	Get(ctx context.Context, eventID string, section SectionSlug) (*SectionConfig, error)
	ListByEventID(ctx context.Context, eventID string) ([]*SectionConfig, error)
	Upsert(ctx context.Context, cfg *SectionConfig) error
}

// SectionTemplateRepository defines storage for cross-event default forms.
type SectionTemplateRepository interface {
	Get(ctx context.Context, section SectionSlug) (*SectionTemplate, error)
	List(ctx context.Context) ([]*SectionTemplate, error)
	Upsert(ctx context.Context, tpl *SectionTemplate) error
}

// EventService defines the business logic for events, their section
// configuration, and the cross-event section form templates.
type EventService interface {
	CreateEvent(ctx context.Context, e *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, status PublishStatus) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error

	GetSection(ctx context.Context, eventID string, section SectionSlug) (*SectionConfig, error)
	ListSections(ctx context.Context, eventID string) ([]*SectionConfig, error)
	// SaveSection validates the embedded form definition before persisting;
	// a failing definition rejects the whole save.
	SaveSection(ctx context.Context, cfg *SectionConfig) error
	// ResolveSectionForm applies the template fallback rule for the given
	// event section.
	ResolveSectionForm(ctx context.Context, eventID string, section SectionSlug) (FormDefinition, error)

	GetTemplate(ctx context.Context, section SectionSlug) (*SectionTemplate, error)
	ListTemplates(ctx context.Context) ([]*SectionTemplate, error)
	SaveTemplate(ctx context.Context, tpl *SectionTemplate) error
}
