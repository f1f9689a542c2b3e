package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"multaqa/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	sectionRepo  domain.SectionRepository
	templateRepo domain.SectionTemplateRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	sectionRepo domain.SectionRepository,
	templateRepo domain.SectionTemplateRepository,
) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		sectionRepo:  sectionRepo,
		templateRepo: templateRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	e.Slug = strings.ToLower(strings.TrimSpace(e.Slug))
	if e.Slug == "" || (e.TitleAr == "" && e.TitleEn == "") {
		return domain.ErrInvalidInput
	}
	if e.Status == "" {
		e.Status = domain.PublishDraft
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	e, err := s.eventRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return e, nil
}

func (s *eventService) ListEvents(ctx context.Context, status domain.PublishStatus) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	e, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	// Sections, sessions, and submissions go with the event (cascade).
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) GetSection(ctx context.Context, eventID string, section domain.SectionSlug) (*domain.SectionConfig, error) {
	if !domain.ValidSectionSlug(section) {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := s.sectionRepo.Get(ctx, eventID, section)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return cfg, nil
}

func (s *eventService) ListSections(ctx context.Context, eventID string) ([]*domain.SectionConfig, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	sections, err := s.sectionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	if sections == nil {
		sections = []*domain.SectionConfig{}
	}
	return sections, nil
}

func (s *eventService) SaveSection(ctx context.Context, cfg *domain.SectionConfig) error {
	if !domain.ValidSectionSlug(cfg.Section) {
		return domain.ErrInvalidInput
	}
	if _, err := s.eventRepo.GetByID(ctx, cfg.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := cfg.Fields.Validate(); err != nil {
		return err
	}
	cfg.UpdatedAt = time.Now()
	if err := s.sectionRepo.Upsert(ctx, cfg); err != nil {
		return fmt.Errorf("save section: %w", err)
	}
	return nil
}

func (s *eventService) ResolveSectionForm(ctx context.Context, eventID string, section domain.SectionSlug) (domain.FormDefinition, error) {
	if !domain.ValidSectionSlug(section) {
		return nil, domain.ErrInvalidInput
	}
	cfg, err := s.sectionRepo.Get(ctx, eventID, section)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get section: %w", err)
	}
	var own domain.FormDefinition
	if cfg != nil {
		own = cfg.Fields
	}
	if len(own) > 0 {
		return own, nil
	}
	tpl, err := s.templateRepo.Get(ctx, section)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return own, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return domain.ResolveForm(own, tpl.Fields), nil
}

func (s *eventService) GetTemplate(ctx context.Context, section domain.SectionSlug) (*domain.SectionTemplate, error) {
	if !domain.ValidSectionSlug(section) {
		return nil, domain.ErrInvalidInput
	}
	tpl, err := s.templateRepo.Get(ctx, section)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return tpl, nil
}

func (s *eventService) ListTemplates(ctx context.Context) ([]*domain.SectionTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	if templates == nil {
		templates = []*domain.SectionTemplate{}
	}
	return templates, nil
}

func (s *eventService) SaveTemplate(ctx context.Context, tpl *domain.SectionTemplate) error {
	if !domain.ValidSectionSlug(tpl.Section) {
		return domain.ErrInvalidInput
	}
	if err := tpl.Fields.Validate(); err != nil {
		return err
	}
	tpl.UpdatedAt = time.Now()
	if err := s.templateRepo.Upsert(ctx, tpl); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
