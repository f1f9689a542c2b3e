package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"multaqa/internal/domain"
)

type submissionService struct {
	submissionRepo  domain.SubmissionRepository
	eventRepo       domain.EventRepository
	sectionRepo     domain.SectionRepository
	templateRepo    domain.SectionTemplateRepository
	sectorRepo      domain.SectorRepository
	opportunityRepo domain.OpportunityRepository
	emailService    domain.EmailService
	logger          *slog.Logger
}

// NewSubmissionService creates a SubmissionService. emailService may be
// nil when submission notifications are disabled.
func NewSubmissionService(
	submissionRepo domain.SubmissionRepository,
	eventRepo domain.EventRepository,
	sectionRepo domain.SectionRepository,
	templateRepo domain.SectionTemplateRepository,
	sectorRepo domain.SectorRepository,
	opportunityRepo domain.OpportunityRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.SubmissionService {
	return &submissionService{
		submissionRepo:  submissionRepo,
		eventRepo:       eventRepo,
		sectionRepo:     sectionRepo,
		templateRepo:    templateRepo,
		sectorRepo:      sectorRepo,
		opportunityRepo: opportunityRepo,
		emailService:    emailService,
		logger:          logger,
	}
}

// ownerContext is the resolved form plus display metadata for one
// submission owner.
type ownerContext struct {
	form       domain.FormDefinition
	ownerTitle func(domain.Lang) string
	section    func(domain.Lang) string
	closed     bool
}

// resolveOwner loads the owning entity and resolves its form definition,
// applying the section template fallback for event sections.
func (s *submissionService) resolveOwner(ctx context.Context, owner domain.OwnerRef) (*ownerContext, error) {
	switch owner.Kind {
	case domain.OwnerEventSection:
		if !domain.ValidSectionSlug(owner.Section) {
			return nil, domain.ErrInvalidInput
		}
		event, err := s.eventRepo.GetByID(ctx, owner.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get event: %w", err)
		}
		form, sectionCfg, err := s.resolveSectionForm(ctx, owner.OwnerID, owner.Section)
		if err != nil {
			return nil, err
		}
		return &ownerContext{
			form:       form,
			ownerTitle: event.Title,
			section: func(lang domain.Lang) string {
				if sectionCfg != nil {
					return sectionCfg.Title(lang)
				}
				return string(owner.Section)
			},
		}, nil
	case domain.OwnerSector:
		sector, err := s.sectorRepo.GetByID(ctx, owner.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get sector: %w", err)
		}
		return &ownerContext{
			form:       sector.Fields,
			ownerTitle: func(domain.Lang) string { return "" },
			section:    sector.Name,
		}, nil
	case domain.OwnerOpportunity:
		opp, err := s.opportunityRepo.GetByID(ctx, owner.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get opportunity: %w", err)
		}
		return &ownerContext{
			form:       opp.Fields,
			ownerTitle: func(domain.Lang) string { return "" },
			section:    opp.Title,
			closed:     !opp.Open,
		}, nil
	}
	return nil, domain.ErrInvalidInput
}

// resolveSectionForm returns the event section's own fields when
// non-empty, otherwise the cross-event template for the same slug.
func (s *submissionService) resolveSectionForm(ctx context.Context, eventID string, section domain.SectionSlug) (domain.FormDefinition, *domain.SectionConfig, error) {
	cfg, err := s.sectionRepo.Get(ctx, eventID, section)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("get section config: %w", err)
	}
	var own domain.FormDefinition
	if cfg != nil {
		own = cfg.Fields
	}
	if len(own) > 0 {
		return own, cfg, nil
	}
	tpl, err := s.templateRepo.Get(ctx, section)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return own, cfg, nil
		}
		return nil, nil, fmt.Errorf("get section template: %w", err)
	}
	return domain.ResolveForm(own, tpl.Fields), cfg, nil
}

func (s *submissionService) Submit(ctx context.Context, owner domain.OwnerRef, payload map[string]any) (*domain.Submission, error) {
	oc, err := s.resolveOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if oc.closed {
		return nil, domain.ErrForbidden
	}
	if len(oc.form) == 0 {
		// No form configured anywhere for this owner; nothing to collect.
		return nil, domain.ErrNotFound
	}

	data, err := CollectValues(oc.form, payload)
	if err != nil {
		return nil, err
	}

	sub := domain.NewSubmission(owner, data, time.Now())
	sub.ID = uuid.NewString()
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if s.emailService != nil {
		notify := &domain.SubmissionNotificationData{
			SubmissionID: sub.ID,
			OwnerKind:    owner.Kind,
			OwnerTitle:   oc.ownerTitle(domain.LangArabic),
			Section:      owner.Section,
			FieldCount:   len(data),
		}
		if err := s.emailService.SendSubmissionNotification(ctx, notify); err != nil {
			// Notification is best-effort; the submission is already stored.
			s.logger.WarnContext(ctx, "submission notification failed", "submission_id", sub.ID, "err", err)
		}
	}
	return sub, nil
}

// CollectValues validates a raw payload against the form and coerces each
// value to its declared type. Unknown keys are dropped. Blank required
// fields reject the whole collection with a MissingFieldsError listing
// every failing field; no partial result is produced.
func CollectValues(form domain.FormDefinition, payload map[string]any) (map[string]domain.FieldValue, error) {
	data := make(map[string]domain.FieldValue, len(form))
	var missing []string
	for _, f := range form {
		raw, present := payload[f.ID]
		if !present {
			if f.Required {
				missing = append(missing, f.ID)
			}
			continue
		}
		v, err := domain.CoerceValue(f.Type, raw)
		if err != nil {
			return nil, &domain.FieldError{FieldID: f.ID, Reason: err.Error()}
		}
		if v.IsBlank() {
			if f.Required {
				missing = append(missing, f.ID)
			}
			continue
		}
		data[f.ID] = v
	}
	if len(missing) > 0 {
		return nil, &domain.MissingFieldsError{FieldIDs: missing}
	}
	return data, nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

func (s *submissionService) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) (*domain.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if !domain.CanTransition(sub.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.submissionRepo.UpdateStatus(ctx, id, status); err != nil {
		// The store rejected the write; sub keeps its prior status.
		return nil, fmt.Errorf("update status: %w", err)
	}
	sub.Status = status
	return sub, nil
}

// loadTriageItems fetches the owner-scoped submission list and enriches
// each record with its resolved form, section label, and parent event
// title. Owner lookups are cached per owner to keep the enrichment one
// fetch per distinct owner.
func (s *submissionService) loadTriageItems(ctx context.Context, kind domain.OwnerKind, lang domain.Lang, opts domain.TriageOptions) ([]*domain.TriageItem, error) {
	if kind != "" && !domain.ValidOwnerKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	filter := domain.SubmissionFilter{
		Kind:    kind,
		Section: opts.Section,
		Status:  opts.Status,
	}
	if kind == domain.OwnerEventSection {
		filter.OwnerID = opts.EventID
	}
	subs, err := s.submissionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	type ownerKey struct {
		kind    domain.OwnerKind
		ownerID string
		section domain.SectionSlug
	}
	cache := make(map[ownerKey]*ownerContext)

	items := make([]*domain.TriageItem, 0, len(subs))
	for _, sub := range subs {
		key := ownerKey{sub.Owner.Kind, sub.Owner.OwnerID, sub.Owner.Section}
		oc, ok := cache[key]
		if !ok {
			oc, err = s.resolveOwner(ctx, sub.Owner)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Owner deleted with stragglers mid-cascade; skip.
					continue
				}
				return nil, err
			}
			cache[key] = oc
		}
		items = append(items, &domain.TriageItem{
			Submission:   sub,
			Form:         oc.form,
			SectionLabel: oc.section(lang),
			EventTitle:   oc.ownerTitle(lang),
		})
	}
	return items, nil
}

func (s *submissionService) Triage(ctx context.Context, kind domain.OwnerKind, lang domain.Lang, opts domain.TriageOptions) (*domain.TriageResult, error) {
	items, err := s.loadTriageItems(ctx, kind, lang, opts)
	if err != nil {
		return nil, err
	}
	return BuildTriageResult(items, opts), nil
}

func (s *submissionService) ExportCSV(ctx context.Context, w io.Writer, kind domain.OwnerKind, lang domain.Lang, opts domain.TriageOptions) error {
	items, err := s.loadTriageItems(ctx, kind, lang, opts)
	if err != nil {
		return err
	}
	filtered := FilterTriageItems(items, opts)
	field := opts.SortField
	if !domain.ValidTriageSortField(field) {
		field = domain.SortByCreatedAt
	}
	dir := opts.SortDir
	if dir != domain.SortDesc {
		dir = domain.SortAsc
	}
	SortTriageItems(filtered, field, dir)
	return WriteTriageCSV(w, filtered, lang)
}

func (s *submissionService) Contacts(ctx context.Context, id string) (*domain.ContactInfo, error) {
	sub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oc, err := s.resolveOwner(ctx, sub.Owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Owner gone; still extract from raw data in key order.
			info := domain.ExtractContacts(nil, sub.Data)
			return &info, nil
		}
		return nil, err
	}
	info := domain.ExtractContacts(oc.form, sub.Data)
	return &info, nil
}
