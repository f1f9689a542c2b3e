package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multaqa/internal/domain"
)

// In-memory fakes for the submission workflow.

type fakeSubmissionRepo struct {
	subs map[string]*domain.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[string]*domain.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *domain.Submission) error {
	r.subs[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*domain.Submission, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	var out []*domain.Submission
	for _, s := range r.subs {
		if filter.Kind != "" && s.Owner.Kind != filter.Kind {
			continue
		}
		if filter.OwnerID != "" && s.Owner.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Section != "" && s.Owner.Section != filter.Section {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id string, status domain.SubmissionStatus) error {
	s, ok := r.subs[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) error { return nil }

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) GetBySlug(_ context.Context, slug string) (*domain.Event, error) {
	for _, e := range r.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeEventRepo) List(_ context.Context, _ domain.PublishStatus) ([]*domain.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) Update(_ context.Context, _ string, _ domain.EventUpdate) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeEventRepo) Delete(_ context.Context, _ string) error { return domain.ErrNotFound }

type sectionKey struct {
	eventID string
	section domain.SectionSlug
}

type fakeSectionRepo struct {
	configs map[sectionKey]*domain.SectionConfig
}

func (r *fakeSectionRepo) Get(_ context.Context, eventID string, section domain.SectionSlug) (*domain.SectionConfig, error) {
	cfg, ok := r.configs[sectionKey{eventID, section}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

func (r *fakeSectionRepo) ListByEventID(_ context.Context, _ string) ([]*domain.SectionConfig, error) {
	return nil, nil
}

func (r *fakeSectionRepo) Upsert(_ context.Context, cfg *domain.SectionConfig) error {
	r.configs[sectionKey{cfg.EventID, cfg.Section}] = cfg
	return nil
}

type fakeTemplateRepo struct {
	templates map[domain.SectionSlug]*domain.SectionTemplate
}

func (r *fakeTemplateRepo) Get(_ context.Context, section domain.SectionSlug) (*domain.SectionTemplate, error) {
	tpl, ok := r.templates[section]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tpl, nil
}

func (r *fakeTemplateRepo) List(_ context.Context) ([]*domain.SectionTemplate, error) { return nil, nil }

func (r *fakeTemplateRepo) Upsert(_ context.Context, tpl *domain.SectionTemplate) error {
	r.templates[tpl.Section] = tpl
	return nil
}

type fakeSectorRepo struct {
	sectors map[string]*domain.Sector
}

func (r *fakeSectorRepo) Create(_ context.Context, _ *domain.Sector) error { return nil }

func (r *fakeSectorRepo) GetByID(_ context.Context, id string) (*domain.Sector, error) {
	s, ok := r.sectors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeSectorRepo) List(_ context.Context) ([]*domain.Sector, error) { return nil, nil }
func (r *fakeSectorRepo) Update(_ context.Context, _ *domain.Sector) error { return nil }
func (r *fakeSectorRepo) Delete(_ context.Context, _ string) error         { return nil }

type fakeOpportunityRepo struct {
	opps map[string]*domain.Opportunity
}

func (r *fakeOpportunityRepo) Create(_ context.Context, _ *domain.Opportunity) error { return nil }

func (r *fakeOpportunityRepo) GetByID(_ context.Context, id string) (*domain.Opportunity, error) {
	o, ok := r.opps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (r *fakeOpportunityRepo) List(_ context.Context) ([]*domain.Opportunity, error) { return nil, nil }
func (r *fakeOpportunityRepo) Update(_ context.Context, _ *domain.Opportunity) error { return nil }
func (r *fakeOpportunityRepo) Delete(_ context.Context, _ string) error              { return nil }

type fakeEmailService struct {
	sent []*domain.SubmissionNotificationData
	err  error
}

func (s *fakeEmailService) SendSubmissionNotification(_ context.Context, data *domain.SubmissionNotificationData) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, data)
	return nil
}

type submissionFixture struct {
	svc       domain.SubmissionService
	subRepo   *fakeSubmissionRepo
	events    *fakeEventRepo
	sections  *fakeSectionRepo
	templates *fakeTemplateRepo
	sectors   *fakeSectorRepo
	opps      *fakeOpportunityRepo
	email     *fakeEmailService
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		subRepo:   newFakeSubmissionRepo(),
		events:    &fakeEventRepo{events: make(map[string]*domain.Event)},
		sections:  &fakeSectionRepo{configs: make(map[sectionKey]*domain.SectionConfig)},
		templates: &fakeTemplateRepo{templates: make(map[domain.SectionSlug]*domain.SectionTemplate)},
		sectors:   &fakeSectorRepo{sectors: make(map[string]*domain.Sector)},
		opps:      &fakeOpportunityRepo{opps: make(map[string]*domain.Opportunity)},
		email:     &fakeEmailService{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewSubmissionService(
		f.subRepo, f.events, f.sections, f.templates,
		f.sectors, f.opps, f.email, logger,
	)
	return f
}

func (f *submissionFixture) withEvent(id, titleEn string) *submissionFixture {
	f.events.events[id] = &domain.Event{ID: id, Slug: id, TitleEn: titleEn, Status: domain.PublishPublished}
	return f
}

func (f *submissionFixture) withSection(eventID string, section domain.SectionSlug, fields domain.FormDefinition) *submissionFixture {
	f.sections.configs[sectionKey{eventID, section}] = &domain.SectionConfig{
		EventID: eventID,
		Section: section,
		Enabled: true,
		TitleEn: string(section),
		Fields:  fields,
	}
	return f
}

var registrationForm = domain.FormDefinition{
	{ID: "full_name", Type: domain.FieldText, LabelEn: "Name", Required: true},
	{ID: "email", Type: domain.FieldEmail, LabelEn: "Email", Required: true},
	{ID: "attendees", Type: domain.FieldNumber, LabelEn: "Attendees"},
	{ID: "newsletter", Type: domain.FieldCheckbox, LabelEn: "Newsletter"},
}

func TestCollectValues(t *testing.T) {
	t.Run("coerces by declared type and drops unknown keys", func(t *testing.T) {
		data, err := CollectValues(registrationForm, map[string]any{
			"full_name":  "Alia",
			"email":      "alia@example.com",
			"attendees":  "3",
			"newsletter": true,
			"unknown":    "dropped",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StringValue("Alia"), data["full_name"])
		assert.Equal(t, domain.NumberValue(3), data["attendees"])
		assert.Equal(t, domain.BoolValue(true), data["newsletter"])
		assert.NotContains(t, data, "unknown")
	})

	t.Run("missing required fields accumulate", func(t *testing.T) {
		_, err := CollectValues(registrationForm, map[string]any{
			"full_name": "   ",
		})
		var missing *domain.MissingFieldsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"full_name", "email"}, missing.FieldIDs)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		data, err := CollectValues(registrationForm, map[string]any{
			"full_name": "Alia",
			"email":     "alia@example.com",
		})
		require.NoError(t, err)
		assert.NotContains(t, data, "attendees")
	})

	t.Run("uncoercible value names the field", func(t *testing.T) {
		_, err := CollectValues(registrationForm, map[string]any{
			"full_name": "Alia",
			"email":     "alia@example.com",
			"attendees": "many",
		})
		var fe *domain.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "attendees", fe.FieldID)
	})

	t.Run("unchecked checkbox is stored, not blank", func(t *testing.T) {
		data, err := CollectValues(registrationForm, map[string]any{
			"full_name":  "Alia",
			"email":      "alia@example.com",
			"newsletter": false,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.BoolValue(false), data["newsletter"])
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	sectionOwner := domain.OwnerRef{
		Kind:    domain.OwnerEventSection,
		OwnerID: "evt-1",
		Section: domain.SectionRegistration,
	}
	payload := map[string]any{"full_name": "Alia", "email": "alia@example.com"}

	t.Run("stores a pending submission and notifies", func(t *testing.T) {
		f := newSubmissionFixture().
			withEvent("evt-1", "Tech Summit").
			withSection("evt-1", domain.SectionRegistration, registrationForm)

		sub, err := f.svc.Submit(ctx, sectionOwner, payload)
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, domain.StatusPending, sub.Status)
		assert.Equal(t, sectionOwner, sub.Owner)

		stored, err := f.subRepo.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StringValue("Alia"), stored.Data["full_name"])

		require.Len(t, f.email.sent, 1)
		assert.Equal(t, sub.ID, f.email.sent[0].SubmissionID)
	})

	t.Run("section with empty fields falls back to template", func(t *testing.T) {
		f := newSubmissionFixture().
			withEvent("evt-1", "Tech Summit").
			withSection("evt-1", domain.SectionRegistration, nil)
		f.templates.templates[domain.SectionRegistration] = &domain.SectionTemplate{
			Section: domain.SectionRegistration,
			Fields:  registrationForm,
		}

		sub, err := f.svc.Submit(ctx, sectionOwner, payload)
		require.NoError(t, err)
		assert.Equal(t, domain.StringValue("Alia"), sub.Data["full_name"])
	})

	t.Run("no form configured anywhere", func(t *testing.T) {
		f := newSubmissionFixture().
			withEvent("evt-1", "Tech Summit").
			withSection("evt-1", domain.SectionRegistration, nil)

		_, err := f.svc.Submit(ctx, sectionOwner, payload)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newSubmissionFixture()
		_, err := f.svc.Submit(ctx, sectionOwner, payload)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid section slug", func(t *testing.T) {
		f := newSubmissionFixture().withEvent("evt-1", "Tech Summit")
		owner := sectionOwner
		owner.Section = "cafeteria"
		_, err := f.svc.Submit(ctx, owner, payload)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("closed opportunity refuses applications", func(t *testing.T) {
		f := newSubmissionFixture()
		f.opps.opps["opp-1"] = &domain.Opportunity{ID: "opp-1", TitleEn: "Gold sponsor", Open: false, Fields: registrationForm}
		_, err := f.svc.Submit(ctx, domain.OwnerRef{Kind: domain.OwnerOpportunity, OwnerID: "opp-1"}, payload)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("sector owner collects through its embedded form", func(t *testing.T) {
		f := newSubmissionFixture()
		f.sectors.sectors["sec-1"] = &domain.Sector{ID: "sec-1", NameEn: "Health", Fields: registrationForm}
		sub, err := f.svc.Submit(ctx, domain.OwnerRef{Kind: domain.OwnerSector, OwnerID: "sec-1"}, payload)
		require.NoError(t, err)
		assert.Equal(t, domain.OwnerSector, sub.Owner.Kind)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		f := newSubmissionFixture().
			withEvent("evt-1", "Tech Summit").
			withSection("evt-1", domain.SectionRegistration, registrationForm)
		f.email.err = errors.New("smtp down")

		sub, err := f.svc.Submit(ctx, sectionOwner, payload)
		require.NoError(t, err)
		_, err = f.subRepo.GetByID(ctx, sub.ID)
		assert.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture()
	f.subRepo.subs["sub-1"] = &domain.Submission{
		ID:     "sub-1",
		Owner:  domain.OwnerRef{Kind: domain.OwnerSector, OwnerID: "sec-1"},
		Status: domain.StatusPending,
	}

	t.Run("pending to approved", func(t *testing.T) {
		sub, err := f.svc.UpdateStatus(ctx, "sub-1", domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, sub.Status)
	})

	t.Run("approved back to pending", func(t *testing.T) {
		sub, err := f.svc.UpdateStatus(ctx, "sub-1", domain.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, sub.Status)
	})

	t.Run("no-op transition rejected", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, "sub-1", domain.StatusPending)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown submission", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, "missing", domain.StatusApproved)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTriageEnrichment(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	f := newSubmissionFixture().
		withEvent("evt-1", "Tech Summit").
		withSection("evt-1", domain.SectionRegistration, registrationForm)
	f.subRepo.subs["sub-1"] = &domain.Submission{
		ID:        "sub-1",
		Owner:     domain.OwnerRef{Kind: domain.OwnerEventSection, OwnerID: "evt-1", Section: domain.SectionRegistration},
		Data:      map[string]domain.FieldValue{"full_name": domain.StringValue("Alia")},
		Status:    domain.StatusPending,
		CreatedAt: created,
	}
	// Straggler whose owner is gone; it must be skipped, not fail the list.
	f.subRepo.subs["sub-2"] = &domain.Submission{
		ID:        "sub-2",
		Owner:     domain.OwnerRef{Kind: domain.OwnerEventSection, OwnerID: "evt-gone", Section: domain.SectionRegistration},
		Status:    domain.StatusPending,
		CreatedAt: created,
	}

	res, err := f.svc.Triage(ctx, domain.OwnerEventSection, domain.LangEnglish, domain.TriageOptions{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, "sub-1", it.Submission.ID)
	assert.Equal(t, "Tech Summit", it.EventTitle)
	assert.Equal(t, string(domain.SectionRegistration), it.SectionLabel)
	assert.Equal(t, registrationForm, it.Form)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.TotalPages)
}

func TestTriageRejectsUnknownKind(t *testing.T) {
	f := newSubmissionFixture()
	_, err := f.svc.Triage(context.Background(), "mystery", domain.LangEnglish, domain.TriageOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceContacts(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture()
	f.sectors.sectors["sec-1"] = &domain.Sector{ID: "sec-1", NameEn: "Health", Fields: domain.FormDefinition{
		{ID: "phone", Type: domain.FieldPhone, LabelEn: "Phone"},
		{ID: "email", Type: domain.FieldEmail, LabelEn: "Email"},
	}}
	f.subRepo.subs["sub-1"] = &domain.Submission{
		ID:    "sub-1",
		Owner: domain.OwnerRef{Kind: domain.OwnerSector, OwnerID: "sec-1"},
		Data: map[string]domain.FieldValue{
			"phone": domain.StringValue("07701234567"),
			"email": domain.StringValue("alia@example.com"),
		},
		Status: domain.StatusPending,
	}

	info, err := f.svc.Contacts(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"07701234567"}, info.Phones)
	assert.Equal(t, []string{"alia@example.com"}, info.Emails)

	_, err = f.svc.Contacts(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
