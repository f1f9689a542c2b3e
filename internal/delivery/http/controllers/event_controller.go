package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

// CreateEventRequest is the request body for POST /admin/events.
type CreateEventRequest struct {
	Slug          string `json:"slug"`
	TitleAr       string `json:"title_ar"`
	TitleEn       string `json:"title_en"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Slug) == "" {
		errs = append(errs, "slug is required")
	}
	if strings.TrimSpace(c.TitleAr) == "" && strings.TrimSpace(c.TitleEn) == "" {
		errs = append(errs, "a title in at least one language is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /admin/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	TitleAr       *string    `json:"title_ar"`
	TitleEn       *string    `json:"title_en"`
	DescriptionAr *string    `json:"description_ar"`
	DescriptionEn *string    `json:"description_en"`
	Status        *string    `json:"status"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Status != nil {
		if _, err := domain.ParsePublishStatus(*u.Status); err != nil {
			errs = append(errs, "status must be \"draft\" or \"published\"")
		}
	}
	return errs
}

// SaveSectionRequest is the request body for PUT /admin/events/{eventID}/sections/{section}.
type SaveSectionRequest struct {
	Enabled bool                  `json:"enabled"`
	TitleAr string                `json:"title_ar"`
	TitleEn string                `json:"title_en"`
	Fields  domain.FormDefinition `json:"fields"`
}

// SaveTemplateRequest is the request body for PUT /admin/section-templates/{section}.
type SaveTemplateRequest struct {
	Fields domain.FormDefinition `json:"fields"`
}

// DeleteResponse is the data payload for delete endpoints.
type DeleteResponse struct {
	Status string `json:"status"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps common domain errors to HTTP responses; anything
// unrecognized is logged and reported as 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a new event with a URL slug and bilingual title. New events start as drafts.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Slug, req.TitleAr, req.TitleEn, time.Now())
	event.DescriptionAr = req.DescriptionAr
	event.DescriptionEn = req.DescriptionEn
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events, optionally filtered by status ("draft" or "published").
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by publish status"
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var status domain.PublishStatus
	if s := r.URL.Query().Get("status"); s != "" {
		parsed, err := domain.ParsePublishStatus(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid status filter")
			return
		}
		status = parsed
	}
	events, err := c.Service.ListEvents(r.Context(), status)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetPublicEvent godoc
// @Summary Get a published event by slug
// @Description Public endpoint. Returns the event only when it is published.
// @Tags public
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetPublicEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if event.Status != domain.PublishPublished {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update event details
// @Description Partial update; omitted fields are unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.EventUpdate{
		TitleAr:       req.TitleAr,
		TitleEn:       req.TitleEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if req.Status != nil {
		status := domain.PublishStatus(*req.Status)
		upd.Status = &status
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all of its sections, sessions, and submissions.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}

// ListSections godoc
// @Summary List section configurations for an event
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of section configs"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sections [get]
func (c *EventController) ListSections(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	sections, err := c.Service.ListSections(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if sections == nil {
		sections = []*domain.SectionConfig{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sections)
}

// GetSection godoc
// @Summary Get one section configuration
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param section path string true "Section slug"
// @Success 200 {object} helpers.APIResponse "data contains the section config"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sections/{section} [get]
func (c *EventController) GetSection(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	section := domain.SectionSlug(r.PathValue("section"))
	if eventID == "" || section == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID or section")
		return
	}
	cfg, err := c.Service.GetSection(r.Context(), eventID, section)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, cfg)
}

// SaveSection godoc
// @Summary Save a section configuration
// @Description Upserts the section's enabled flag, bilingual title, and embedded form. The form definition is validated as a whole; any invalid field rejects the save.
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param section path string true "Section slug"
// @Param body body SaveSectionRequest true "Section configuration"
// @Success 200 {object} helpers.APIResponse "data contains the saved section config"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid form definition)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sections/{section} [put]
func (c *EventController) SaveSection(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	section := domain.SectionSlug(r.PathValue("section"))
	if eventID == "" || section == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID or section")
		return
	}
	var req SaveSectionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	cfg := &domain.SectionConfig{
		EventID: eventID,
		Section: section,
		Enabled: req.Enabled,
		TitleAr: req.TitleAr,
		TitleEn: req.TitleEn,
		Fields:  req.Fields,
	}
	if err := c.Service.SaveSection(r.Context(), cfg); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, cfg)
}

// ResolveSectionForm godoc
// @Summary Get the effective form of an event section
// @Description Public endpoint. Applies the template fallback rule: the event's own fields when present, otherwise the cross-event template for the section.
// @Tags public
// @Produce json
// @Param eventID path string true "Event ID"
// @Param section path string true "Section slug"
// @Success 200 {object} helpers.APIResponse "data contains the resolved form definition"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/sections/{section}/form [get]
func (c *EventController) ResolveSectionForm(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	section := domain.SectionSlug(r.PathValue("section"))
	if eventID == "" || section == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID or section")
		return
	}
	form, err := c.Service.ResolveSectionForm(r.Context(), eventID, section)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if form == nil {
		form = domain.FormDefinition{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, form)
}

// ListTemplates godoc
// @Summary List cross-event section form templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of templates"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/section-templates [get]
func (c *EventController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := c.Service.ListTemplates(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if templates == nil {
		templates = []*domain.SectionTemplate{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, templates)
}

// GetTemplate godoc
// @Summary Get one section form template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section slug"
// @Success 200 {object} helpers.APIResponse "data contains the template"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/section-templates/{section} [get]
func (c *EventController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	section := domain.SectionSlug(r.PathValue("section"))
	if section == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing section")
		return
	}
	tpl, err := c.Service.GetTemplate(r.Context(), section)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tpl)
}

// SaveTemplate godoc
// @Summary Save a section form template
// @Description Upserts the cross-event default form for a section. The form definition is validated as a whole.
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section slug"
// @Param body body SaveTemplateRequest true "Template fields"
// @Success 200 {object} helpers.APIResponse "data contains the saved template"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid form definition)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/section-templates/{section} [put]
func (c *EventController) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	section := domain.SectionSlug(r.PathValue("section"))
	if section == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing section")
		return
	}
	var req SaveTemplateRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	tpl := &domain.SectionTemplate{
		Section: section,
		Fields:  req.Fields,
	}
	if err := c.Service.SaveTemplate(r.Context(), tpl); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tpl)
}
