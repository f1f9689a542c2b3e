package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

// SubmitRequest is the request body for POST /submissions. Data carries
// the raw form payload keyed by field id; values are coerced against the
// owner's resolved form definition.
type SubmitRequest struct {
	Kind    string         `json:"kind"`
	OwnerID string         `json:"owner_id"`
	Section string         `json:"section"`
	Data    map[string]any `json:"data"`
}

// Validate implements Validator.
func (s SubmitRequest) Validate() []string {
	var errs []string
	if !domain.ValidOwnerKind(domain.OwnerKind(s.Kind)) {
		errs = append(errs, "kind must be \"event_section\", \"sector\", or \"opportunity\"")
	}
	if s.OwnerID == "" {
		errs = append(errs, "owner_id is required")
	}
	if domain.OwnerKind(s.Kind) == domain.OwnerEventSection && s.Section == "" {
		errs = append(errs, "section is required for event_section submissions")
	}
	if len(s.Data) == 0 {
		errs = append(errs, "data is required")
	}
	return errs
}

// UpdateStatusRequest is the request body for PATCH /admin/submissions/{submissionID}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (u UpdateStatusRequest) Validate() []string {
	if _, err := domain.ParseSubmissionStatus(u.Status); err != nil {
		return []string{"status must be \"pending\", \"approved\", or \"rejected\""}
	}
	return nil
}

type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a registration form
// @Description Public endpoint. Validates the payload against the owner's resolved form (required fields must be non-blank after trimming), coerces values, and stores a pending submission.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "Owner reference and raw form data"
// @Success 201 {object} helpers.APIResponse "data contains the stored submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing required fields or bad values)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (owner closed for applications)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (owner or form missing)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /submissions [post]
func (c *SubmissionController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	owner := domain.OwnerRef{
		Kind:    domain.OwnerKind(req.Kind),
		OwnerID: req.OwnerID,
		Section: domain.SectionSlug(req.Section),
	}
	sub, err := c.Service.Submit(r.Context(), owner, req.Data)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// GetSubmission godoc
// @Summary Get a submission by ID
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param submissionID path string true "Submission ID"
// @Success 200 {object} helpers.APIResponse "data contains the submission"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/submissions/{submissionID} [get]
func (c *SubmissionController) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("submissionID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing submissionID")
		return
	}
	sub, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sub)
}

// UpdateStatus godoc
// @Summary Change a submission's triage status
// @Description Moves the record between pending, approved, and rejected. A transition to the current status is rejected with 409. The form data itself never changes.
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submissionID path string true "Submission ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} helpers.APIResponse "data contains the updated submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (invalid transition)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/submissions/{submissionID}/status [patch]
func (c *SubmissionController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("submissionID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing submissionID")
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.UpdateStatus(r.Context(), id, domain.SubmissionStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, err.Error())
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sub)
}

// triageKind reads and validates the owner-kind path segment shared by the
// triage list and export endpoints.
func triageKind(w http.ResponseWriter, r *http.Request) (domain.OwnerKind, bool) {
	kind := domain.OwnerKind(r.PathValue("kind"))
	if !domain.ValidOwnerKind(kind) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "unknown owner kind")
		return "", false
	}
	return kind, true
}

// Triage godoc
// @Summary List submissions for triage
// @Description Returns one page (25 rows) of the filtered, sorted triage list for an owner scope. Filters combine with AND; search is case-insensitive across all stored values. Sort toggles via the dir parameter.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Owner kind: event_section, sector, or opportunity"
// @Param section query string false "Filter by section slug"
// @Param status query string false "Filter by status"
// @Param event_id query string false "Filter by parent event"
// @Param search query string false "Case-insensitive substring search"
// @Param sort query string false "Sort field: primary, created_at, status, section, event"
// @Param dir query string false "Sort direction: asc or desc"
// @Param page query int false "Page number (default 1, clamped to range)"
// @Param lang query string false "Label language: ar (default) or en"
// @Success 200 {object} helpers.APIResponse "data contains items, total, page, total_pages"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/triage/{kind} [get]
func (c *SubmissionController) Triage(w http.ResponseWriter, r *http.Request) {
	kind, ok := triageKind(w, r)
	if !ok {
		return
	}
	opts := h.ParseTriageOptions(r)
	result, err := c.Service.Triage(r.Context(), kind, h.ParseLang(r), opts)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// ExportCSV godoc
// @Summary Export the filtered triage set as CSV
// @Description Streams the full filtered, sorted triage set (no paging) as a CSV download. Columns are the base metadata plus the union of field labels across the exported rows; missing fields render as "-".
// @Tags submissions
// @Produce text/csv
// @Security BearerAuth
// @Param kind path string true "Owner kind: event_section, sector, or opportunity"
// @Param section query string false "Filter by section slug"
// @Param status query string false "Filter by status"
// @Param event_id query string false "Filter by parent event"
// @Param search query string false "Case-insensitive substring search"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction"
// @Param lang query string false "Label language: ar (default) or en"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/triage/{kind}/export [get]
func (c *SubmissionController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	kind, ok := triageKind(w, r)
	if !ok {
		return
	}
	opts := h.ParseTriageOptions(r)
	filename := fmt.Sprintf("submissions-%s-%s.csv", kind, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := c.Service.ExportCSV(r.Context(), w, kind, h.ParseLang(r), opts); err != nil {
		// Headers are already written; log and abort the stream.
		c.Logger.ErrorContext(r.Context(), "csv export failed", "path", r.URL.Path, "err", err)
	}
}

// PhoneContact is one detected phone value plus its wa.me-ready form.
type PhoneContact struct {
	Number   string `json:"number"`
	WhatsApp string `json:"whatsapp"`
}

// ContactsResponse is the data payload for GET /admin/submissions/{submissionID}/contacts.
type ContactsResponse struct {
	Phones []PhoneContact `json:"phones"`
	Emails []string       `json:"emails"`
}

// Contacts godoc
// @Summary Extract contact chips from a submission
// @Description Scans the stored values with the phone and email heuristics and returns deduplicated contact lists. Phone entries include a wa.me-ready WhatsApp number.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param submissionID path string true "Submission ID"
// @Success 200 {object} helpers.APIResponse "data contains phones and emails"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/submissions/{submissionID}/contacts [get]
func (c *SubmissionController) Contacts(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("submissionID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing submissionID")
		return
	}
	info, err := c.Service.Contacts(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	resp := ContactsResponse{Phones: []PhoneContact{}, Emails: info.Emails}
	for _, p := range info.Phones {
		resp.Phones = append(resp.Phones, PhoneContact{Number: p, WhatsApp: domain.WhatsAppNumber(p)})
	}
	if resp.Emails == nil {
		resp.Emails = []string{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}
