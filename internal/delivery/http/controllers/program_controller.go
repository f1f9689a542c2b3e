package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

var (
	dateRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// SessionRequest is the request body for creating and updating program
// sessions. Date may be blank; blank-dated sessions land in the "no-date"
// bucket of the program timeline.
type SessionRequest struct {
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TitleAr       string `json:"title_ar"`
	TitleEn       string `json:"title_en"`
	SpeakerAr     string `json:"speaker_ar"`
	SpeakerEn     string `json:"speaker_en"`
	LocationAr    string `json:"location_ar"`
	LocationEn    string `json:"location_en"`
	Category      string `json:"category"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.TitleAr) == "" && strings.TrimSpace(s.TitleEn) == "" {
		errs = append(errs, "a title in at least one language is required")
	}
	if s.Date != "" && !dateRegexp.MatchString(s.Date) {
		errs = append(errs, "date must be YYYY-MM-DD or empty")
	}
	if s.StartTime != "" && !timeRegexp.MatchString(s.StartTime) {
		errs = append(errs, "start_time must be HH:MM (24h)")
	}
	if s.EndTime != "" && !timeRegexp.MatchString(s.EndTime) {
		errs = append(errs, "end_time must be HH:MM (24h)")
	}
	if s.Category != "" && !domain.ValidSessionCategory(domain.SessionCategory(s.Category)) {
		errs = append(errs, "category must be \"session\" or \"workshop\"")
	}
	return errs
}

func (s SessionRequest) apply(item *domain.SessionItem) {
	item.Date = s.Date
	item.StartTime = s.StartTime
	item.EndTime = s.EndTime
	item.TitleAr = s.TitleAr
	item.TitleEn = s.TitleEn
	item.SpeakerAr = s.SpeakerAr
	item.SpeakerEn = s.SpeakerEn
	item.LocationAr = s.LocationAr
	item.LocationEn = s.LocationEn
	item.Category = domain.SessionCategory(s.Category)
	if item.Category == "" {
		item.Category = domain.CategorySession
	}
	item.DescriptionAr = s.DescriptionAr
	item.DescriptionEn = s.DescriptionEn
}

type ProgramController struct {
	Logger  *slog.Logger
	Service domain.ProgramService
}

func NewProgramController(logger *slog.Logger, svc domain.ProgramService) *ProgramController {
	return &ProgramController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Add a session to an event's program
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body SessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sessions [post]
func (c *ProgramController) CreateSession(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	item := &domain.SessionItem{EventID: eventID}
	req.apply(item)
	if err := c.Service.CreateSession(r.Context(), item); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, item)
}

// UpdateSession godoc
// @Summary Update a program session
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Param body body SessionRequest true "Session data (full replacement)"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sessions/{sessionID} [put]
func (c *ProgramController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	sessionID := r.PathValue("sessionID")
	if eventID == "" || sessionID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID or sessionID")
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	item := &domain.SessionItem{ID: sessionID, EventID: eventID}
	req.apply(item)
	if err := c.Service.UpdateSession(r.Context(), item); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, item)
}

// DeleteSession godoc
// @Summary Delete a program session
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/sessions/{sessionID} [delete]
func (c *ProgramController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sessionID")
		return
	}
	if err := c.Service.DeleteSession(r.Context(), sessionID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}

// GetProgram godoc
// @Summary Get an event's program grouped by day
// @Description Public endpoint. Returns the program timeline: sessions grouped by calendar date (blank dates under "no-date"), day keys ascending, each day sorted by start time.
// @Tags public
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of program days"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/program [get]
func (c *ProgramController) GetProgram(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	days, err := c.Service.GetProgram(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if days == nil {
		days = []*domain.ProgramDay{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, days)
}
