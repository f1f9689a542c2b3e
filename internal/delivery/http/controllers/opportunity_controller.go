package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

// OpportunityRequest is the request body for creating and updating partner
// opportunities.
type OpportunityRequest struct {
	TitleAr       string                `json:"title_ar"`
	TitleEn       string                `json:"title_en"`
	DescriptionAr string                `json:"description_ar"`
	DescriptionEn string                `json:"description_en"`
	Open          bool                  `json:"open"`
	Fields        domain.FormDefinition `json:"fields"`
}

// Validate implements Validator.
func (o OpportunityRequest) Validate() []string {
	if strings.TrimSpace(o.TitleAr) == "" && strings.TrimSpace(o.TitleEn) == "" {
		return []string{"a title in at least one language is required"}
	}
	return nil
}

func (o OpportunityRequest) apply(opp *domain.Opportunity) {
	opp.TitleAr = o.TitleAr
	opp.TitleEn = o.TitleEn
	opp.DescriptionAr = o.DescriptionAr
	opp.DescriptionEn = o.DescriptionEn
	opp.Open = o.Open
	opp.Fields = o.Fields
}

type OpportunityController struct {
	Logger  *slog.Logger
	Service domain.OpportunityService
}

func NewOpportunityController(logger *slog.Logger, svc domain.OpportunityService) *OpportunityController {
	return &OpportunityController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateOpportunity godoc
// @Summary Create a partner opportunity
// @Description Creates an opportunity with its embedded application form. The form definition is validated as a whole.
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OpportunityRequest true "Opportunity data"
// @Success 201 {object} helpers.APIResponse "data contains the created opportunity"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/opportunities [post]
func (c *OpportunityController) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var req OpportunityRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	opp := &domain.Opportunity{}
	req.apply(opp)
	if err := c.Service.Create(r.Context(), opp); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, opp)
}

// ListOpportunities godoc
// @Summary List partner opportunities
// @Tags opportunities
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of opportunities"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /opportunities [get]
func (c *OpportunityController) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	opps, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if opps == nil {
		opps = []*domain.Opportunity{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, opps)
}

// GetOpportunity godoc
// @Summary Get an opportunity by ID
// @Tags opportunities
// @Produce json
// @Param opportunityID path string true "Opportunity ID"
// @Success 200 {object} helpers.APIResponse "data contains the opportunity"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /opportunities/{opportunityID} [get]
func (c *OpportunityController) GetOpportunity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("opportunityID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing opportunityID")
		return
	}
	opp, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, opp)
}

// UpdateOpportunity godoc
// @Summary Update an opportunity
// @Description Full replacement, including the open/closed flag that gates new applications.
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param opportunityID path string true "Opportunity ID"
// @Param body body OpportunityRequest true "Opportunity data (full replacement)"
// @Success 200 {object} helpers.APIResponse "data contains the updated opportunity"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/opportunities/{opportunityID} [put]
func (c *OpportunityController) UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("opportunityID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing opportunityID")
		return
	}
	var req OpportunityRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	opp := &domain.Opportunity{ID: id}
	req.apply(opp)
	if err := c.Service.Update(r.Context(), opp); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, opp)
}

// DeleteOpportunity godoc
// @Summary Delete an opportunity
// @Description Deletes the opportunity; its submissions are removed by cascade.
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param opportunityID path string true "Opportunity ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/opportunities/{opportunityID} [delete]
func (c *OpportunityController) DeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("opportunityID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing opportunityID")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
