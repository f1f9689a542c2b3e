package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

// SectorRequest is the request body for creating and updating sectors.
type SectorRequest struct {
	NameAr        string                `json:"name_ar"`
	NameEn        string                `json:"name_en"`
	DescriptionAr string                `json:"description_ar"`
	DescriptionEn string                `json:"description_en"`
	Fields        domain.FormDefinition `json:"fields"`
}

// Validate implements Validator.
func (s SectorRequest) Validate() []string {
	if strings.TrimSpace(s.NameAr) == "" && strings.TrimSpace(s.NameEn) == "" {
		return []string{"a name in at least one language is required"}
	}
	return nil
}

func (s SectorRequest) apply(sector *domain.Sector) {
	sector.NameAr = s.NameAr
	sector.NameEn = s.NameEn
	sector.DescriptionAr = s.DescriptionAr
	sector.DescriptionEn = s.DescriptionEn
	sector.Fields = s.Fields
}

type SectorController struct {
	Logger  *slog.Logger
	Service domain.SectorService
}

func NewSectorController(logger *slog.Logger, svc domain.SectorService) *SectorController {
	return &SectorController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSector godoc
// @Summary Create a sector
// @Description Creates an industry sector with its embedded registration form. The form definition is validated as a whole.
// @Tags sectors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SectorRequest true "Sector data"
// @Success 201 {object} helpers.APIResponse "data contains the created sector"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sectors [post]
func (c *SectorController) CreateSector(w http.ResponseWriter, r *http.Request) {
	var req SectorRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sector := &domain.Sector{}
	req.apply(sector)
	if err := c.Service.Create(r.Context(), sector); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sector)
}

// ListSectors godoc
// @Summary List sectors
// @Tags sectors
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of sectors"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sectors [get]
func (c *SectorController) ListSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if sectors == nil {
		sectors = []*domain.Sector{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sectors)
}

// GetSector godoc
// @Summary Get a sector by ID
// @Tags sectors
// @Produce json
// @Param sectorID path string true "Sector ID"
// @Success 200 {object} helpers.APIResponse "data contains the sector"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sectors/{sectorID} [get]
func (c *SectorController) GetSector(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sectorID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sectorID")
		return
	}
	sector, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sector)
}

// UpdateSector godoc
// @Summary Update a sector
// @Tags sectors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectorID path string true "Sector ID"
// @Param body body SectorRequest true "Sector data (full replacement)"
// @Success 200 {object} helpers.APIResponse "data contains the updated sector"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sectors/{sectorID} [put]
func (c *SectorController) UpdateSector(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sectorID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sectorID")
		return
	}
	var req SectorRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sector := &domain.Sector{ID: id}
	req.apply(sector)
	if err := c.Service.Update(r.Context(), sector); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sector)
}

// DeleteSector godoc
// @Summary Delete a sector
// @Description Deletes the sector; its submissions are removed by cascade.
// @Tags sectors
// @Produce json
// @Security BearerAuth
// @Param sectorID path string true "Sector ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sectors/{sectorID} [delete]
func (c *SectorController) DeleteSector(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sectorID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sectorID")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
