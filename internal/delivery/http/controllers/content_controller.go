package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "multaqa/internal/delivery/http/helpers"
	"multaqa/internal/domain"
)

// PostRequest is the request body for creating and updating blog posts.
type PostRequest struct {
	Slug    string `json:"slug"`
	TitleAr string `json:"title_ar"`
	TitleEn string `json:"title_en"`
	BodyAr  string `json:"body_ar"`
	BodyEn  string `json:"body_en"`
	Status  string `json:"status"`
}

// Validate implements Validator.
func (p PostRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Slug) == "" {
		errs = append(errs, "slug is required")
	}
	if strings.TrimSpace(p.TitleAr) == "" && strings.TrimSpace(p.TitleEn) == "" {
		errs = append(errs, "a title in at least one language is required")
	}
	if p.Status != "" {
		if _, err := domain.ParsePublishStatus(p.Status); err != nil {
			errs = append(errs, "status must be \"draft\" or \"published\"")
		}
	}
	return errs
}

// LinkRequest is the request body for creating and updating directory links.
type LinkRequest struct {
	LabelAr  string `json:"label_ar"`
	LabelEn  string `json:"label_en"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Validate implements Validator.
func (l LinkRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.URL) == "" {
		errs = append(errs, "url is required")
	}
	if strings.TrimSpace(l.LabelAr) == "" && strings.TrimSpace(l.LabelEn) == "" {
		errs = append(errs, "a label in at least one language is required")
	}
	return errs
}

type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreatePost godoc
// @Summary Create a blog post
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PostRequest true "Post data"
// @Success 201 {object} helpers.APIResponse "data contains the created post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/posts [post]
func (c *ContentController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	post := &domain.Post{
		Slug:    req.Slug,
		TitleAr: req.TitleAr,
		TitleEn: req.TitleEn,
		BodyAr:  req.BodyAr,
		BodyEn:  req.BodyEn,
		Status:  domain.PublishStatus(req.Status),
	}
	if err := c.Service.CreatePost(r.Context(), post); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, post)
}

// ListPosts godoc
// @Summary List blog posts
// @Description Public endpoint returns published posts only; admin listing passes a status filter.
// @Tags content
// @Produce json
// @Param status query string false "Filter by publish status (admin only)"
// @Success 200 {object} helpers.APIResponse "data is an array of posts"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts [get]
func (c *ContentController) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.Service.ListPosts(r.Context(), domain.PublishPublished)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, posts)
}

// ListAllPosts lists posts in any status for the dashboard.
func (c *ContentController) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	var status domain.PublishStatus
	if s := r.URL.Query().Get("status"); s != "" {
		parsed, err := domain.ParsePublishStatus(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid status filter")
			return
		}
		status = parsed
	}
	posts, err := c.Service.ListPosts(r.Context(), status)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a blog post by slug
// @Tags content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{slug} [get]
func (c *ContentController) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slug")
		return
	}
	post, err := c.Service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Update a blog post
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Param body body PostRequest true "Post data (full replacement)"
// @Success 200 {object} helpers.APIResponse "data contains the updated post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/posts/{postID} [put]
func (c *ContentController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("postID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing postID")
		return
	}
	var req PostRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	post := &domain.Post{
		ID:      id,
		Slug:    req.Slug,
		TitleAr: req.TitleAr,
		TitleEn: req.TitleEn,
		BodyAr:  req.BodyAr,
		BodyEn:  req.BodyEn,
		Status:  domain.PublishStatus(req.Status),
	}
	if err := c.Service.UpdatePost(r.Context(), post); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a blog post
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/posts/{postID} [delete]
func (c *ContentController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("postID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing postID")
		return
	}
	if err := c.Service.DeletePost(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}

// CreateLink godoc
// @Summary Create a directory link
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LinkRequest true "Link data"
// @Success 201 {object} helpers.APIResponse "data contains the created link"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/links [post]
func (c *ContentController) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	link := &domain.Link{
		LabelAr:  req.LabelAr,
		LabelEn:  req.LabelEn,
		URL:      req.URL,
		Position: req.Position,
	}
	if err := c.Service.CreateLink(r.Context(), link); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, link)
}

// ListLinks godoc
// @Summary List directory links
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of links ordered by position"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /links [get]
func (c *ContentController) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := c.Service.ListLinks(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if links == nil {
		links = []*domain.Link{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, links)
}

// UpdateLink godoc
// @Summary Update a directory link
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param linkID path string true "Link ID"
// @Param body body LinkRequest true "Link data (full replacement)"
// @Success 200 {object} helpers.APIResponse "data contains the updated link"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/links/{linkID} [put]
func (c *ContentController) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("linkID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing linkID")
		return
	}
	var req LinkRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	link := &domain.Link{
		ID:       id,
		LabelAr:  req.LabelAr,
		LabelEn:  req.LabelEn,
		URL:      req.URL,
		Position: req.Position,
	}
	if err := c.Service.UpdateLink(r.Context(), link); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, link)
}

// DeleteLink godoc
// @Summary Delete a directory link
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param linkID path string true "Link ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/links/{linkID} [delete]
func (c *ContentController) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("linkID")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing linkID")
		return
	}
	if err := c.Service.DeleteLink(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}
