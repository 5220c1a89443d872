package pages

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type PageSectionHandler struct {
	sectionService PageSectionService
	logger         *slog.Logger
}

func NewPageSectionHandler(sectionService PageSectionService, logger *slog.Logger) *PageSectionHandler {
	return &PageSectionHandler{
		sectionService: sectionService,
		logger:         logger,
	}
}

// ListByPage godoc
// @Summary      List Page Sections
// @Router       /pages/{pageName}/sections [get]
func (h *PageSectionHandler) ListByPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListByPage"))

	pageName := chi.URLParam(r, "pageName")
	sections, err := h.sectionService.ListByPage(ctx, pageName)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list page sections", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve page sections")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, sections)
}

// Create godoc
// @Summary      Create Page Section
// @Router       /pages/sections [post]
func (h *PageSectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreatePageSectionParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.PageName == "" || params.SectionName == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "page_name and section_name are required")
		return
	}

	section, err := h.sectionService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create page section", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create page section")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, section)
}

// Update godoc
// @Summary      Update Page Section
// @Router       /pages/sections/{sectionID} [put]
func (h *PageSectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Update"))

	sectionID := chi.URLParam(r, "sectionID")

	var params types.CreatePageSectionParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.PageName == "" || params.SectionName == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "page_name and section_name are required")
		return
	}

	section, err := h.sectionService.Update(ctx, sectionID, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Page section not found")
			return
		}
		l.ErrorContext(ctx, "Failed to update page section", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update page section")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, section)
}

// Delete godoc
// @Summary      Delete Page Section
// @Router       /pages/sections/{sectionID} [delete]
func (h *PageSectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	sectionID := chi.URLParam(r, "sectionID")
	if err := h.sectionService.Delete(ctx, sectionID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Page section not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete page section", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete page section")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Section deleted successfully"})
}
