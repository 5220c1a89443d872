package category

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type CategoryHandler struct {
	categoryService CategoryService
	logger          *slog.Logger
}

func NewCategoryHandler(categoryService CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary      List Categories
// @Router       /categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list categories", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, categories)
}

// Create godoc
// @Summary      Create Category
// @Router       /categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateCategoryParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Name is required")
		return
	}

	category, err := h.categoryService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create category", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, category)
}

// Delete godoc
// @Summary      Delete Category
// @Router       /categories/{categoryID} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	categoryID := chi.URLParam(r, "categoryID")
	if err := h.categoryService.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Category not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete category", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
