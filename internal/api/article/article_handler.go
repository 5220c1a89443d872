package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type ArticleHandler struct {
	articleService ArticleService
	logger         *slog.Logger
}

func NewArticleHandler(articleService ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// List godoc
// @Summary      List Articles
// @Router       /articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	filter := types.ArticleFilter{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := r.URL.Query().Get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid published filter")
			return
		}
		filter.Published = &published
	}

	articles, err := h.articleService.List(ctx, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list articles", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve articles")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, articles)
}

// Get godoc
// @Summary      Get Article
// @Router       /articles/{articleID} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Get"))

	articleID := chi.URLParam(r, "articleID")
	article, err := h.articleService.Get(ctx, articleID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Article not found")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch article", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve article")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, article)
}

// Create godoc
// @Summary      Create Article
// @Router       /articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateArticleParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Title == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Title is required")
		return
	}

	article, err := h.articleService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create article", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create article")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, article)
}

// Update godoc
// @Summary      Update Article
// @Router       /articles/{articleID} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Update"))

	articleID := chi.URLParam(r, "articleID")

	var params types.CreateArticleParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Title == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Title is required")
		return
	}

	article, err := h.articleService.Update(ctx, articleID, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Article not found")
			return
		}
		l.ErrorContext(ctx, "Failed to update article", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update article")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, article)
}

// Delete godoc
// @Summary      Delete Article
// @Router       /articles/{articleID} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	articleID := chi.URLParam(r, "articleID")
	if err := h.articleService.Delete(ctx, articleID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Article not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete article", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Article deleted successfully"})
}
