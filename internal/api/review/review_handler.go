package review

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type ReviewHandler struct {
	reviewService ReviewService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// List godoc
// @Summary      List Reviews
// @Router       /reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	reviews, err := h.reviewService.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list reviews", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, reviews)
}

// Create godoc
// @Summary      Create Review
// @Router       /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateReviewParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.CustomerName == "" || params.ReviewText == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "customer_name and review_text are required")
		return
	}
	if params.Rating < 0 || params.Rating > 5 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review, err := h.reviewService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create review", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create review")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, review)
}

// Update godoc
// @Summary      Update Review
// @Router       /reviews/{reviewID} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Update"))

	reviewID := chi.URLParam(r, "reviewID")

	var params types.CreateReviewParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.CustomerName == "" || params.ReviewText == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "customer_name and review_text are required")
		return
	}
	if params.Rating < 0 || params.Rating > 5 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review, err := h.reviewService.Update(ctx, reviewID, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Review not found")
			return
		}
		l.ErrorContext(ctx, "Failed to update review", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update review")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, review)
}

// Delete godoc
// @Summary      Delete Review
// @Router       /reviews/{reviewID} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	reviewID := chi.URLParam(r, "reviewID")
	if err := h.reviewService.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Review not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete review", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}
