package generativeAI

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type AIHandler struct {
	aiService AIService
	logger    *slog.Logger
}

func NewAIHandler(aiService AIService, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		logger:    logger,
	}
}

// GenerateContent godoc
// @Summary      Generate Marketing Copy
// @Router       /ai/generate-content [post]
func (h *AIHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GenerateContent"))

	var params types.GenerateContentRequest
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Prompt == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Prompt is required")
		return
	}
	if params.ContentType == "" {
		params.ContentType = "marketing"
	}

	content, err := h.aiService.GenerateContent(ctx, params)
	if err != nil {
		if errors.Is(err, types.ErrServiceUnavailable) {
			api.ErrorResponse(w, r, http.StatusServiceUnavailable, "AI service not configured")
			return
		}
		l.ErrorContext(ctx, "Content generation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "AI generation failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"content": content})
}

// GenerateImage godoc
// @Summary      Generate Product Image
// @Router       /ai/generate-image [post]
func (h *AIHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GenerateImage"))

	var params types.GenerateImageRequest
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Prompt == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Prompt is required")
		return
	}

	image, err := h.aiService.GenerateImage(ctx, params)
	if err != nil {
		if errors.Is(err, types.ErrServiceUnavailable) {
			api.ErrorResponse(w, r, http.StatusServiceUnavailable, "AI service not configured")
			return
		}
		l.ErrorContext(ctx, "Image generation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Image generation failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"image_base64": image})
}
