package settings

import (
	"log/slog"
	"net/http"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type SettingsHandler struct {
	settingsService SettingsService
	logger          *slog.Logger
}

func NewSettingsHandler(settingsService SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetTheme godoc
// @Summary      Get Theme Settings
// @Description  Returns the theme document, creating the defaults on first read.
// @Router       /theme [get]
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetTheme"))

	theme, err := h.settingsService.GetTheme(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get theme settings", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve theme settings")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, theme)
}

// UpdateTheme godoc
// @Summary      Update Theme Settings
// @Description  Partial update: only fields present in the body are changed.
// @Router       /theme [put]
func (h *SettingsHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UpdateTheme"))

	var params types.UpdateThemeParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	theme, err := h.settingsService.UpdateTheme(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update theme settings", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update theme settings")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, theme)
}

// GetSiteSettings godoc
// @Summary      Get Site Settings
// @Router       /settings [get]
func (h *SettingsHandler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetSiteSettings"))

	site, err := h.settingsService.GetSiteSettings(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get site settings", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve site settings")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, site)
}

// UpdateSiteSettings godoc
// @Summary      Update Site Settings
// @Description  Partial update: only fields present in the body are changed.
// @Router       /settings [put]
func (h *SettingsHandler) UpdateSiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "UpdateSiteSettings"))

	var params types.UpdateSiteSettingsParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	site, err := h.settingsService.UpdateSiteSettings(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update site settings", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update site settings")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, site)
}
