package contact

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type ContactHandler struct {
	contactService ContactService
	logger         *slog.Logger
}

func NewContactHandler(contactService ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// List godoc
// @Summary      List Contact Leads
// @Router       /contact/leads [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	leads, err := h.contactService.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list contact leads", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve contact leads")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, leads)
}

// Create godoc
// @Summary      Submit Contact Form
// @Router       /contact [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateContactLeadParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" || params.Message == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Name and message are required")
		return
	}
	if !strings.Contains(params.Email, "@") {
		api.ErrorResponse(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	lead, err := h.contactService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create contact lead", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, lead)
}
