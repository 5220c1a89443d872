package client

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

type ClientHandler struct {
	clientService ClientService
	logger        *slog.Logger
}

func NewClientHandler(clientService ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// List godoc
// @Summary      List Clients
// @Router       /clients [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "List"))

	clients, err := h.clientService.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list clients", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, clients)
}

// Create godoc
// @Summary      Create Client
// @Router       /clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Create"))

	var params types.CreateClientParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.Name == "" || params.LogoURL == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Name and logo_url are required")
		return
	}

	client, err := h.clientService.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create client", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create client")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, client)
}

// Delete godoc
// @Summary      Delete Client
// @Router       /clients/{clientID} [delete]
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "Delete"))

	clientID := chi.URLParam(r, "clientID")
	if err := h.clientService.Delete(ctx, clientID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Client not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete client", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
