package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contactsdemo/internal/transport/http/shared"
	"contactsdemo/pkg/contactsmanager"
)

// AccessService is the permission surface the access handler exposes.
type AccessService interface {
	Status(ctx context.Context) (contactsmanager.AccessStatus, error)
	Request(ctx context.Context) (bool, error)
}

type AccessHandler struct {
	access AccessService
}

func NewAccessHandler(access AccessService) *AccessHandler {
	return &AccessHandler{access: access}
}

func (h *AccessHandler) Register(r chi.Router) {
	r.Get("/access/status", h.handleStatus)
	r.Post("/access/request", h.handleRequest)
}

func (h *AccessHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.access.Status(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *AccessHandler) handleRequest(w http.ResponseWriter, r *http.Request) {
	granted, err := h.access.Request(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]bool{"granted": granted})
}
