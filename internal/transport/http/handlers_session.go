package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contactsdemo/internal/platform/middleware"
	"contactsdemo/internal/session"
	"contactsdemo/internal/transport/http/shared"
	"contactsdemo/pkg/domainerrors"
)

// SessionService is the registration lifecycle the session handler exposes.
type SessionService interface {
	Register(ctx context.Context, contactValue string, contactType session.ContactType) (*session.Session, error)
	Clear(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
}

type SessionHandler struct {
	logger  *slog.Logger
	session SessionService
}

func NewSessionHandler(svc SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{logger: logger, session: svc}
}

func (h *SessionHandler) Register(r chi.Router) {
	r.Post("/session/register", h.handleRegister)
	r.Get("/session", h.handleCurrent)
	r.Delete("/session", h.handleClear)
}

type registerRequest struct {
	Contact     string `json:"contact"`
	ContactType string `json:"contact_type"`
}

type sessionResponse struct {
	Registered  bool   `json:"registered"`
	UserID      string `json:"user_id,omitempty"`
	Contact     string `json:"contact,omitempty"`
	ContactType string `json:"contact_type,omitempty"`
	FullName    string `json:"full_name,omitempty"`
}

func sessionToResponse(sess *session.Session) sessionResponse {
	if sess == nil {
		return sessionResponse{Registered: false}
	}
	resp := sessionResponse{
		Registered:  true,
		UserID:      sess.UserID,
		Contact:     sess.ContactValue,
		ContactType: sess.ContactType.String(),
	}
	if sess.Profile != nil {
		resp.FullName = sess.Profile.FullName
	}
	return resp
}

func (h *SessionHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "invalid request body"))
		return
	}

	contactType, err := session.ParseContactType(req.ContactType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	sess, err := h.session.Register(ctx, req.Contact, contactType)
	if err != nil {
		h.logger.WarnContext(ctx, "registration rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, sessionToResponse(sess))
}

func (h *SessionHandler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session.Current(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, sessionToResponse(sess))
}

func (h *SessionHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(r.Context()); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
