package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"contactsdemo/internal/contacts"
	"contactsdemo/internal/transport/http/shared"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
)

const defaultRecommendationLimit = 25

// ContactsService is the search/recommendation surface the handler exposes.
type ContactsService interface {
	Search(ctx context.Context, query string, limit int) ([]contactsmanager.Contact, error)
	Invite(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
	AppUsers(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
	Nearby(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
	All(ctx context.Context, limit int) (*contacts.Recommendations, error)
}

// ContactSeeder manages bulk test data.
type ContactSeeder interface {
	Create(ctx context.Context, n int) (int, error)
	Purge(ctx context.Context) (int, error)
}

type ContactsHandler struct {
	contacts ContactsService
	seeder   ContactSeeder
}

func NewContactsHandler(svc ContactsService, seeder ContactSeeder) *ContactsHandler {
	return &ContactsHandler{contacts: svc, seeder: seeder}
}

func (h *ContactsHandler) Register(r chi.Router) {
	r.Get("/contacts/search", h.handleSearch)
	r.Get("/contacts/recommendations", h.handleRecommendations)
	r.Post("/contacts/seed", h.handleSeed)
	r.Post("/contacts/purge", h.handlePurge)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domainerrors.New(domainerrors.CodeInvalidInput, name+" must be a non-negative integer")
	}
	return n, nil
}

func (h *ContactsHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "q is required"))
		return
	}
	limit, err := queryInt(r, "limit", defaultRecommendationLimit)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	found, err := h.contacts.Search(r.Context(), query, limit)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"contacts": found})
}

func (h *ContactsHandler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultRecommendationLimit)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	ctx := r.Context()
	kind := r.URL.Query().Get("kind")
	switch kind {
	case "", "all":
		recs, err := h.contacts.All(ctx, limit)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		shared.WriteJSON(w, http.StatusOK, recs)
	case "invite":
		h.writeFeed(ctx, w, limit, h.contacts.Invite)
	case "app-users":
		h.writeFeed(ctx, w, limit, h.contacts.AppUsers)
	case "nearby":
		h.writeFeed(ctx, w, limit, h.contacts.Nearby)
	default:
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "unknown recommendation kind: "+kind))
	}
}

func (h *ContactsHandler) writeFeed(
	ctx context.Context,
	w http.ResponseWriter,
	limit int,
	fetch func(context.Context, int) ([]contactsmanager.Recommendation, error),
) {
	recs, err := fetch(ctx, limit)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

type seedRequest struct {
	Count int `json:"count"`
}

func (h *ContactsHandler) handleSeed(w http.ResponseWriter, r *http.Request) {
	var req seedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.Count <= 0 {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "count must be positive"))
		return
	}

	created, err := h.seeder.Create(r.Context(), req.Count)
	if err != nil {
		// Earlier batches may have committed; report what landed.
		shared.WriteJSON(w, http.StatusBadGateway, map[string]any{
			"created": created,
			"error":   "seeding stopped early",
		})
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]int{"created": created})
}

func (h *ContactsHandler) handlePurge(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.seeder.Purge(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
