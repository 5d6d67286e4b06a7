package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contactsdemo/internal/social"
	"contactsdemo/internal/transport/http/shared"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
)

// SocialService is the follow-graph and feed surface the handler exposes.
type SocialService interface {
	Follow(ctx context.Context, followedID string) (*contactsmanager.FollowRelationship, error)
	Unfollow(ctx context.Context, followedID string) error
	IsFollowing(ctx context.Context, followedID string) (bool, error)
	Followers(ctx context.Context, page int) (*contactsmanager.FollowPage, error)
	Following(ctx context.Context, page int) (*contactsmanager.FollowPage, error)
	Events(ctx context.Context, kind social.FeedKind, page int) (*contactsmanager.EventPage, error)
	CreateEvent(ctx context.Context, req contactsmanager.CreateEventRequest) (*contactsmanager.SocialEvent, error)
}

type SocialHandler struct {
	social SocialService
}

func NewSocialHandler(svc SocialService) *SocialHandler {
	return &SocialHandler{social: svc}
}

func (h *SocialHandler) Register(r chi.Router) {
	r.Post("/social/follow", h.handleFollow)
	r.Delete("/social/follow/{contactID}", h.handleUnfollow)
	r.Get("/social/follow/{contactID}", h.handleIsFollowing)
	r.Get("/social/followers", h.handleFollowers)
	r.Get("/social/following", h.handleFollowing)
	r.Get("/social/feed", h.handleFeed)
	r.Get("/social/events", h.handleOwnEvents)
	r.Post("/social/events", h.handleCreateEvent)
}

type followRequest struct {
	ContactID string `json:"contact_id"`
}

func (h *SocialHandler) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "invalid request body"))
		return
	}

	rel, err := h.social.Follow(r.Context(), req.ContactID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, rel)
}

func (h *SocialHandler) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	if err := h.social.Unfollow(r.Context(), chi.URLParam(r, "contactID")); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SocialHandler) handleIsFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := h.social.IsFollowing(r.Context(), chi.URLParam(r, "contactID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]bool{"following": following})
}

func (h *SocialHandler) handleFollowers(w http.ResponseWriter, r *http.Request) {
	h.writeFollowPage(w, r, h.social.Followers)
}

func (h *SocialHandler) handleFollowing(w http.ResponseWriter, r *http.Request) {
	h.writeFollowPage(w, r, h.social.Following)
}

func (h *SocialHandler) writeFollowPage(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, int) (*contactsmanager.FollowPage, error),
) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	result, err := fetch(r.Context(), page)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *SocialHandler) handleFeed(w http.ResponseWriter, r *http.Request) {
	kind, err := social.ParseFeedKind(r.URL.Query().Get("kind"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.social.Events(r.Context(), kind, page)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, events)
}

func (h *SocialHandler) handleOwnEvents(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	events, err := h.social.Events(r.Context(), social.FeedOwn, page)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, events)
}

func (h *SocialHandler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req contactsmanager.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "invalid request body"))
		return
	}

	event, err := h.social.CreateEvent(r.Context(), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, event)
}
