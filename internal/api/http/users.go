package http

import (
	"encoding/json"
	"net/http"

	"github.com/xacker434/itmarathon/internal/api/usecase"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/httpx"
	"github.com/xacker434/itmarathon/pkg/idx"
)

type GetUsersHandler struct {
	GetUsers *usecase.GetUsersHandler
}

// ServeHTTP handles GET /v1/users and GET /v1/users?userId={id}.
// Without userId the whole membership of the caller's room is returned;
// with it, the pair [target, caller].
func (h *GetUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := usecase.GetUsersQuery{
		UserCode: httpx.AuthCodeFromContext(r.Context()),
	}

	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := idx.Parse(raw)
		if err != nil {
			writeValidationError(w, validation.BadRequest("userId", "Id is not a valid identifier."))
			return
		}
		query.UserID = id
	}

	users, verr := h.GetUsers.Handle(r.Context(), query)
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u, false))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type UpdateUserHandler struct {
	UpdateUser *usecase.UpdateUserHandler
}

// ServeHTTP handles PUT /v1/users: the caller renames themselves and
// replaces their wish list.
func (h *UpdateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w)
		return
	}

	user, verr := h.UpdateUser.Handle(r.Context(), usecase.UpdateUserRequest{
		UserCode: httpx.AuthCodeFromContext(r.Context()),
		Name:     req.Name,
		Wishes:   req.Wishes,
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user, false))
}

type DeleteUserHandler struct {
	DeleteUser *usecase.DeleteUserHandler
}

// ServeHTTP handles DELETE /v1/users/{id}. On success the updated room
// is returned so the client can refresh its member list in one trip.
func (h *DeleteUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeValidationError(w, validation.BadRequest("userId", "Id is not a valid identifier."))
		return
	}

	room, verr := h.DeleteUser.Handle(r.Context(), usecase.DeleteUserRequest{
		UserCode: httpx.AuthCodeFromContext(r.Context()),
		UserID:   id,
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoomResponse(room, false))
}
