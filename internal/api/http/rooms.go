package http

import (
	"encoding/json"
	"net/http"

	"github.com/xacker434/itmarathon/internal/api/usecase"
	"github.com/xacker434/itmarathon/pkg/httpx"
)

type CreateRoomHandler struct {
	CreateRoom *usecase.CreateRoomHandler
}

// ServeHTTP handles POST /v1/rooms. The response carries the invite
// code and the admin's auth code; this is the only time either is
// returned in full to an anonymous caller.
func (h *CreateRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w)
		return
	}

	room, verr := h.CreateRoom.Handle(r.Context(), usecase.CreateRoomRequest{
		RoomName:  req.Name,
		AdminName: req.User.Name,
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRoomResponse(room, true))
}

type GetRoomHandler struct {
	GetRoom *usecase.GetRoomHandler
}

// ServeHTTP handles GET /v1/rooms.
func (h *GetRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	room, verr := h.GetRoom.Handle(r.Context(), usecase.GetRoomQuery{
		UserCode: httpx.AuthCodeFromContext(r.Context()),
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoomResponse(room, false))
}

type JoinRoomHandler struct {
	JoinRoom *usecase.JoinRoomHandler
}

// ServeHTTP handles POST /v1/rooms/join. The response carries the new
// member's auth code exactly once.
func (h *JoinRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w)
		return
	}

	user, verr := h.JoinRoom.Handle(r.Context(), usecase.JoinRoomRequest{
		InviteCode: req.InviteCode,
		Name:       req.Name,
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user, true))
}

type CloseRoomHandler struct {
	CloseRoom *usecase.CloseRoomHandler
}

// ServeHTTP handles POST /v1/rooms/close.
func (h *CloseRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	room, verr := h.CloseRoom.Handle(r.Context(), usecase.CloseRoomRequest{
		UserCode: httpx.AuthCodeFromContext(r.Context()),
	})
	if verr != nil {
		writeValidationError(w, verr)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoomResponse(room, false))
}
