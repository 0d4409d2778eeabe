package usecase

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/validation"
)

// GetRoomQuery returns the acting user's room with all members.
type GetRoomQuery struct {
	UserCode string
}

type GetRoomHandler struct {
	Rooms repository.RoomRepository
}

func (h *GetRoomHandler) Handle(ctx context.Context, q GetRoomQuery) (domain.Room, *validation.Error) {
	room, acting, verr := h.Rooms.GetByUserCode(ctx, q.UserCode)
	if verr != nil {
		return domain.Room{}, verr
	}

	// The invite code is the enrollment secret; only the admin sees it.
	if !acting.IsAdmin {
		room.InviteCode = ""
	}
	return room, nil
}
