package usecase

import (
	"context"
	"time"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// CloseRoomRequest moves the acting user's room to its terminal state.
type CloseRoomRequest struct {
	UserCode string
}

type CloseRoomHandler struct {
	Rooms repository.RoomRepository

	// Now is the clock used for the ClosedOn stamp. Nil means store.Now.
	Now func() time.Time
}

func (h *CloseRoomHandler) Handle(ctx context.Context, req CloseRoomRequest) (domain.Room, *validation.Error) {
	room, acting, verr := h.Rooms.GetByUserCode(ctx, req.UserCode)
	if verr != nil {
		return domain.Room{}, verr
	}

	now := store.Now
	if h.Now != nil {
		now = h.Now
	}
	if verr := room.Close(acting, now()); verr != nil {
		return domain.Room{}, verr
	}

	if verr := h.Rooms.Update(ctx, room); verr != nil {
		return domain.Room{}, verr
	}

	slogx.FromContext(ctx).Info("room closed",
		"room_id", room.ID.String(),
		"acting_user_id", acting.ID.String(),
	)
	return room, nil
}
