// Package usecase contains the command and query handlers. Each handler
// orchestrates one operation: load via a repository, apply aggregate or
// query logic, persist when mutating, and return either a value or a
// validation error for the transport layer to map.
package usecase

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// DeleteUserRequest removes a participant from the acting user's room.
type DeleteUserRequest struct {
	UserCode string
	UserID   idx.ID
}

// DeleteUserHandler executes DeleteUserRequest against the Room aggregate.
type DeleteUserHandler struct {
	Rooms repository.RoomRepository
}

// Handle loads the acting user's room, applies the aggregate deletion
// rule, persists the mutated room and returns the freshly re-read room
// so the caller observes persisted state rather than the in-memory
// mutation.
func (h *DeleteUserHandler) Handle(ctx context.Context, req DeleteUserRequest) (domain.Room, *validation.Error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the room and acting user by code.
	room, acting, verr := h.Rooms.GetByUserCode(ctx, req.UserCode)
	if verr != nil {
		return domain.Room{}, verr
	}

	// 2. Apply the aggregate rule.
	if verr := room.DeleteUser(acting, req.UserID); verr != nil {
		return domain.Room{}, verr
	}

	// 3. Persist the mutated aggregate.
	if verr := h.Rooms.Update(ctx, room); verr != nil {
		return domain.Room{}, verr
	}

	log.Info("user deleted from room",
		"room_id", room.ID.String(),
		"user_id", req.UserID.String(),
	)

	// 4. Re-read so the response reflects what storage normalized.
	updated, _, verr := h.Rooms.GetByUserCode(ctx, req.UserCode)
	if verr != nil {
		return domain.Room{}, verr
	}
	return updated, nil
}
