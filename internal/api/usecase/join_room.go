package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/cryptox"
	"github.com/xacker434/itmarathon/pkg/idx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// JoinRoomRequest enrolls a new participant into the room matching the
// invite code.
type JoinRoomRequest struct {
	InviteCode string
	Name       string
}

// JoinRoomHandler executes JoinRoomRequest. Joining is the only way a
// non-admin user comes into existence; the issued auth code is visible
// in the response exactly once.
type JoinRoomHandler struct {
	Store store.Store
}

func (h *JoinRoomHandler) Handle(ctx context.Context, req JoinRoomRequest) (domain.User, *validation.Error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return domain.User{}, validation.BadRequest("name", "Name is required.")
	}

	room, err := h.Store.Rooms().GetRoomByInviteCode(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, validation.NotFound("inviteCode", "Room with given invite code not found.")
		}
		return domain.User{}, wrapFault(ctx, "load room by invite code", err)
	}

	authCode, err := cryptox.GenerateCode(cryptox.CodeSize256)
	if err != nil {
		return domain.User{}, wrapFault(ctx, "generate auth code", err)
	}

	joiner := domain.User{
		ID:       idx.New(),
		AuthCode: authCode,
		Name:     strings.TrimSpace(req.Name),
	}

	// The aggregate owns the open/closed rule.
	if verr := room.AddUser(joiner); verr != nil {
		return domain.User{}, verr
	}
	joiner.RoomID = room.ID

	if err := h.Store.Users().CreateUser(ctx, joiner); err != nil {
		return domain.User{}, wrapFault(ctx, "persist user", err)
	}

	log.Info("user joined room",
		"room_id", room.ID.String(),
		"user_id", joiner.ID.String(),
	)
	return joiner, nil
}
