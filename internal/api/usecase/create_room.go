package usecase

import (
	"context"
	"strings"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/cryptox"
	"github.com/xacker434/itmarathon/pkg/idx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// CreateRoomRequest opens a new room with its initial admin user.
type CreateRoomRequest struct {
	RoomName  string
	AdminName string
}

// CreateRoomHandler executes CreateRoomRequest. The admin's auth code
// and the room's invite code are generated here and visible in the
// response exactly once; neither can be re-read later by this handler.
type CreateRoomHandler struct {
	Store store.Store
}

func (h *CreateRoomHandler) Handle(ctx context.Context, req CreateRoomRequest) (domain.Room, *validation.Error) {
	log := slogx.FromContext(ctx)

	var failures []validation.Failure
	if strings.TrimSpace(req.RoomName) == "" {
		failures = append(failures, validation.Failure{Field: "name", Message: "Room name is required."})
	}
	if strings.TrimSpace(req.AdminName) == "" {
		failures = append(failures, validation.Failure{Field: "user.name", Message: "Admin name is required."})
	}
	if len(failures) > 0 {
		return domain.Room{}, validation.BadRequestFailures(failures...)
	}

	inviteCode, err := cryptox.GenerateCode(cryptox.CodeSize128)
	if err != nil {
		return domain.Room{}, wrapFault(ctx, "generate invite code", err)
	}
	authCode, err := cryptox.GenerateCode(cryptox.CodeSize256)
	if err != nil {
		return domain.Room{}, wrapFault(ctx, "generate auth code", err)
	}

	room := domain.Room{
		ID:         idx.New(),
		Name:       strings.TrimSpace(req.RoomName),
		InviteCode: inviteCode,
	}
	admin := domain.User{
		ID:       idx.New(),
		RoomID:   room.ID,
		AuthCode: authCode,
		Name:     strings.TrimSpace(req.AdminName),
		IsAdmin:  true,
	}
	room.Users = []domain.User{admin}

	err = h.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Rooms().CreateRoom(ctx, room); err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		return domain.Room{}, wrapFault(ctx, "persist room", err)
	}

	log.Info("room created",
		"room_id", room.ID.String(),
		"admin_id", admin.ID.String(),
	)
	return room, nil
}
