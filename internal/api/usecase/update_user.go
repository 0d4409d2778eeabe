package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// UpdateUserRequest renames the acting user and replaces their wish
// list. Wishes keep the order they arrive in.
type UpdateUserRequest struct {
	UserCode string
	Name     string
	Wishes   []string
}

type UpdateUserHandler struct {
	Store store.Store
}

func (h *UpdateUserHandler) Handle(ctx context.Context, req UpdateUserRequest) (domain.User, *validation.Error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.User{}, validation.BadRequest("name", "Name is required.")
	}

	acting, err := h.Store.Users().GetUserByAuthCode(ctx, req.UserCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, validation.NotFound("userCode", "User with given code not found.")
		}
		return domain.User{}, wrapFault(ctx, "load user by auth code", err)
	}

	room, err := h.Store.Rooms().GetRoomByID(ctx, acting.RoomID)
	if err != nil {
		return domain.User{}, wrapFault(ctx, "load room", err)
	}
	if room.IsClosed() {
		return domain.User{}, validation.BadRequest("room.ClosedOn", "Room is already closed.")
	}

	acting.Name = strings.TrimSpace(req.Name)
	wishes := make([]domain.Wish, 0, len(req.Wishes))
	for i, name := range req.Wishes {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		wishes = append(wishes, domain.Wish{
			ID:     idx.New(),
			UserID: acting.ID,
			Name:   name,
			Order:  i,
		})
	}
	acting.Wishes = wishes

	err = h.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUserName(ctx, acting.ID, acting.Name); err != nil {
			return err
		}
		return tx.Wishes().ReplaceWishes(ctx, acting.ID, wishes)
	})
	if err != nil {
		return domain.User{}, wrapFault(ctx, "persist user", err)
	}

	slogx.FromContext(ctx).Info("user updated",
		"user_id", acting.ID.String(),
		"wishes", len(wishes),
	)
	return acting, nil
}
