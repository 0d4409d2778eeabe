package repository

import (
	"context"
	"errors"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// RoomStore implements RoomRepository on top of the low-level store.
type RoomStore struct {
	Store store.Store
}

var _ RoomRepository = (*RoomStore)(nil)

func (r *RoomStore) GetByUserCode(ctx context.Context, userCode string) (domain.Room, domain.User, *validation.Error) {
	acting, err := r.Store.Users().GetUserByAuthCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Room{}, domain.User{}, validation.NotFound("userCode", "User with given code not found.")
		}
		return domain.Room{}, domain.User{}, infrastructureFailure(ctx, "load user by code", err)
	}

	room, err := r.Store.Rooms().GetRoomByID(ctx, acting.RoomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Room{}, domain.User{}, validation.NotFound("userCode", "Room for given user code not found.")
		}
		return domain.Room{}, domain.User{}, infrastructureFailure(ctx, "load room", err)
	}

	users, err := r.Store.Users().ListUsersByRoomID(ctx, room.ID)
	if err != nil {
		return domain.Room{}, domain.User{}, infrastructureFailure(ctx, "list room members", err)
	}
	room.Users = users

	return room, acting, nil
}

func (r *RoomStore) Update(ctx context.Context, room domain.Room) *validation.Error {
	err := r.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Rooms().UpdateRoom(ctx, room); err != nil {
			return err
		}

		// Reconcile membership: anything persisted but absent from the
		// aggregate has been removed by an aggregate operation.
		persisted, err := tx.Users().ListUsersByRoomID(ctx, room.ID)
		if err != nil {
			return err
		}

		keep := make(map[idx.ID]struct{}, len(room.Users))
		for _, u := range room.Users {
			keep[u.ID] = struct{}{}
		}

		for _, u := range persisted {
			if _, ok := keep[u.ID]; !ok {
				if err := tx.Users().DeleteUser(ctx, u.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return infrastructureFailure(ctx, "update room", err)
	}
	return nil
}

// infrastructureFailure normalizes an unexpected storage fault into the
// taxonomy: a BadRequest with an empty field path carrying the raw
// message. Expected conditions never take this path.
func infrastructureFailure(ctx context.Context, op string, err error) *validation.Error {
	slogx.FromContext(ctx).Error("repository failure", "op", op, "err", err)
	return validation.BadRequestFailures(validation.Failure{Field: "", Message: err.Error()})
}
