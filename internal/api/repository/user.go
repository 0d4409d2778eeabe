package repository

import (
	"context"
	"errors"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
)

// UserReadStore implements UserReadRepository on top of the low-level store.
type UserReadStore struct {
	Store store.Store
}

var _ UserReadRepository = (*UserReadStore)(nil)

func (r *UserReadStore) GetByCode(ctx context.Context, userCode string, includeRoom, includeWishes bool) (domain.User, *validation.Error) {
	u, err := r.Store.Users().GetUserByAuthCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, validation.NotFound("userCode", "User with given code not found.")
		}
		return domain.User{}, infrastructureFailure(ctx, "load user by code", err)
	}
	return r.include(ctx, u, includeRoom, includeWishes)
}

func (r *UserReadStore) GetByID(ctx context.Context, id idx.ID, includeRoom, includeWishes bool) (domain.User, *validation.Error) {
	u, err := r.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, validation.NotFound("userId", "User with given Id not found.")
		}
		return domain.User{}, infrastructureFailure(ctx, "load user by id", err)
	}
	return r.include(ctx, u, includeRoom, includeWishes)
}

func (r *UserReadStore) ListByRoomID(ctx context.Context, roomID idx.ID) ([]domain.User, *validation.Error) {
	users, err := r.Store.Users().ListUsersByRoomID(ctx, roomID)
	if err != nil {
		return nil, infrastructureFailure(ctx, "list room members", err)
	}

	for i := range users {
		wishes, err := r.Store.Wishes().ListWishesByUserID(ctx, users[i].ID)
		if err != nil {
			return nil, infrastructureFailure(ctx, "load wishes", err)
		}
		users[i].Wishes = wishes
	}
	return users, nil
}

func (r *UserReadStore) include(ctx context.Context, u domain.User, includeRoom, includeWishes bool) (domain.User, *validation.Error) {
	if includeRoom {
		room, err := r.Store.Rooms().GetRoomByID(ctx, u.RoomID)
		if err != nil {
			// A user row always references an existing room; absence here
			// is a storage fault, not an expected failure.
			return domain.User{}, infrastructureFailure(ctx, "load user room", err)
		}
		u.Room = &room
	}

	if includeWishes {
		wishes, err := r.Store.Wishes().ListWishesByUserID(ctx, u.ID)
		if err != nil {
			return domain.User{}, infrastructureFailure(ctx, "load wishes", err)
		}
		u.Wishes = wishes
	}

	return u, nil
}
