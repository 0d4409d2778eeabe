package usecase

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
)

// GetUsersQuery lists room members or resolves one specific member.
// UserID is optional; when zero, the whole membership of the acting
// user's room is returned.
type GetUsersQuery struct {
	UserCode string
	UserID   idx.ID
}

// GetUsersHandler executes GetUsersQuery.
type GetUsersHandler struct {
	Users repository.UserReadRepository
}

// Handle returns the membership listing (no target id), or the pair
// [target, acting] when a target id is given. Callers must not assume a
// fixed list length: the targeted branch always returns exactly two
// elements so both records resolve from one call.
func (h *GetUsersHandler) Handle(ctx context.Context, query GetUsersQuery) ([]domain.User, *validation.Error) {
	acting, verr := h.Users.GetByCode(ctx, query.UserCode, true, true)
	if verr != nil {
		return nil, verr
	}

	if query.UserID.IsZero() {
		return h.Users.ListByRoomID(ctx, acting.RoomID)
	}

	target, verr := h.Users.GetByID(ctx, query.UserID, false, true)
	if verr != nil {
		return nil, verr
	}

	if target.RoomID != acting.RoomID {
		return nil, validation.NotAuthorized("id",
			"User with userCode and user with Id belongs to different rooms.")
	}

	return []domain.User{target, acting}, nil
}
