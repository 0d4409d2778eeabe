// Package repository exposes the storage boundary consumed by the
// command/query handlers. Unlike the raw store, every method here
// returns outcomes in the shared validation taxonomy: expected absence
// is a NotFound failure with a field path, never a driver error, and
// nothing panics for an expected condition.
package repository

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
)

// RoomRepository loads and saves the Room aggregate.
type RoomRepository interface {
	// GetByUserCode resolves the acting user by authentication code and
	// returns their room with all members attached, plus the acting user
	// explicitly. Absent code fails NotFound on field "userCode".
	GetByUserCode(ctx context.Context, userCode string) (domain.Room, domain.User, *validation.Error)

	// Update persists the aggregate: room fields and membership. Members
	// missing from the aggregate compared to storage are deleted.
	Update(ctx context.Context, room domain.Room) *validation.Error
}

// UserReadRepository provides read access to users without going through
// the aggregate.
type UserReadRepository interface {
	// GetByCode resolves a user by authentication code. Absent code fails
	// NotFound on field "userCode".
	GetByCode(ctx context.Context, userCode string, includeRoom, includeWishes bool) (domain.User, *validation.Error)

	// GetByID resolves a user by id. Absent id fails NotFound on field
	// "userId".
	GetByID(ctx context.Context, id idx.ID, includeRoom, includeWishes bool) (domain.User, *validation.Error)

	// ListByRoomID returns every member of a room, wishes included.
	ListByRoomID(ctx context.Context, roomID idx.ID) ([]domain.User, *validation.Error)
}
