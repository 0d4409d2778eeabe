package store

import (
	"context"
	"errors"
	"time"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable;
// expected absence is reported as ErrNotFound, never as a driver error.
type Store interface {
	Rooms() Rooms
	Users() Users
	Wishes() Wishes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step writes (enrollment, aggregate
	// save) atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Rooms interface {
	// GetRoomByID returns the room row without its members.
	GetRoomByID(ctx context.Context, id idx.ID) (domain.Room, error)

	// GetRoomByInviteCode resolves a room during enrollment.
	GetRoomByInviteCode(ctx context.Context, inviteCode string) (domain.Room, error)

	// CreateRoom inserts a new room (id is provided by the app via ULID).
	CreateRoom(ctx context.Context, r domain.Room) error

	// UpdateRoom persists name and closed_on and bumps updated_at.
	UpdateRoom(ctx context.Context, r domain.Room) error
}

type Users interface {
	// GetUserByID returns a user by id, without wishes.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)

	// GetUserByAuthCode resolves the acting user for a request.
	GetUserByAuthCode(ctx context.Context, authCode string) (domain.User, error)

	// ListUsersByRoomID returns all members of a room ordered by creation,
	// without wishes.
	ListUsersByRoomID(ctx context.Context, roomID idx.ID) ([]domain.User, error)

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserName mutates the display name and bumps updated_at.
	UpdateUserName(ctx context.Context, userID idx.ID, name string) error

	// DeleteUser removes the user; wishes cascade per schema.
	DeleteUser(ctx context.Context, userID idx.ID) error
}

type Wishes interface {
	// ListWishesByUserID returns a user's wishes in list order.
	ListWishesByUserID(ctx context.Context, userID idx.ID) ([]domain.Wish, error)

	// ReplaceWishes atomically swaps a user's wish list for the given
	// entries, preserving their order. Must be called within a Tx.
	ReplaceWishes(ctx context.Context, userID idx.ID, wishes []domain.Wish) error
}

// Now returns the canonical storage timestamp. SQLite stores UTC and the
// driver truncates to whole seconds for stable round-trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
