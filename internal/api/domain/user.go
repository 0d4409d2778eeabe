package domain

import (
	"time"

	"github.com/xacker434/itmarathon/pkg/idx"
)

// User is a room participant. A user belongs to exactly one room for its
// lifetime and is identified to callers by an opaque authentication code
// rather than a session token.
type User struct {
	ID       idx.ID
	RoomID   idx.ID
	AuthCode string // opaque bearer secret, unique across the system
	Name     string
	IsAdmin  bool

	// Wishes is the user's ordered wish list. The entries are opaque to
	// the membership rules; only enrollment and self-update touch them.
	Wishes []Wish

	// Room is populated when the user was loaded with its room included.
	Room *Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Wish is a single wish-list entry.
type Wish struct {
	ID     idx.ID
	UserID idx.ID
	Name   string
	Order  int
}
