package domain

import (
	"time"

	"github.com/xacker434/itmarathon/internal/api/validation"
	"github.com/xacker434/itmarathon/pkg/idx"
)

// Room is the aggregate owning participant membership. All membership
// mutation rules live here; handlers load a room, apply one aggregate
// method and persist the result. Invariant: every user in Users has
// RoomID equal to the room's ID.
type Room struct {
	ID         idx.ID
	Name       string
	InviteCode string // opaque enrollment secret, shared by the admin
	Users      []User

	// ClosedOn is nil while the room is open. Once set the room is
	// terminal: no membership mutation is permitted.
	ClosedOn *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the room has reached its terminal state.
func (r *Room) IsClosed() bool { return r.ClosedOn != nil }

// FindUser returns the member with the given id, or nil.
func (r *Room) FindUser(id idx.ID) *User {
	for i := range r.Users {
		if r.Users[i].ID == id {
			return &r.Users[i]
		}
	}
	return nil
}

// DeleteUser removes the member with targetID, authorized against acting.
// The rules are evaluated in order and the first violation wins; the
// order is part of the contract because callers learn which rule fired
// from the failure's field path.
func (r *Room) DeleteUser(acting User, targetID idx.ID) *validation.Error {
	// 1. A closed room is immutable, regardless of who asks.
	if r.IsClosed() {
		return validation.BadRequest("room.ClosedOn", "Room is already closed.")
	}

	// 2. The target must be a member of this room.
	target := r.FindUser(targetID)
	if target == nil {
		return validation.NotFound("userId", "User with given Id not found in the room.")
	}

	// 3. Only an admin may delete through this path. Checked before the
	// self-deletion rule: a non-admin targeting themselves gets the
	// authorization failure, an admin doing the same gets the self rule.
	if !acting.IsAdmin {
		return validation.NotAuthorized("UserCode", "Only an admin can delete users.")
	}

	// 4. Self-deletion through this path is disallowed even for admins.
	if target.ID == acting.ID {
		return validation.BadRequest("userId", "Id and UserCode refer to the same user.")
	}

	users := make([]User, 0, len(r.Users)-1)
	for _, u := range r.Users {
		if u.ID != targetID {
			users = append(users, u)
		}
	}
	r.Users = users
	return nil
}

// AddUser enrolls a new member. Enrollment is open to anyone holding the
// invite code, but only while the room is open.
func (r *Room) AddUser(u User) *validation.Error {
	if r.IsClosed() {
		return validation.BadRequest("room.ClosedOn", "Room is already closed.")
	}
	if r.FindUser(u.ID) != nil {
		return validation.BadRequest("userId", "User is already a member of the room.")
	}

	u.RoomID = r.ID
	r.Users = append(r.Users, u)
	return nil
}

// Close performs the terminal state transition, authorized against
// acting. Closing is idempotent-hostile on purpose: closing an already
// closed room is a state violation, not a no-op.
func (r *Room) Close(acting User, now time.Time) *validation.Error {
	if r.IsClosed() {
		return validation.BadRequest("room.ClosedOn", "Room is already closed.")
	}
	if !acting.IsAdmin {
		return validation.NotAuthorized("UserCode", "Only an admin can close the room.")
	}

	closedOn := now.UTC()
	r.ClosedOn = &closedOn
	return nil
}
