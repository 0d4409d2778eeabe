package http

import (
	"time"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/validation"
)

// Response DTOs. AuthCode is only populated on the enrollment responses
// (create room, join room); everywhere else it is omitted so codes never
// echo back after issuance.

type WishResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	IsAdmin  bool           `json:"isAdmin"`
	Wishes   []WishResponse `json:"wishes"`
	AuthCode string         `json:"authCode,omitempty"`
}

type RoomResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	InviteCode string         `json:"inviteCode,omitempty"`
	ClosedOn   *time.Time     `json:"closedOn,omitempty"`
	Users      []UserResponse `json:"users"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

type JoinRoomRequest struct {
	InviteCode string `json:"inviteCode"`
	Name       string `json:"name"`
}

type UpdateUserRequest struct {
	Name   string   `json:"name"`
	Wishes []string `json:"wishes"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Kind     string               `json:"kind"`
	Failures []validation.Failure `json:"failures"`
}

func toWishResponse(w domain.Wish) WishResponse {
	return WishResponse{ID: w.ID.String(), Name: w.Name}
}

func toUserResponse(u domain.User, withAuthCode bool) UserResponse {
	resp := UserResponse{
		ID:      u.ID.String(),
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
		Wishes:  make([]WishResponse, 0, len(u.Wishes)),
	}
	for _, w := range u.Wishes {
		resp.Wishes = append(resp.Wishes, toWishResponse(w))
	}
	if withAuthCode {
		resp.AuthCode = u.AuthCode
	}
	return resp
}

func toRoomResponse(r domain.Room, withAuthCodes bool) RoomResponse {
	resp := RoomResponse{
		ID:         r.ID.String(),
		Name:       r.Name,
		InviteCode: r.InviteCode,
		ClosedOn:   r.ClosedOn,
		Users:      make([]UserResponse, 0, len(r.Users)),
	}
	for _, u := range r.Users {
		resp.Users = append(resp.Users, toUserResponse(u, withAuthCodes))
	}
	return resp
}
