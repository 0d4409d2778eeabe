// Package http is the transport boundary: a ServeMux router with
// per-route middleware chains, request DTOs and the mapping from the
// validation taxonomy onto HTTP status codes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/usecase"
	"github.com/xacker434/itmarathon/pkg/httpx"
	"github.com/xacker434/itmarathon/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	createRoom *usecase.CreateRoomHandler
	getRoom    *usecase.GetRoomHandler
	joinRoom   *usecase.JoinRoomHandler
	closeRoom  *usecase.CloseRoomHandler
	getUsers   *usecase.GetUsersHandler
	updateUser *usecase.UpdateUserHandler
	deleteUser *usecase.DeleteUserHandler
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	rooms := &repository.RoomStore{Store: st}
	users := &repository.UserReadStore{Store: st}

	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,

		createRoom: &usecase.CreateRoomHandler{Store: st},
		getRoom:    &usecase.GetRoomHandler{Rooms: rooms},
		joinRoom:   &usecase.JoinRoomHandler{Store: st},
		closeRoom:  &usecase.CloseRoomHandler{Rooms: rooms},
		getUsers:   &usecase.GetUsersHandler{Users: users},
		updateUser: &usecase.UpdateUserHandler{Store: st},
		deleteUser: &usecase.DeleteUserHandler{Rooms: rooms},
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.AuthCodeMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRooms()
	r.registerUsers()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRooms() {
	// POST /v1/rooms - anonymous enrollment, strict rate limit
	r.Mux.Handle("POST /v1/rooms",
		httpx.Chain(&CreateRoomHandler{CreateRoom: r.createRoom},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /v1/rooms - authenticated read, lenient rate limit
	r.Mux.Handle("GET /v1/rooms",
		httpx.Chain(&GetRoomHandler{GetRoom: r.getRoom},
			httpx.RateLimitByAuthCode(httpx.LenientLimit),
		),
	)

	// POST /v1/rooms/join - anonymous enrollment, strict rate limit
	r.Mux.Handle("POST /v1/rooms/join",
		httpx.Chain(&JoinRoomHandler{JoinRoom: r.joinRoom},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/rooms/close - authenticated mutation, moderate rate limit
	r.Mux.Handle("POST /v1/rooms/close",
		httpx.Chain(&CloseRoomHandler{CloseRoom: r.closeRoom},
			httpx.RateLimitByAuthCode(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	// GET /v1/users - authenticated read, lenient rate limit
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(&GetUsersHandler{GetUsers: r.getUsers},
			httpx.RateLimitByAuthCode(httpx.LenientLimit),
		),
	)

	// PUT /v1/users - authenticated mutation, moderate rate limit
	r.Mux.Handle("PUT /v1/users",
		httpx.Chain(&UpdateUserHandler{UpdateUser: r.updateUser},
			httpx.RateLimitByAuthCode(httpx.ModerateLimit),
		),
	)

	// DELETE /v1/users/{id} - authenticated mutation, moderate rate limit
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(&DeleteUserHandler{DeleteUser: r.deleteUser},
			httpx.RateLimitByAuthCode(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
