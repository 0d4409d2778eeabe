package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xacker434/itmarathon/internal/api/repository"
	"github.com/xacker434/itmarathon/internal/api/usecase"
	"github.com/xacker434/itmarathon/internal/api/validation"
)

func TestUpdateUserHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	create := &usecase.CreateRoomHandler{Store: st}
	join := &usecase.JoinRoomHandler{Store: st}
	update := &usecase.UpdateUserHandler{Store: st}

	room, verr := create.Handle(ctx, usecase.CreateRoomRequest{RoomName: "exchange", AdminName: "Alice"})
	require.Nil(t, verr)
	member, verr := join.Handle(ctx, usecase.JoinRoomRequest{InviteCode: room.InviteCode, Name: "Bob"})
	require.Nil(t, verr)

	t.Run("renames and replaces wishes in order", func(t *testing.T) {
		got, verr := update.Handle(ctx, usecase.UpdateUserRequest{
			UserCode: member.AuthCode,
			Name:     "Robert",
			Wishes:   []string{"warm socks", "", "coffee beans"},
		})
		require.Nil(t, verr)
		require.Equal(t, "Robert", got.Name)
		require.Len(t, got.Wishes, 2)

		wishes, err := st.Wishes().ListWishesByUserID(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, wishes, 2)
		require.Equal(t, "warm socks", wishes[0].Name)
		require.Equal(t, "coffee beans", wishes[1].Name)
	})

	t.Run("subsequent update replaces the previous list", func(t *testing.T) {
		_, verr := update.Handle(ctx, usecase.UpdateUserRequest{
			UserCode: member.AuthCode,
			Name:     "Robert",
			Wishes:   []string{"a puzzle"},
		})
		require.Nil(t, verr)

		wishes, err := st.Wishes().ListWishesByUserID(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, wishes, 1)
		require.Equal(t, "a puzzle", wishes[0].Name)
	})

	t.Run("blank name fails BadRequest on name", func(t *testing.T) {
		_, verr := update.Handle(ctx, usecase.UpdateUserRequest{UserCode: member.AuthCode, Name: "  "})
		require.NotNil(t, verr)
		require.Equal(t, validation.KindBadRequest, verr.Kind)
		require.True(t, verr.HasFieldFailure("name"))
	})

	t.Run("unknown code fails NotFound on userCode", func(t *testing.T) {
		_, verr := update.Handle(ctx, usecase.UpdateUserRequest{UserCode: "nope", Name: "X"})
		require.NotNil(t, verr)
		require.Equal(t, validation.KindNotFound, verr.Kind)
		require.True(t, verr.HasFieldFailure("userCode"))
	})

	t.Run("closed room rejects updates", func(t *testing.T) {
		closeH := &usecase.CloseRoomHandler{Rooms: &repository.RoomStore{Store: st}}
		_, verr := closeH.Handle(ctx, usecase.CloseRoomRequest{UserCode: room.Users[0].AuthCode})
		require.Nil(t, verr)

		_, verr = update.Handle(ctx, usecase.UpdateUserRequest{UserCode: member.AuthCode, Name: "Robert"})
		require.NotNil(t, verr)
		require.Equal(t, validation.KindBadRequest, verr.Kind)
		require.True(t, verr.HasFieldFailure("room.ClosedOn"))
	})
}
