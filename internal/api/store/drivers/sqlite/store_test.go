package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/internal/api/store/drivers/sqlite"
	"github.com/xacker434/itmarathon/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedRoom(t *testing.T, st store.Store) domain.Room {
	t.Helper()

	room := domain.Room{
		ID:         idx.New(),
		Name:       "office exchange",
		InviteCode: "invite-" + idx.New().String(),
	}
	require.NoError(t, st.Rooms().CreateRoom(context.Background(), room))
	return room
}

func seedUser(t *testing.T, st store.Store, roomID idx.ID, name string, admin bool) domain.User {
	t.Helper()

	u := domain.User{
		ID:       idx.New(),
		RoomID:   roomID,
		AuthCode: "code-" + idx.New().String(),
		Name:     name,
		IsAdmin:  admin,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestRoomsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	room := seedRoom(t, st)

	t.Run("get by id", func(t *testing.T) {
		got, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, room.Name, got.Name)
		require.Equal(t, room.InviteCode, got.InviteCode)
		require.Nil(t, got.ClosedOn)
	})

	t.Run("get by invite code", func(t *testing.T) {
		got, err := st.Rooms().GetRoomByInviteCode(ctx, room.InviteCode)
		require.NoError(t, err)
		require.Equal(t, room.ID, got.ID)
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		_, err := st.Rooms().GetRoomByID(ctx, idx.New())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate invite code maps to ErrAlreadyExists", func(t *testing.T) {
		dup := domain.Room{ID: idx.New(), Name: "dup", InviteCode: room.InviteCode}
		err := st.Rooms().CreateRoom(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update persists closed_on", func(t *testing.T) {
		closedOn := store.Now()
		updated := room
		updated.ClosedOn = &closedOn
		require.NoError(t, st.Rooms().UpdateRoom(ctx, updated))

		got, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ClosedOn)
		require.Equal(t, closedOn, *got.ClosedOn)
	})

	t.Run("update of missing room maps to ErrNotFound", func(t *testing.T) {
		missing := domain.Room{ID: idx.New(), Name: "ghost", InviteCode: "ghost"}
		require.ErrorIs(t, st.Rooms().UpdateRoom(ctx, missing), store.ErrNotFound)
	})
}

func TestUsersRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	room := seedRoom(t, st)
	admin := seedUser(t, st, room.ID, "Admin", true)
	member := seedUser(t, st, room.ID, "Member", false)

	t.Run("get by id and auth code agree", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, admin.ID)
		require.NoError(t, err)
		require.True(t, byID.IsAdmin)

		byCode, err := st.Users().GetUserByAuthCode(ctx, admin.AuthCode)
		require.NoError(t, err)
		require.Equal(t, byID.ID, byCode.ID)
	})

	t.Run("list by room id returns all members in id order", func(t *testing.T) {
		users, err := st.Users().ListUsersByRoomID(ctx, room.ID)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, admin.ID, users[0].ID)
		require.Equal(t, member.ID, users[1].ID)
	})

	t.Run("unknown auth code maps to ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByAuthCode(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rename bumps updated_at", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateUserName(ctx, member.ID, "Renamed"))
		got, err := st.Users().GetUserByID(ctx, member.ID)
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)
		require.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("delete removes the user and cascades wishes", func(t *testing.T) {
		require.NoError(t, st.Wishes().ReplaceWishes(ctx, member.ID, []domain.Wish{
			{Name: "socks"}, {Name: "book"},
		}))

		require.NoError(t, st.Users().DeleteUser(ctx, member.ID))

		_, err := st.Users().GetUserByID(ctx, member.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		wishes, err := st.Wishes().ListWishesByUserID(ctx, member.ID)
		require.NoError(t, err)
		require.Empty(t, wishes)
	})

	t.Run("deleting a missing user maps to ErrNotFound", func(t *testing.T) {
		require.ErrorIs(t, st.Users().DeleteUser(ctx, idx.New()), store.ErrNotFound)
	})
}

func TestWishesPreserveOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	room := seedRoom(t, st)
	user := seedUser(t, st, room.ID, "Wisher", false)

	require.NoError(t, st.Wishes().ReplaceWishes(ctx, user.ID, []domain.Wish{
		{Name: "third"}, {Name: "first"}, {Name: "second"},
	}))

	wishes, err := st.Wishes().ListWishesByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, wishes, 3)
	require.Equal(t, "third", wishes[0].Name)
	require.Equal(t, "first", wishes[1].Name)
	require.Equal(t, "second", wishes[2].Name)

	// Replacement swaps the whole list.
	require.NoError(t, st.Wishes().ReplaceWishes(ctx, user.ID, []domain.Wish{{Name: "only"}}))
	wishes, err = st.Wishes().ListWishesByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, wishes, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	room := seedRoom(t, st)

	sentinel := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID: idx.New(), RoomID: room.ID, AuthCode: "tx-code", Name: "Ghost",
		}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = st.Users().GetUserByAuthCode(ctx, "tx-code")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	room := seedRoom(t, st)
	start := time.Now()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, domain.User{
			ID: idx.New(), RoomID: room.ID, AuthCode: "committed", Name: "Kept",
		})
	})
	require.NoError(t, err)

	got, err := st.Users().GetUserByAuthCode(ctx, "committed")
	require.NoError(t, err)
	require.Equal(t, "Kept", got.Name)
	require.WithinDuration(t, start, got.CreatedAt, 5*time.Second)
}
