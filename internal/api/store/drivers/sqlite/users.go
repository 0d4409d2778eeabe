package sqlite

import (
	"context"
	"database/sql"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, room_id, auth_code, name, is_admin, created_at, updated_at`

func scanUserRow(scan func(dest ...any) error) (domain.User, error) {
	var (
		u         domain.User
		id        string
		roomID    string
		isAdmin   int64
		createdAt int64
		updatedAt int64
	)
	err := scan(&id, &roomID, &u.AuthCode, &u.Name, &isAdmin, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.ID = idx.ID(id)
	u.RoomID = idx.ID(roomID)
	u.IsAdmin = isAdmin != 0
	u.CreatedAt = unixToTime(createdAt)
	u.UpdatedAt = unixToTime(updatedAt)
	return u, nil
}

func (q *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUserRow(row.Scan)
}

func (q *usersRepo) GetUserByAuthCode(ctx context.Context, authCode string) (domain.User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth_code = ?`, authCode)
	return scanUserRow(row.Scan)
}

func (q *usersRepo) ListUsersByRoomID(ctx context.Context, roomID idx.ID) ([]domain.User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE room_id = ? ORDER BY id`, roomID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (q *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := store.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}

	isAdmin := 0
	if u.IsAdmin {
		isAdmin = 1
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO users (id, room_id, auth_code, name, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.RoomID.String(), u.AuthCode, u.Name, isAdmin,
		u.CreatedAt.Unix(), now.Unix())
	return mapConstraint(err)
}

func (q *usersRepo) UpdateUserName(ctx context.Context, userID idx.ID, name string) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE users SET name = ?, updated_at = ? WHERE id = ?`,
		name, store.Now().Unix(), userID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *usersRepo) DeleteUser(ctx context.Context, userID idx.ID) error {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = ?`, userID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
