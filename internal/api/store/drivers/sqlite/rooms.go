package sqlite

import (
	"context"
	"database/sql"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/internal/api/store"
	"github.com/xacker434/itmarathon/pkg/idx"
)

type roomsRepo struct {
	db dbtx
}

const roomColumns = `id, name, invite_code, closed_on, created_at, updated_at`

func scanRoom(row *sql.Row) (domain.Room, error) {
	var (
		r         domain.Room
		id        string
		closedOn  sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&id, &r.Name, &r.InviteCode, &closedOn, &createdAt, &updatedAt)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}

	r.ID = idx.ID(id)
	r.ClosedOn = nullUnixToTimePtr(closedOn)
	r.CreatedAt = unixToTime(createdAt)
	r.UpdatedAt = unixToTime(updatedAt)
	return r, nil
}

func (q *roomsRepo) GetRoomByID(ctx context.Context, id idx.ID) (domain.Room, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id.String())
	return scanRoom(row)
}

func (q *roomsRepo) GetRoomByInviteCode(ctx context.Context, inviteCode string) (domain.Room, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE invite_code = ?`, inviteCode)
	return scanRoom(row)
}

func (q *roomsRepo) CreateRoom(ctx context.Context, r domain.Room) error {
	now := store.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO rooms (id, name, invite_code, closed_on, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Name, r.InviteCode,
		timePtrToNullUnix(r.ClosedOn), r.CreatedAt.Unix(), now.Unix())
	return mapConstraint(err)
}

func (q *roomsRepo) UpdateRoom(ctx context.Context, r domain.Room) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE rooms SET name = ?, closed_on = ?, updated_at = ? WHERE id = ?`,
		r.Name, timePtrToNullUnix(r.ClosedOn), store.Now().Unix(), r.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}
