package sqlite

import (
	"context"

	"github.com/xacker434/itmarathon/internal/api/domain"
	"github.com/xacker434/itmarathon/pkg/idx"
)

type wishesRepo struct {
	db dbtx
}

func (q *wishesRepo) ListWishesByUserID(ctx context.Context, userID idx.ID) ([]domain.Wish, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, user_id, name, sort_order FROM wishes
		 WHERE user_id = ? ORDER BY sort_order, id`, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wishes []domain.Wish
	for rows.Next() {
		var (
			w   domain.Wish
			id  string
			uid string
		)
		if err := rows.Scan(&id, &uid, &w.Name, &w.Order); err != nil {
			return nil, err
		}
		w.ID = idx.ID(id)
		w.UserID = idx.ID(uid)
		wishes = append(wishes, w)
	}
	return wishes, rows.Err()
}

func (q *wishesRepo) ReplaceWishes(ctx context.Context, userID idx.ID, wishes []domain.Wish) error {
	if _, err := q.db.ExecContext(ctx,
		`DELETE FROM wishes WHERE user_id = ?`, userID.String()); err != nil {
		return err
	}

	for i, w := range wishes {
		id := w.ID
		if id.IsZero() {
			id = idx.New()
		}
		if _, err := q.db.ExecContext(ctx,
			`INSERT INTO wishes (id, user_id, name, sort_order) VALUES (?, ?, ?, ?)`,
			id.String(), userID.String(), w.Name, i); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}
