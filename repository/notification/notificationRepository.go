package notifrepo

import (
	"context"
	"database/sql"

	"bikerental/model"

	"github.com/google/uuid"
)

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, n *model.Notification) error
	ListByAccount(ctx context.Context, accountID int64) ([]model.Notification, error)

	// MarkRead reports whether a row owned by accountID was updated.
	MarkRead(ctx context.Context, id uuid.UUID, accountID int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, n *model.Notification) error {
	const q = `
		INSERT INTO notifications (id, account_id, content)
		VALUES ($1,$2,$3)
		RETURNING created_at`
	return tx.QueryRowContext(ctx, q, n.ID, n.AccountID, n.Content).Scan(&n.CreatedAt)
}

func (r *repo) ListByAccount(ctx context.Context, accountID int64) ([]model.Notification, error) {
	const q = `
		SELECT id, account_id, content, read_status, created_at
		FROM notifications
		WHERE account_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Content, &n.ReadStatus, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) MarkRead(ctx context.Context, id uuid.UUID, accountID int64) (bool, error) {
	const q = `
		UPDATE notifications
		SET read_status = TRUE
		WHERE id = $1 AND account_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, accountID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
