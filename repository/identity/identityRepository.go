package identityrepo

import (
	"context"
	"database/sql"

	"bikerental/model"
)

// Repo tracks the last issued human-readable id per role. The renter and
// rentee sequences never interleave; each has its own cursor row.
type Repo interface {
	LastIssuedForUpdate(ctx context.Context, tx *sql.Tx, role model.Role) (string, error)
	SetLastIssued(ctx context.Context, tx *sql.Tx, role model.Role, id string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) LastIssuedForUpdate(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) {
	const q = `
		SELECT last_issued
		FROM id_cursors
		WHERE role = $1
		FOR UPDATE`
	var last string
	err := tx.QueryRowContext(ctx, q, string(role)).Scan(&last)
	return last, err
}

func (r *repo) SetLastIssued(ctx context.Context, tx *sql.Tx, role model.Role, id string) error {
	const q = `
		UPDATE id_cursors
		SET last_issued = $2
		WHERE role = $1`
	_, err := tx.ExecContext(ctx, q, string(role), id)
	return err
}
