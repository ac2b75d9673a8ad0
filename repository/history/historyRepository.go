package historyrepo

import (
	"context"
	"database/sql"

	"bikerental/model"
)

// Repo is the append-only history store. There is no update or delete:
// rows only go away when a referenced entity cascades.
type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, h *model.History) error
	ListByRenter(ctx context.Context, renterID int64) ([]model.History, error)
	ListByRentee(ctx context.Context, renteeID int64) ([]model.History, error)
	ListAll(ctx context.Context) ([]model.History, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const historyCols = `id, rental_status, bike_id, rentee_id, renter_id, amount_paid, rental_start_time, rental_end_time, created_at`

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, h *model.History) error {
	const q = `
		INSERT INTO history (id, rental_status, bike_id, rentee_id, renter_id, amount_paid, rental_start_time, rental_end_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`
	return tx.QueryRowContext(ctx, q,
		h.ID, string(h.RentalStatus), h.BikeID, h.RenteeID, h.RenterID,
		h.AmountPaid, h.RentalStartTime, h.RentalEndTime,
	).Scan(&h.CreatedAt)
}

func (r *repo) ListByRenter(ctx context.Context, renterID int64) ([]model.History, error) {
	return r.list(ctx, `SELECT `+historyCols+` FROM history WHERE renter_id = $1 ORDER BY created_at, id`, renterID)
}

func (r *repo) ListByRentee(ctx context.Context, renteeID int64) ([]model.History, error) {
	return r.list(ctx, `SELECT `+historyCols+` FROM history WHERE rentee_id = $1 ORDER BY created_at, id`, renteeID)
}

func (r *repo) ListAll(ctx context.Context) ([]model.History, error) {
	return r.list(ctx, `SELECT `+historyCols+` FROM history ORDER BY created_at, id`)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.History, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.History
	for rows.Next() {
		var h model.History
		if err := rows.Scan(
			&h.ID, &h.RentalStatus, &h.BikeID, &h.RenteeID, &h.RenterID,
			&h.AmountPaid, &h.RentalStartTime, &h.RentalEndTime, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
