package bikerepo

import (
	"context"
	"database/sql"

	"bikerental/model"

	"github.com/google/uuid"
)

type Repo interface {
	Insert(ctx context.Context, b *model.Bike) error
	List(ctx context.Context) ([]model.Bike, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Bike, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Bike, error)

	// GetForUpdate locks the bike row so rent/return transitions for one
	// bike are serialized.
	GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Bike, error)
	MarkRented(ctx context.Context, tx *sql.Tx, id uuid.UUID, renteeID int64) error
	MarkReturned(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const bikeCols = `id, owner_id, brand, rental_price, rented, rented_by, created_at, updated_at`

func (r *repo) Insert(ctx context.Context, b *model.Bike) error {
	const q = `
		INSERT INTO bikes (id, owner_id, brand, rental_price)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q, b.ID, b.OwnerID, b.Brand, b.RentalPrice).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Bike, error) {
	return r.list(ctx, `SELECT `+bikeCols+` FROM bikes ORDER BY created_at`)
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Bike, error) {
	return r.list(ctx, `SELECT `+bikeCols+` FROM bikes WHERE owner_id = $1 ORDER BY created_at`, ownerID)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Bike, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Bike
	for rows.Next() {
		var b model.Bike
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Brand, &b.RentalPrice, &b.Rented, &b.RentedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Bike, error) {
	b := &model.Bike{}
	err := r.db.QueryRowContext(ctx, `SELECT `+bikeCols+` FROM bikes WHERE id = $1`, id).
		Scan(&b.ID, &b.OwnerID, &b.Brand, &b.RentalPrice, &b.Rented, &b.RentedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Bike, error) {
	b := &model.Bike{}
	err := tx.QueryRowContext(ctx, `SELECT `+bikeCols+` FROM bikes WHERE id = $1 FOR UPDATE`, id).
		Scan(&b.ID, &b.OwnerID, &b.Brand, &b.RentalPrice, &b.Rented, &b.RentedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) MarkRented(ctx context.Context, tx *sql.Tx, id uuid.UUID, renteeID int64) error {
	const q = `
		UPDATE bikes
		SET rented = TRUE,
			rented_by = $2,
			updated_at = NOW()
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, renteeID)
	return err
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	const q = `
		UPDATE bikes
		SET rented = FALSE,
			rented_by = NULL,
			updated_at = NOW()
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}
