package userrepo

import (
	"context"
	"database/sql"
	"time"

	"bikerental/model"
)

type Repo interface {
	CreateAccount(ctx context.Context, tx *sql.Tx, u *model.Account) error
	ByEmail(ctx context.Context, email string) (*model.Account, error)
	ByID(ctx context.Context, id int64) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)

	InsertRenterProfile(ctx context.Context, tx *sql.Tx, p *model.RenterProfile) error
	InsertRenteeProfile(ctx context.Context, tx *sql.Tx, p *model.RenteeProfile) error

	RenterProfileForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (*model.RenterProfile, error)
	UpdateRenterStreak(ctx context.Context, tx *sql.Tx, accountID int64, lastRentDate time.Time, streak int) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) CreateAccount(ctx context.Context, tx *sql.Tx, u *model.Account) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO accounts(first_name, last_name, email, username, role, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		u.FirstName, u.LastName, u.Email, u.Username, string(u.Role), u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Account, error) {
	u := &model.Account{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, username, role, password_hash, created_at
		FROM accounts
		WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Account, error) {
	u := &model.Account{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, username, role, password_hash, created_at
		FROM accounts
		WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) List(ctx context.Context) ([]model.Account, error) {
	const q = `
		SELECT id, first_name, last_name, email, username, role, password_hash, created_at
		FROM accounts
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var u model.Account
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) InsertRenterProfile(ctx context.Context, tx *sql.Tx, p *model.RenterProfile) error {
	const q = `
		INSERT INTO renter_profiles(account_id, renter_id, institution, phone_number, registration_number, max_rent_streak)
		VALUES ($1,$2,$3,$4,$5,0)`
	_, err := tx.ExecContext(ctx, q, p.AccountID, p.RenterID, p.Institution, p.PhoneNumber, p.RegistrationNumber)
	return err
}

func (r *repo) InsertRenteeProfile(ctx context.Context, tx *sql.Tx, p *model.RenteeProfile) error {
	const q = `
		INSERT INTO rentee_profiles(account_id, rentee_id)
		VALUES ($1,$2)`
	_, err := tx.ExecContext(ctx, q, p.AccountID, p.RenteeID)
	return err
}

func (r *repo) RenterProfileForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (*model.RenterProfile, error) {
	const q = `
		SELECT account_id, renter_id, institution, phone_number, registration_number, last_rent_date, max_rent_streak
		FROM renter_profiles
		WHERE account_id = $1
		FOR UPDATE`
	p := &model.RenterProfile{}
	err := tx.QueryRowContext(ctx, q, accountID).Scan(
		&p.AccountID, &p.RenterID, &p.Institution, &p.PhoneNumber, &p.RegistrationNumber,
		&p.LastRentDate, &p.MaxRentStreak,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repo) UpdateRenterStreak(ctx context.Context, tx *sql.Tx, accountID int64, lastRentDate time.Time, streak int) error {
	const q = `
		UPDATE renter_profiles
		SET last_rent_date = $2,
			max_rent_streak = $3
		WHERE account_id = $1`
	_, err := tx.ExecContext(ctx, q, accountID, lastRentDate, streak)
	return err
}
