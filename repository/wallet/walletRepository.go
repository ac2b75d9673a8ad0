package walletrepo

import (
	"context"
	"database/sql"

	"bikerental/model"
)

type Repo interface {
	InsertWallet(ctx context.Context, tx *sql.Tx, accountID int64) error
	Get(ctx context.Context, accountID int64) (*model.Wallet, error)

	BalanceForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (int64, error)
	UpdateBalance(ctx context.Context, tx *sql.Tx, accountID int64, newBalance int64) error
	TouchTopup(ctx context.Context, tx *sql.Tx, accountID int64) error

	InsertLedger(ctx context.Context, tx *sql.Tx, accountID int64, entryType model.LedgerType, amount, balanceAfter int64) error
	ListLedger(ctx context.Context, accountID int64) ([]model.WalletLedger, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) InsertWallet(ctx context.Context, tx *sql.Tx, accountID int64) error {
	const q = `INSERT INTO wallets (account_id, balance) VALUES ($1, 0)`
	_, err := tx.ExecContext(ctx, q, accountID)
	return err
}

func (r *repo) Get(ctx context.Context, accountID int64) (*model.Wallet, error) {
	const q = `
		SELECT account_id, balance, last_topup_at
		FROM wallets
		WHERE account_id = $1`
	w := &model.Wallet{}
	if err := r.db.QueryRowContext(ctx, q, accountID).Scan(&w.AccountID, &w.Balance, &w.LastTopupAt); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *repo) BalanceForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (int64, error) {
	const q = `
		SELECT balance
		FROM wallets
		WHERE account_id = $1
		FOR UPDATE`
	var bal int64
	err := tx.QueryRowContext(ctx, q, accountID).Scan(&bal)
	return bal, err
}

func (r *repo) UpdateBalance(ctx context.Context, tx *sql.Tx, accountID int64, newBalance int64) error {
	const q = `UPDATE wallets SET balance = $2 WHERE account_id = $1`
	_, err := tx.ExecContext(ctx, q, accountID, newBalance)
	return err
}

func (r *repo) TouchTopup(ctx context.Context, tx *sql.Tx, accountID int64) error {
	const q = `UPDATE wallets SET last_topup_at = NOW() WHERE account_id = $1`
	_, err := tx.ExecContext(ctx, q, accountID)
	return err
}

func (r *repo) InsertLedger(ctx context.Context, tx *sql.Tx, accountID int64, entryType model.LedgerType, amount, balanceAfter int64) error {
	const q = `
		INSERT INTO wallet_ledger (account_id, entry_type, amount, balance_after)
		VALUES ($1,$2,$3,$4)`
	_, err := tx.ExecContext(ctx, q, accountID, string(entryType), amount, balanceAfter)
	return err
}

func (r *repo) ListLedger(ctx context.Context, accountID int64) ([]model.WalletLedger, error) {
	const q = `
		SELECT id, account_id, entry_type, amount, balance_after, created_at
		FROM wallet_ledger
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WalletLedger
	for rows.Next() {
		var l model.WalletLedger
		if err := rows.Scan(&l.ID, &l.AccountID, &l.EntryType, &l.Amount, &l.BalanceAfter, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
