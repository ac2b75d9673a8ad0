package walletsvc

import (
	"context"
	"database/sql"
	"errors"

	"bikerental/model"
)

type ErrCode string

const (
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrValidation ErrCode = "VALIDATION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	Get(ctx context.Context, accountID int64) (*model.Wallet, error)
	BalanceForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (int64, error)
	UpdateBalance(ctx context.Context, tx *sql.Tx, accountID int64, newBalance int64) error
	TouchTopup(ctx context.Context, tx *sql.Tx, accountID int64) error
	InsertLedger(ctx context.Context, tx *sql.Tx, accountID int64, entryType model.LedgerType, amount, balanceAfter int64) error
	ListLedger(ctx context.Context, accountID int64) ([]model.WalletLedger, error)
}

type Service interface {
	// Topup credits the wallet and appends a TOPUP ledger entry, returning
	// the new balance.
	Topup(ctx context.Context, accountID int64, amount int64) (int64, error)
	Get(ctx context.Context, accountID int64) (*model.Wallet, []model.WalletLedger, error)
}

type service struct {
	db *sql.DB
	r  Repo
}

func New(db *sql.DB, r Repo) Service { return &service{db: db, r: r} }

func (s *service) Topup(ctx context.Context, accountID int64, amount int64) (_ int64, err error) {
	if amount <= 0 {
		return 0, makeErr(ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bal, err := s.r.BalanceForUpdate(ctx, tx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, makeErr(ErrNotFound)
		}
		return 0, err
	}
	newBal := bal + amount
	if err = s.r.UpdateBalance(ctx, tx, accountID, newBal); err != nil {
		return 0, err
	}
	if err = s.r.TouchTopup(ctx, tx, accountID); err != nil {
		return 0, err
	}
	if err = s.r.InsertLedger(ctx, tx, accountID, model.LedgerTopup, amount, newBal); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newBal, nil
}

func (s *service) Get(ctx context.Context, accountID int64) (*model.Wallet, []model.WalletLedger, error) {
	w, err := s.r.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, makeErr(ErrNotFound)
		}
		return nil, nil, err
	}
	ledger, err := s.r.ListLedger(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	return w, ledger, nil
}
