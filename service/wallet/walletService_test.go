package walletsvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	getFn    func(ctx context.Context, accountID int64) (*model.Wallet, error)
	ledgerFn func(ctx context.Context, accountID int64) ([]model.WalletLedger, error)
}

func (m *repoMock) Get(ctx context.Context, accountID int64) (*model.Wallet, error) {
	return m.getFn(ctx, accountID)
}
func (m *repoMock) BalanceForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (int64, error) {
	return 0, nil
}
func (m *repoMock) UpdateBalance(ctx context.Context, tx *sql.Tx, accountID int64, newBalance int64) error {
	return nil
}
func (m *repoMock) TouchTopup(ctx context.Context, tx *sql.Tx, accountID int64) error { return nil }
func (m *repoMock) InsertLedger(ctx context.Context, tx *sql.Tx, accountID int64, entryType model.LedgerType, amount, balanceAfter int64) error {
	return nil
}
func (m *repoMock) ListLedger(ctx context.Context, accountID int64) ([]model.WalletLedger, error) {
	return m.ledgerFn(ctx, accountID)
}

func TestTopup_RejectsNonPositiveAmount(t *testing.T) {
	s := New(nil, &repoMock{})

	_, err := s.Topup(context.Background(), 1, 0)
	require.Equal(t, ErrValidation, Code(err))

	_, err = s.Topup(context.Background(), 1, -100)
	require.Equal(t, ErrValidation, Code(err))
}

func TestGet_Success(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, accountID int64) (*model.Wallet, error) {
			return &model.Wallet{AccountID: accountID, Balance: 700}, nil
		},
		ledgerFn: func(ctx context.Context, accountID int64) ([]model.WalletLedger, error) {
			return []model.WalletLedger{{AccountID: accountID, Amount: 700, BalanceAfter: 700}}, nil
		},
	}
	s := New(nil, m)

	w, ledger, err := s.Get(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(700), w.Balance)
	require.Len(t, ledger, 1)
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, accountID int64) (*model.Wallet, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := New(nil, m)

	_, _, err := s.Get(context.Background(), 5)
	require.Equal(t, ErrNotFound, Code(err))
}
