package notifsvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	markFn func(ctx context.Context, id uuid.UUID, accountID int64) (bool, error)
	listFn func(ctx context.Context, accountID int64) ([]model.Notification, error)
}

func (m *repoMock) Insert(ctx context.Context, tx *sql.Tx, n *model.Notification) error { return nil }
func (m *repoMock) ListByAccount(ctx context.Context, accountID int64) ([]model.Notification, error) {
	return m.listFn(ctx, accountID)
}
func (m *repoMock) MarkRead(ctx context.Context, id uuid.UUID, accountID int64) (bool, error) {
	return m.markFn(ctx, id, accountID)
}

func TestMarkRead_NotOwnedIsNotFound(t *testing.T) {
	m := &repoMock{
		markFn: func(ctx context.Context, id uuid.UUID, accountID int64) (bool, error) {
			return false, nil
		},
	}
	s := New(m)

	err := s.MarkRead(context.Background(), 1, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkRead_Success(t *testing.T) {
	m := &repoMock{
		markFn: func(ctx context.Context, id uuid.UUID, accountID int64) (bool, error) {
			require.Equal(t, int64(9), accountID)
			return true, nil
		},
	}
	s := New(m)

	require.NoError(t, s.MarkRead(context.Background(), 9, uuid.New()))
}

func TestList(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, accountID int64) ([]model.Notification, error) {
			return []model.Notification{{AccountID: accountID, Content: "Your Trek bike was rented"}}, nil
		},
	}
	s := New(m)

	ns, err := s.List(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, ns, 1)
}
