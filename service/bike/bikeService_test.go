package bikesvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	insertFn  func(ctx context.Context, b *model.Bike) error
	listFn    func(ctx context.Context) ([]model.Bike, error)
	byOwnerFn func(ctx context.Context, ownerID int64) ([]model.Bike, error)
	byIDFn    func(ctx context.Context, id uuid.UUID) (*model.Bike, error)
}

func (m *repoMock) Insert(ctx context.Context, b *model.Bike) error { return m.insertFn(ctx, b) }
func (m *repoMock) List(ctx context.Context) ([]model.Bike, error)  { return m.listFn(ctx) }
func (m *repoMock) ListByOwner(ctx context.Context, ownerID int64) ([]model.Bike, error) {
	return m.byOwnerFn(ctx, ownerID)
}
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.Bike, error) {
	return m.byIDFn(ctx, id)
}

func TestCreate_OnlyRenters(t *testing.T) {
	s := New(&repoMock{})

	_, err := s.Create(context.Background(), 1, model.RoleRentee, "Trek", 500)
	require.Equal(t, ErrForbidden, Code(err))

	_, err = s.Create(context.Background(), 1, model.RoleAdmin, "Trek", 500)
	require.Equal(t, ErrForbidden, Code(err))
}

func TestCreate_Validation(t *testing.T) {
	s := New(&repoMock{})

	_, err := s.Create(context.Background(), 1, model.RoleRenter, "", 500)
	require.Equal(t, ErrValidation, Code(err))

	_, err = s.Create(context.Background(), 1, model.RoleRenter, "Trek", 0)
	require.Equal(t, ErrValidation, Code(err))
}

func TestCreate_Success(t *testing.T) {
	var inserted *model.Bike
	m := &repoMock{
		insertFn: func(ctx context.Context, b *model.Bike) error {
			inserted = b
			return nil
		},
	}
	s := New(m)

	b, err := s.Create(context.Background(), 7, model.RoleRenter, "Trek", 500)
	require.NoError(t, err)
	require.Equal(t, int64(7), b.OwnerID)
	require.Equal(t, "Trek", b.Brand)
	require.NotEqual(t, uuid.Nil, b.ID)
	require.Same(t, inserted, b)
}

func TestList_RenterSeesOwnFleet(t *testing.T) {
	m := &repoMock{
		byOwnerFn: func(ctx context.Context, ownerID int64) ([]model.Bike, error) {
			require.Equal(t, int64(7), ownerID)
			return []model.Bike{{OwnerID: 7}}, nil
		},
		listFn: func(ctx context.Context) ([]model.Bike, error) {
			return []model.Bike{{OwnerID: 7}, {OwnerID: 8}}, nil
		},
	}
	s := New(m)

	own, err := s.List(context.Background(), 7, model.RoleRenter)
	require.NoError(t, err)
	require.Len(t, own, 1)

	all, err := s.List(context.Background(), 2, model.RoleRentee)
	require.NoError(t, err)
	require.Len(t, all, 2)

	all, err = s.List(context.Background(), 3, model.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.Bike, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := New(m)

	_, err := s.Detail(context.Background(), uuid.New())
	require.Equal(t, ErrNotFound, Code(err))
}
