package usersvc

import (
	"context"
	"testing"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

type repoMock struct{}

func (repoMock) List(ctx context.Context) ([]model.Account, error) {
	return []model.Account{{ID: 1}, {ID: 2}}, nil
}

func TestList_AdminOnly(t *testing.T) {
	s := New(repoMock{})

	_, err := s.List(context.Background(), model.RoleRenter)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = s.List(context.Background(), model.RoleRentee)
	require.ErrorIs(t, err, ErrForbidden)

	users, err := s.List(context.Background(), model.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
