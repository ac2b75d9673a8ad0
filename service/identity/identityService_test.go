package identitysvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

func TestNextID_Sequence(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"", "A-0001"},
		{"A-0001", "A-0002"},
		{"A-0042", "A-0043"},
		{"A-9999", "B-0001"},
		{"B-9999", "C-0001"},
		{"Z-9999", "A-0001"},
	}
	for _, tc := range cases {
		got, err := NextID(tc.last)
		require.NoError(t, err, "last=%q", tc.last)
		require.Equal(t, tc.want, got, "last=%q", tc.last)
	}
}

func TestNextID_Malformed(t *testing.T) {
	for _, last := range []string{
		"A0001",
		"AA-0001",
		"A-001",
		"A-12345",
		"a-0001",
		"A-0000",
		"1-0001",
		"A-abcd",
		"-0001",
	} {
		_, err := NextID(last)
		require.Error(t, err, "last=%q", last)
		require.Equal(t, ErrMalformedID, Code(err), "last=%q", last)
	}
}

type mockRepo struct {
	lastFn func(ctx context.Context, tx *sql.Tx, role model.Role) (string, error)
	setFn  func(ctx context.Context, tx *sql.Tx, role model.Role, id string) error
}

func (m *mockRepo) LastIssuedForUpdate(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) {
	return m.lastFn(ctx, tx, role)
}

func (m *mockRepo) SetLastIssued(ctx context.Context, tx *sql.Tx, role model.Role, id string) error {
	return m.setFn(ctx, tx, role, id)
}

func TestIssue_PersistsCursor(t *testing.T) {
	var saved string
	m := &mockRepo{
		lastFn: func(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) {
			require.Equal(t, model.RoleRenter, role)
			return "A-0007", nil
		},
		setFn: func(ctx context.Context, tx *sql.Tx, role model.Role, id string) error {
			saved = id
			return nil
		},
	}
	s := New(m)

	id, err := s.Issue(context.Background(), nil, model.RoleRenter)
	require.NoError(t, err)
	require.Equal(t, "A-0008", id)
	require.Equal(t, "A-0008", saved)
}

func TestIssue_FirstEver(t *testing.T) {
	m := &mockRepo{
		lastFn: func(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) { return "", nil },
		setFn:  func(ctx context.Context, tx *sql.Tx, role model.Role, id string) error { return nil },
	}
	s := New(m)

	id, err := s.Issue(context.Background(), nil, model.RoleRentee)
	require.NoError(t, err)
	require.Equal(t, "A-0001", id)
}

func TestIssue_MalformedCursor(t *testing.T) {
	m := &mockRepo{
		lastFn: func(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) {
			return "garbage", nil
		},
	}
	s := New(m)

	_, err := s.Issue(context.Background(), nil, model.RoleRenter)
	require.Error(t, err)
	require.Equal(t, ErrMalformedID, Code(err))
}
