package ledgersvc

import (
	"context"
	"database/sql"
	"testing"

	"bikerental/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type historyMock struct {
	insertFn   func(ctx context.Context, tx *sql.Tx, h *model.History) error
	byRenterFn func(ctx context.Context, renterID int64) ([]model.History, error)
	byRenteeFn func(ctx context.Context, renteeID int64) ([]model.History, error)
	allFn      func(ctx context.Context) ([]model.History, error)
}

func (m *historyMock) Insert(ctx context.Context, tx *sql.Tx, h *model.History) error {
	return m.insertFn(ctx, tx, h)
}
func (m *historyMock) ListByRenter(ctx context.Context, renterID int64) ([]model.History, error) {
	return m.byRenterFn(ctx, renterID)
}
func (m *historyMock) ListByRentee(ctx context.Context, renteeID int64) ([]model.History, error) {
	return m.byRenteeFn(ctx, renteeID)
}
func (m *historyMock) ListAll(ctx context.Context) ([]model.History, error) {
	return m.allFn(ctx)
}

type noopRecorder struct{}

func (noopRecorder) RecordLedgerEvent(string) {}

func newForQueries(h HistoryRepo) Service {
	return New(nil, nil, h, nil, nil, nil, noopRecorder{})
}

func TestPermissionTable(t *testing.T) {
	// every operation names exactly one allowed role
	require.Equal(t, model.RoleRentee, allowedRole[model.BikeRented])
	require.Equal(t, model.RoleRentee, allowedRole[model.BikeReturned])
	require.Equal(t, model.RoleRenter, allowedRole[model.RenterRental])
	require.Equal(t, model.RoleRentee, allowedRole[model.RenteeRental])
}

func TestLogOps_RoleDenied(t *testing.T) {
	s := newForQueries(&historyMock{})
	ctx := context.Background()
	bikeID := uuid.New()

	renter := Actor{ID: 1, Role: model.RoleRenter}
	rentee := Actor{ID: 2, Role: model.RoleRentee}
	admin := Actor{ID: 3, Role: model.RoleAdmin}

	cases := []struct {
		name string
		call func() (*model.History, error)
	}{
		{"rent by renter", func() (*model.History, error) { return s.LogBikeRented(ctx, renter, bikeID, 0) }},
		{"rent by admin", func() (*model.History, error) { return s.LogBikeRented(ctx, admin, bikeID, 0) }},
		{"return by renter", func() (*model.History, error) { return s.LogBikeReturned(ctx, renter, bikeID) }},
		{"renter rental by rentee", func() (*model.History, error) { return s.LogRenterRental(ctx, rentee, 100) }},
		{"rentee rental by renter", func() (*model.History, error) { return s.LogRenteeRental(ctx, renter, 100) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.call()
			require.Error(t, err)
			require.Equal(t, ErrForbidden, Code(err))
			require.Nil(t, h, "denied op must produce no event")
		})
	}
}

func TestLogOps_NegativeAmount(t *testing.T) {
	s := newForQueries(&historyMock{})
	ctx := context.Background()

	_, err := s.LogBikeRented(ctx, Actor{ID: 2, Role: model.RoleRentee}, uuid.New(), -1)
	require.Equal(t, ErrValidation, Code(err))

	_, err = s.LogRenterRental(ctx, Actor{ID: 1, Role: model.RoleRenter}, -5)
	require.Equal(t, ErrValidation, Code(err))

	_, err = s.LogRenteeRental(ctx, Actor{ID: 2, Role: model.RoleRentee}, -5)
	require.Equal(t, ErrValidation, Code(err))
}

func TestQueryHistory_RoleScoped(t *testing.T) {
	ctx := context.Background()
	bikeID := uuid.New()
	renterID, renteeID := int64(1), int64(2)

	all := []model.History{
		{ID: uuid.New(), RentalStatus: model.BikeRented, BikeID: &bikeID, RenterID: &renterID, RenteeID: &renteeID},
		{ID: uuid.New(), RentalStatus: model.RenterRental, RenterID: &renterID},
		{ID: uuid.New(), RentalStatus: model.RenteeRental, RenteeID: &renteeID},
	}
	filter := func(pred func(h model.History) bool) []model.History {
		var out []model.History
		for _, h := range all {
			if pred(h) {
				out = append(out, h)
			}
		}
		return out
	}
	m := &historyMock{
		byRenterFn: func(ctx context.Context, id int64) ([]model.History, error) {
			return filter(func(h model.History) bool { return h.RenterID != nil && *h.RenterID == id }), nil
		},
		byRenteeFn: func(ctx context.Context, id int64) ([]model.History, error) {
			return filter(func(h model.History) bool { return h.RenteeID != nil && *h.RenteeID == id }), nil
		},
		allFn: func(ctx context.Context) ([]model.History, error) { return all, nil },
	}
	s := newForQueries(m)

	rows, err := s.QueryHistory(ctx, Actor{ID: renterID, Role: model.RoleRenter})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, h := range rows {
		require.Equal(t, renterID, *h.RenterID)
	}

	rows, err = s.QueryHistory(ctx, Actor{ID: renteeID, Role: model.RoleRentee})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, h := range rows {
		require.Equal(t, renteeID, *h.RenteeID)
	}

	rows, err = s.QueryHistory(ctx, Actor{ID: 99, Role: model.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	_, err = s.QueryHistory(ctx, Actor{ID: 5, Role: model.Role("GUEST")})
	require.Equal(t, ErrForbidden, Code(err))
}

func TestCodeOnPlainError(t *testing.T) {
	require.Equal(t, ErrCode(""), Code(context.DeadlineExceeded))
	require.Equal(t, ErrCode(""), Code(nil))
}
