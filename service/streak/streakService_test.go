package streaksvc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bikerental/model"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	jan1 := date(2024, time.January, 1)
	jan2 := date(2024, time.January, 2)
	jan4 := date(2024, time.January, 4)

	cases := []struct {
		name    string
		last    *time.Time
		current int
		day     time.Time
		want    int
	}{
		{"first ever rental", nil, 0, jan1, 1},
		{"consecutive day extends", &jan1, 3, jan2, 4},
		{"gap resets to one", &jan1, 3, jan4, 1},
		{"same day keeps streak", &jan2, 5, jan2, 5},
		{"earlier date resets", &jan4, 7, jan1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Advance(tc.last, tc.current, tc.day))
		})
	}
}

func TestAdvance_IgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	next := time.Date(2024, time.March, 11, 0, 5, 0, 0, time.UTC)
	require.Equal(t, 2, Advance(&last, 1, next))
}

type mockRepo struct {
	profile *model.RenterProfile
	updated struct {
		last   time.Time
		streak int
	}
}

func (m *mockRepo) RenterProfileForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (*model.RenterProfile, error) {
	return m.profile, nil
}

func (m *mockRepo) UpdateRenterStreak(ctx context.Context, tx *sql.Tx, accountID int64, lastRentDate time.Time, streak int) error {
	m.updated.last = lastRentDate
	m.updated.streak = streak
	return nil
}

func TestRecord_PersistsNewStreak(t *testing.T) {
	jan1 := date(2024, time.January, 1)
	m := &mockRepo{profile: &model.RenterProfile{
		AccountID:     9,
		LastRentDate:  &jan1,
		MaxRentStreak: 2,
	}}
	tr := New(m)

	err := tr.Record(context.Background(), nil, 9, date(2024, time.January, 2))
	require.NoError(t, err)
	require.Equal(t, 3, m.updated.streak)
	require.Equal(t, date(2024, time.January, 2), m.updated.last)
}
