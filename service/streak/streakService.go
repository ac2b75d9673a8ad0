package streaksvc

import (
	"context"
	"database/sql"
	"time"

	"bikerental/model"
)

type Repo interface {
	RenterProfileForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (*model.RenterProfile, error)
	UpdateRenterStreak(ctx context.Context, tx *sql.Tx, accountID int64, lastRentDate time.Time, streak int) error
}

// Tracker maintains the consecutive-day rental streak on the renter
// profile. Record must run inside the same transaction as the rental event
// it accounts for; the profile row lock serializes concurrent updates for
// one renter.
type Tracker interface {
	Record(ctx context.Context, tx *sql.Tx, renterAccountID int64, rentalDate time.Time) error
}

type tracker struct{ r Repo }

func New(r Repo) Tracker { return &tracker{r: r} }

// Advance computes the new streak value. A rental the day after the last
// one extends the streak, a repeat on the same day keeps it, anything else
// starts a new streak of 1.
func Advance(last *time.Time, current int, rentalDate time.Time) int {
	day := truncate(rentalDate)
	if last == nil {
		return 1
	}
	switch prev := truncate(*last); {
	case prev.Equal(day):
		return current
	case prev.AddDate(0, 0, 1).Equal(day):
		return current + 1
	default:
		return 1
	}
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *tracker) Record(ctx context.Context, tx *sql.Tx, renterAccountID int64, rentalDate time.Time) error {
	p, err := s.r.RenterProfileForUpdate(ctx, tx, renterAccountID)
	if err != nil {
		return err
	}
	streak := Advance(p.LastRentDate, p.MaxRentStreak, rentalDate)
	return s.r.UpdateRenterStreak(ctx, tx, renterAccountID, truncate(rentalDate), streak)
}
