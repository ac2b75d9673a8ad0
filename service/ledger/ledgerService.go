package ledgersvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bikerental/model"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrForbidden    ErrCode = "FORBIDDEN"
	ErrConflict     ErrCode = "CONFLICT"
	ErrNotFound     ErrCode = "NOT_FOUND"
	ErrValidation   ErrCode = "VALIDATION"
	ErrInsufficient ErrCode = "INSUFFICIENT_FUNDS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Actor is the authenticated caller as the transport layer resolved it.
// The ledger trusts the role; it never re-authenticates.
type Actor struct {
	ID   int64
	Role model.Role
}

// allowedRole is the permission table for the log operations. A role
// mismatch is always surfaced as FORBIDDEN, never a silent no-op.
var allowedRole = map[model.EventKind]model.Role{
	model.BikeRented:   model.RoleRentee,
	model.BikeReturned: model.RoleRentee,
	model.RenterRental: model.RoleRenter,
	model.RenteeRental: model.RoleRentee,
}

func checkRole(kind model.EventKind, actor Actor) error {
	if actor.Role != allowedRole[kind] {
		return makeErr(ErrForbidden)
	}
	return nil
}

type BikeRepo interface {
	GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Bike, error)
	MarkRented(ctx context.Context, tx *sql.Tx, id uuid.UUID, renteeID int64) error
	MarkReturned(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}

type HistoryRepo interface {
	Insert(ctx context.Context, tx *sql.Tx, h *model.History) error
	ListByRenter(ctx context.Context, renterID int64) ([]model.History, error)
	ListByRentee(ctx context.Context, renteeID int64) ([]model.History, error)
	ListAll(ctx context.Context) ([]model.History, error)
}

type WalletRepo interface {
	BalanceForUpdate(ctx context.Context, tx *sql.Tx, accountID int64) (int64, error)
	UpdateBalance(ctx context.Context, tx *sql.Tx, accountID int64, newBalance int64) error
	InsertLedger(ctx context.Context, tx *sql.Tx, accountID int64, entryType model.LedgerType, amount, balanceAfter int64) error
}

type NotificationRepo interface {
	Insert(ctx context.Context, tx *sql.Tx, n *model.Notification) error
}

type StreakTracker interface {
	Record(ctx context.Context, tx *sql.Tx, renterAccountID int64, rentalDate time.Time) error
}

// EventRecorder is satisfied by the metrics collector.
type EventRecorder interface {
	RecordLedgerEvent(kind string)
}

type Service interface {
	// LogBikeRented moves the bike to rented, charges the rentee's wallet,
	// pays the owner and appends a BIKE_RENTED event, all in one
	// transaction. amountPaid 0 means "charge the listed price".
	LogBikeRented(ctx context.Context, actor Actor, bikeID uuid.UUID, amountPaid int64) (*model.History, error)

	// LogBikeReturned frees the bike and appends a BIKE_RETURNED event.
	LogBikeReturned(ctx context.Context, actor Actor, bikeID uuid.UUID) (*model.History, error)

	// LogRenterRental appends a standalone RENTER_RENTAL event and advances
	// the acting renter's streak in the same transaction.
	LogRenterRental(ctx context.Context, actor Actor, amountPaid int64) (*model.History, error)

	// LogRenteeRental appends a standalone RENTEE_RENTAL event.
	LogRenteeRental(ctx context.Context, actor Actor, amountPaid int64) (*model.History, error)

	// QueryHistory lists events scoped to the actor's role: renters see
	// their renter-side events, rentees their rentee-side events, admins
	// everything. Creation order.
	QueryHistory(ctx context.Context, actor Actor) ([]model.History, error)
}

type service struct {
	db      *sql.DB
	bikes   BikeRepo
	history HistoryRepo
	wallets WalletRepo
	notifs  NotificationRepo
	streaks StreakTracker
	events  EventRecorder
}

func New(db *sql.DB, b BikeRepo, h HistoryRepo, w WalletRepo, n NotificationRepo, st StreakTracker, ev EventRecorder) Service {
	return &service{db: db, bikes: b, history: h, wallets: w, notifs: n, streaks: st, events: ev}
}

func (s *service) LogBikeRented(ctx context.Context, actor Actor, bikeID uuid.UUID, amountPaid int64) (_ *model.History, err error) {
	if err := checkRole(model.BikeRented, actor); err != nil {
		return nil, err
	}
	if amountPaid < 0 {
		return nil, makeErr(ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bike, err := s.bikes.GetForUpdate(ctx, tx, bikeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if bike.Rented {
		return nil, makeErr(ErrConflict)
	}

	amount := amountPaid
	if amount == 0 {
		amount = bike.RentalPrice
	}

	if err = s.transfer(ctx, tx, actor.ID, bike.OwnerID, amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	h := &model.History{
		ID:              uuid.New(),
		RentalStatus:    model.BikeRented,
		BikeID:          &bike.ID,
		RenteeID:        &actor.ID,
		RenterID:        &bike.OwnerID,
		AmountPaid:      amount,
		RentalStartTime: &now,
	}
	if err = s.history.Insert(ctx, tx, h); err != nil {
		return nil, err
	}
	if err = s.bikes.MarkRented(ctx, tx, bike.ID, actor.ID); err != nil {
		return nil, err
	}
	if err = s.notify(ctx, tx, bike.OwnerID, fmt.Sprintf("Your %s bike was rented", bike.Brand)); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	s.events.RecordLedgerEvent(string(model.BikeRented))
	return h, nil
}

func (s *service) LogBikeReturned(ctx context.Context, actor Actor, bikeID uuid.UUID) (_ *model.History, err error) {
	if err := checkRole(model.BikeReturned, actor); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bike, err := s.bikes.GetForUpdate(ctx, tx, bikeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !bike.Rented {
		return nil, makeErr(ErrConflict)
	}

	now := time.Now().UTC()
	h := &model.History{
		ID:            uuid.New(),
		RentalStatus:  model.BikeReturned,
		BikeID:        &bike.ID,
		RentalEndTime: &now,
	}
	if err = s.history.Insert(ctx, tx, h); err != nil {
		return nil, err
	}
	if err = s.bikes.MarkReturned(ctx, tx, bike.ID); err != nil {
		return nil, err
	}
	if err = s.notify(ctx, tx, bike.OwnerID, fmt.Sprintf("Your %s bike was returned", bike.Brand)); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	s.events.RecordLedgerEvent(string(model.BikeReturned))
	return h, nil
}

func (s *service) LogRenterRental(ctx context.Context, actor Actor, amountPaid int64) (_ *model.History, err error) {
	if err := checkRole(model.RenterRental, actor); err != nil {
		return nil, err
	}
	if amountPaid < 0 {
		return nil, makeErr(ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	h := &model.History{
		ID:           uuid.New(),
		RentalStatus: model.RenterRental,
		RenterID:     &actor.ID,
		AmountPaid:   amountPaid,
	}
	if err = s.history.Insert(ctx, tx, h); err != nil {
		return nil, err
	}
	if err = s.streaks.Record(ctx, tx, actor.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	s.events.RecordLedgerEvent(string(model.RenterRental))
	return h, nil
}

func (s *service) LogRenteeRental(ctx context.Context, actor Actor, amountPaid int64) (_ *model.History, err error) {
	if err := checkRole(model.RenteeRental, actor); err != nil {
		return nil, err
	}
	if amountPaid < 0 {
		return nil, makeErr(ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	h := &model.History{
		ID:           uuid.New(),
		RentalStatus: model.RenteeRental,
		RenteeID:     &actor.ID,
		AmountPaid:   amountPaid,
	}
	if err = s.history.Insert(ctx, tx, h); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	s.events.RecordLedgerEvent(string(model.RenteeRental))
	return h, nil
}

func (s *service) QueryHistory(ctx context.Context, actor Actor) ([]model.History, error) {
	switch actor.Role {
	case model.RoleRenter:
		return s.history.ListByRenter(ctx, actor.ID)
	case model.RoleRentee:
		return s.history.ListByRentee(ctx, actor.ID)
	case model.RoleAdmin:
		return s.history.ListAll(ctx)
	default:
		return nil, makeErr(ErrForbidden)
	}
}

// transfer debits the rentee and credits the owner, writing both ledger
// entries against the locked balances.
func (s *service) transfer(ctx context.Context, tx *sql.Tx, fromID, toID, amount int64) error {
	fromBal, err := s.wallets.BalanceForUpdate(ctx, tx, fromID)
	if err != nil {
		return err
	}
	if fromBal < amount {
		return makeErr(ErrInsufficient)
	}
	if err := s.wallets.UpdateBalance(ctx, tx, fromID, fromBal-amount); err != nil {
		return err
	}
	if err := s.wallets.InsertLedger(ctx, tx, fromID, model.LedgerCharge, -amount, fromBal-amount); err != nil {
		return err
	}

	toBal, err := s.wallets.BalanceForUpdate(ctx, tx, toID)
	if err != nil {
		return err
	}
	if err := s.wallets.UpdateBalance(ctx, tx, toID, toBal+amount); err != nil {
		return err
	}
	return s.wallets.InsertLedger(ctx, tx, toID, model.LedgerPayout, amount, toBal+amount)
}

func (s *service) notify(ctx context.Context, tx *sql.Tx, accountID int64, content string) error {
	return s.notifs.Insert(ctx, tx, &model.Notification{
		ID:        uuid.New(),
		AccountID: accountID,
		Content:   content,
	})
}
