package bikesvc

import (
	"context"
	"database/sql"
	"errors"

	"bikerental/model"

	"github.com/google/uuid"
)

type ErrCode string

const (
	ErrForbidden  ErrCode = "FORBIDDEN"
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
	Insert(ctx context.Context, b *model.Bike) error
	List(ctx context.Context) ([]model.Bike, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Bike, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Bike, error)
}

type Service interface {
	Create(ctx context.Context, ownerID int64, role model.Role, brand string, rentalPrice int64) (*model.Bike, error)

	// List shows a renter their own fleet; everyone else sees all bikes.
	List(ctx context.Context, accountID int64, role model.Role) ([]model.Bike, error)
	Detail(ctx context.Context, id uuid.UUID) (*model.Bike, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, ownerID int64, role model.Role, brand string, rentalPrice int64) (*model.Bike, error) {
	if role != model.RoleRenter {
		return nil, makeErr(ErrForbidden)
	}
	if brand == "" || rentalPrice <= 0 {
		return nil, makeErr(ErrValidation)
	}
	b := &model.Bike{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Brand:       brand,
		RentalPrice: rentalPrice,
	}
	if err := s.r.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, accountID int64, role model.Role) ([]model.Bike, error) {
	if role == model.RoleRenter {
		return s.r.ListByOwner(ctx, accountID)
	}
	return s.r.List(ctx)
}

func (s *service) Detail(ctx context.Context, id uuid.UUID) (*model.Bike, error) {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}
