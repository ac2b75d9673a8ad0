package usersvc

import (
	"context"
	"errors"

	"bikerental/model"
)

var ErrForbidden = errors.New("admin only")

type Repo interface {
	List(ctx context.Context) ([]model.Account, error)
}

// Service exposes the admin-only account listing.
type Service interface {
	List(ctx context.Context, role model.Role) ([]model.Account, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, role model.Role) ([]model.Account, error) {
	if role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.r.List(ctx)
}
