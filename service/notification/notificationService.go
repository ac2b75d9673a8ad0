package notifsvc

import (
	"context"
	"errors"

	"bikerental/model"
	notifrepo "bikerental/repository/notification"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Service interface {
	List(ctx context.Context, accountID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, accountID int64, id uuid.UUID) error
}

type service struct{ r notifrepo.Repo }

func New(r notifrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, accountID int64) ([]model.Notification, error) {
	return s.r.ListByAccount(ctx, accountID)
}

func (s *service) MarkRead(ctx context.Context, accountID int64, id uuid.UUID) error {
	ok, err := s.r.MarkRead(ctx, id, accountID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
