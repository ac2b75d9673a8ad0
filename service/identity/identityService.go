package identitysvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bikerental/model"
)

type ErrCode string

const (
	ErrMalformedID ErrCode = "MALFORMED_ID"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const (
	startLetter = 'A'
	maxNumber   = 9999
)

// NextID returns the successor of the last issued id in the
// <letter>-<4-digit> scheme. An empty last value starts the sequence at
// A-0001. The number rolls over at 9999 and advances the letter, wrapping
// Z back to A.
func NextID(last string) (string, error) {
	if last == "" {
		return fmt.Sprintf("%c-%04d", startLetter, 1), nil
	}

	letterStr, numberStr, ok := strings.Cut(last, "-")
	if !ok || len(letterStr) != 1 || len(numberStr) != 4 {
		return "", codedError{code: ErrMalformedID}
	}
	letter := rune(letterStr[0])
	if letter < 'A' || letter > 'Z' {
		return "", codedError{code: ErrMalformedID}
	}
	number, err := strconv.Atoi(numberStr)
	if err != nil || number < 1 || number > maxNumber {
		return "", codedError{code: ErrMalformedID}
	}

	number++
	if number > maxNumber {
		number = 1
		letter = rune((int(letter)-'A'+1)%26 + 'A')
	}
	return fmt.Sprintf("%c-%04d", letter, number), nil
}

type Repo interface {
	LastIssuedForUpdate(ctx context.Context, tx *sql.Tx, role model.Role) (string, error)
	SetLastIssued(ctx context.Context, tx *sql.Tx, role model.Role, id string) error
}

// Service issues ids inside the caller's transaction. The cursor row lock
// keeps concurrent registrations from receiving the same id.
type Service interface {
	Issue(ctx context.Context, tx *sql.Tx, role model.Role) (string, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Issue(ctx context.Context, tx *sql.Tx, role model.Role) (string, error) {
	last, err := s.r.LastIssuedForUpdate(ctx, tx, role)
	if err != nil {
		return "", err
	}
	id, err := NextID(last)
	if err != nil {
		return "", err
	}
	if err := s.r.SetLastIssued(ctx, tx, role, id); err != nil {
		return "", err
	}
	return id, nil
}
