package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bikerental/model"
	identitysvc "bikerental/service/identity"
	"bikerental/util/hash"
	jwtutil "bikerental/util/jwt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrCode string

const (
	ErrEmailTaken    ErrCode = "EMAIL_TAKEN"
	ErrUsernameTaken ErrCode = "USERNAME_TAKEN"
	ErrInvalidCreds  ErrCode = "INVALID_CREDENTIALS"
	ErrBadInput      ErrCode = "BAD_INPUT"
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

type Users interface {
	CreateAccount(ctx context.Context, tx *sql.Tx, u *model.Account) error
	ByEmail(ctx context.Context, email string) (*model.Account, error)
	InsertRenterProfile(ctx context.Context, tx *sql.Tx, p *model.RenterProfile) error
	InsertRenteeProfile(ctx context.Context, tx *sql.Tx, p *model.RenteeProfile) error
}

type Wallets interface {
	InsertWallet(ctx context.Context, tx *sql.Tx, accountID int64) error
}

type Service interface {
	// RegisterRenter creates the account, issued renter id, profile and
	// wallet as one transactional step and returns a signed token.
	RegisterRenter(ctx context.Context, req model.RegisterRenterReq) (*model.Account, string, error)
	RegisterRentee(ctx context.Context, req model.RegisterRenteeReq) (*model.Account, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.Account, string, error)
}

type service struct {
	db      *sql.DB
	users   Users
	ids     identitysvc.Service
	wallets Wallets
	secret  string
}

func New(db *sql.DB, users Users, ids identitysvc.Service, wallets Wallets, secret string) Service {
	return &service{db: db, users: users, ids: ids, wallets: wallets, secret: secret}
}

func (s *service) RegisterRenter(ctx context.Context, req model.RegisterRenterReq) (*model.Account, string, error) {
	u := &model.Account{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Username:  strings.TrimSpace(req.Username),
		Role:      model.RoleRenter,
	}
	return s.register(ctx, u, req.Password, func(tx *sql.Tx, issuedID string) error {
		return s.users.InsertRenterProfile(ctx, tx, &model.RenterProfile{
			AccountID:          u.ID,
			RenterID:           issuedID,
			Institution:        req.Institution,
			PhoneNumber:        req.PhoneNumber,
			RegistrationNumber: req.RegistrationNumber,
		})
	})
}

func (s *service) RegisterRentee(ctx context.Context, req model.RegisterRenteeReq) (*model.Account, string, error) {
	u := &model.Account{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Username:  strings.TrimSpace(req.Username),
		Role:      model.RoleRentee,
	}
	return s.register(ctx, u, req.Password, func(tx *sql.Tx, issuedID string) error {
		return s.users.InsertRenteeProfile(ctx, tx, &model.RenteeProfile{
			AccountID: u.ID,
			RenteeID:  issuedID,
		})
	})
}

func (s *service) register(ctx context.Context, u *model.Account, password string, insertProfile func(tx *sql.Tx, issuedID string) error) (_ *model.Account, _ string, err error) {
	if u.Email == "" || u.Username == "" || len(password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u.PasswordHash = hashed

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.users.CreateAccount(ctx, tx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			err = derr
		}
		return nil, "", err
	}

	issuedID, err := s.ids.Issue(ctx, tx, u.Role)
	if err != nil {
		return nil, "", err
	}
	if err = insertProfile(tx, issuedID); err != nil {
		return nil, "", err
	}
	if err = s.wallets.InsertWallet(ctx, tx, u.ID); err != nil {
		return nil, "", err
	}

	if err = tx.Commit(); err != nil {
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Role), 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.Account, string, error) {
	u, err := s.users.ByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Role), 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "accounts_email") || strings.Contains(msg, "email") {
			return makeErr(ErrEmailTaken)
		}
		if strings.Contains(cn, "accounts_username") || strings.Contains(msg, "username") {
			return makeErr(ErrUsernameTaken)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}
