package model

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleRenter Role = "RENTER"
	RoleRentee Role = "RENTEE"
)

type Account struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRenterReq carries the extra renter fields the base account doesn't have.
type RegisterRenterReq struct {
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name"`
	Email              string `json:"email" validate:"required,email"`
	Username           string `json:"username" validate:"required"`
	Password           string `json:"password" validate:"required,min=6"`
	Institution        string `json:"institution" validate:"required"`
	PhoneNumber        string `json:"phone_number" validate:"required,max=10"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
}

type RegisterRenteeReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
