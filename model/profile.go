package model

import "time"

// RenterProfile holds the issued human-readable renter id and the streak
// bookkeeping. Created once per renter account; only the streak fields mutate.
type RenterProfile struct {
	AccountID          int64      `json:"account_id"`
	RenterID           string     `json:"renter_id"`
	Institution        string     `json:"institution"`
	PhoneNumber        string     `json:"phone_number"`
	RegistrationNumber string     `json:"registration_number"`
	LastRentDate       *time.Time `json:"last_rent_date,omitempty"`
	MaxRentStreak      int        `json:"max_rent_streak"`
}

type RenteeProfile struct {
	AccountID int64  `json:"account_id"`
	RenteeID  string `json:"rentee_id"`
}
