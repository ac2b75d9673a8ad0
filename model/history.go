package model

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	BikeRented   EventKind = "BIKE_RENTED"
	BikeReturned EventKind = "BIKE_RETURNED"
	RenterRental EventKind = "RENTER_RENTAL"
	RenteeRental EventKind = "RENTEE_RENTAL"
)

// History is an append-only audit record. Rows are never updated; the
// references are plain FKs with ON DELETE CASCADE so deleting a bike drops
// its trail.
type History struct {
	ID              uuid.UUID  `json:"id"`
	RentalStatus    EventKind  `json:"rental_status"`
	BikeID          *uuid.UUID `json:"bike_id,omitempty"`
	RenteeID        *int64     `json:"rentee_id,omitempty"`
	RenterID        *int64     `json:"renter_id,omitempty"`
	AmountPaid      int64      `json:"amount_paid"`
	RentalStartTime *time.Time `json:"rental_start_time,omitempty"`
	RentalEndTime   *time.Time `json:"rental_end_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type StandaloneRentalReq struct {
	AmountPaid int64 `json:"amount_paid" validate:"gte=0"`
}
