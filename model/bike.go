package model

import (
	"time"

	"github.com/google/uuid"
)

// Bike belongs to a renter. rented is true iff rented_by is set; both flip
// together inside the ledger transaction.
type Bike struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Brand       string    `json:"brand"`
	RentalPrice int64     `json:"rental_price"`
	Rented      bool      `json:"rented"`
	RentedBy    *int64    `json:"rented_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateBikeReq struct {
	Brand       string `json:"brand" validate:"required"`
	RentalPrice int64  `json:"rental_price" validate:"required,gt=0"`
}
