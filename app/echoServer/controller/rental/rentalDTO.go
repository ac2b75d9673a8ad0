package rental

type RentBikeReq struct {
	AmountPaid int64 `json:"amount_paid" validate:"gte=0"`
}
