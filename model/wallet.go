package model

import "time"

type Wallet struct {
	AccountID   int64      `json:"account_id"`
	Balance     int64      `json:"balance"`
	LastTopupAt *time.Time `json:"last_topup_at,omitempty"`
}

type LedgerType string

const (
	LedgerTopup  LedgerType = "TOPUP"
	LedgerCharge LedgerType = "RENTAL_CHARGE"
	LedgerPayout LedgerType = "RENTAL_PAYOUT"
)

type WalletLedger struct {
	ID           int64      `json:"id"`
	AccountID    int64      `json:"account_id"`
	EntryType    LedgerType `json:"entry_type"`
	Amount       int64      `json:"amount"`
	BalanceAfter int64      `json:"balance_after"`
	CreatedAt    time.Time  `json:"created_at"`
}

type TopupReq struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}
