package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    int64           `json:"user_id"`
	ChargeID  *int64          `json:"charge_id,omitempty"`
}

type PayByBalanceRequest struct {
	UserID   int64 `json:"-" validate:"required"`
	ChargeID int64 `json:"charge_id" validate:"required,gt=0"`
}

// Card data is validated and then discarded; it is never persisted.
type PayByCardRequest struct {
	UserID         int64  `json:"-" validate:"required"`
	ChargeID       int64  `json:"charge_id" validate:"required,gt=0"`
	CardNumber     string `json:"card_number" validate:"required,credit_card"`
	ExpirationDate string `json:"expiration_date" validate:"required,len=5"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

type DepositRequest struct {
	UserID int64           `json:"-" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type ListTransactionsRequest struct {
	UserID int64 `json:"-" validate:"required"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	FetchedAt    time.Time             `json:"fetched_at"`
}
