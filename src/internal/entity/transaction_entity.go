package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBalancePayment TransactionType = "balance_payment"
	TransactionCardPayment    TransactionType = "card_payment"
	TransactionDeposit        TransactionType = "deposit"
)

type TransactionStatus string

const (
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// Transaction is append-only; a refund reverses balances without touching it.
type Transaction struct {
	ID        int64             `json:"id" db:"id"`
	Type      TransactionType   `json:"type" db:"type"`
	Amount    decimal.Decimal   `json:"amount" db:"amount"`
	Status    TransactionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UserID    int64             `json:"user_id" db:"user_id"`
	ChargeID  *int64            `json:"charge_id,omitempty" db:"charge_id"`
}
