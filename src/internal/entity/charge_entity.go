package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChargeStatus string

const (
	ChargePending   ChargeStatus = "pending"
	ChargePaid      ChargeStatus = "paid"
	ChargeCancelled ChargeStatus = "cancelled"
)

func (s ChargeStatus) Valid() bool {
	switch s {
	case ChargePending, ChargePaid, ChargeCancelled:
		return true
	}
	return false
}

type Charge struct {
	ID           int64           `json:"id" db:"id"`
	Value        decimal.Decimal `json:"value" db:"value"`
	Description  *string         `json:"description,omitempty" db:"description"`
	Status       ChargeStatus    `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	OriginatorID int64           `json:"originator_id" db:"originator_id"`
	RecipientID  int64           `json:"recipient_id" db:"recipient_id"`
}

// ChargeFilter selects charges sent (OriginatorID) or received (RecipientID) by a user.
type ChargeFilter struct {
	OriginatorID *int64
	RecipientID  *int64
	Status       *ChargeStatus
}
