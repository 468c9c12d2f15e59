package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event interface {
	GetId() string
}

type ChargeEvent struct {
	EventID      string          `json:"event_id"`
	Action       string          `json:"action"`
	ChargeID     int64           `json:"charge_id"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"`
	OriginatorID int64           `json:"originator_id"`
	RecipientID  int64           `json:"recipient_id"`
	Refunded     bool            `json:"refunded,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func (e *ChargeEvent) GetId() string {
	return e.EventID
}

type TransactionEvent struct {
	EventID       string          `json:"event_id"`
	TransactionID int64           `json:"transaction_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	UserID        int64           `json:"user_id"`
	ChargeID      *int64          `json:"charge_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func (e *TransactionEvent) GetId() string {
	return e.EventID
}
