package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChargeResponse struct {
	ID           int64           `json:"id"`
	Value        decimal.Decimal `json:"value"`
	Description  *string         `json:"description,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	OriginatorID int64           `json:"originator_id"`
	RecipientID  int64           `json:"recipient_id"`
}

type CreateChargeRequest struct {
	UserID       int64           `json:"-" validate:"required"`
	Value        decimal.Decimal `json:"value"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,max=255"`
	RecipientCPF string          `json:"recipient_cpf" validate:"required,cpf"`
}

type CancelChargeRequest struct {
	UserID   int64 `json:"-" validate:"required"`
	ChargeID int64 `json:"-" validate:"required"`
}

type CancelChargeResponse struct {
	Charge   ChargeResponse `json:"charge"`
	Refunded bool           `json:"refunded"`
}

type ListChargesRequest struct {
	UserID int64  `json:"-" validate:"required"`
	Status string `query:"status" validate:"omitempty,oneof=pending paid cancelled"`
}
