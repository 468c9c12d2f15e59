package converter

import (
	"time"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/model"

	"github.com/google/uuid"
)

func ChargeToResponse(charge *entity.Charge) *model.ChargeResponse {
	return &model.ChargeResponse{
		ID:           charge.ID,
		Value:        charge.Value,
		Description:  charge.Description,
		Status:       string(charge.Status),
		CreatedAt:    charge.CreatedAt,
		OriginatorID: charge.OriginatorID,
		RecipientID:  charge.RecipientID,
	}
}

func ChargesToResponse(charges []entity.Charge) []model.ChargeResponse {
	responses := make([]model.ChargeResponse, 0, len(charges))
	for i := range charges {
		responses = append(responses, *ChargeToResponse(&charges[i]))
	}
	return responses
}

func ChargeToEvent(charge *entity.Charge, action string, refunded bool) *model.ChargeEvent {
	return &model.ChargeEvent{
		EventID:      uuid.NewString(),
		Action:       action,
		ChargeID:     charge.ID,
		Value:        charge.Value,
		Status:       string(charge.Status),
		OriginatorID: charge.OriginatorID,
		RecipientID:  charge.RecipientID,
		Refunded:     refunded,
		OccurredAt:   time.Now().UTC(),
	}
}
