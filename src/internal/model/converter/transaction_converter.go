package converter

import (
	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/model"

	"github.com/google/uuid"
)

func TransactionToResponse(trx *entity.Transaction) *model.TransactionResponse {
	return &model.TransactionResponse{
		ID:        trx.ID,
		Type:      string(trx.Type),
		Amount:    trx.Amount,
		Status:    string(trx.Status),
		CreatedAt: trx.CreatedAt,
		UserID:    trx.UserID,
		ChargeID:  trx.ChargeID,
	}
}

func TransactionsToResponse(trxs []entity.Transaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, 0, len(trxs))
	for i := range trxs {
		responses = append(responses, *TransactionToResponse(&trxs[i]))
	}
	return responses
}

func TransactionToEvent(trx *entity.Transaction) *model.TransactionEvent {
	return &model.TransactionEvent{
		EventID:       uuid.NewString(),
		TransactionID: trx.ID,
		Type:          string(trx.Type),
		Amount:        trx.Amount,
		UserID:        trx.UserID,
		ChargeID:      trx.ChargeID,
		OccurredAt:    trx.CreatedAt,
	}
}
