// Package ledger holds the charge lifecycle and the settlement operations.
// Every operation that touches more than one row runs inside a single
// repository unit of work.
package ledger

import (
	"context"
	"fmt"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/cpf"
	"payment-gateway/src/pkg/log"

	"github.com/shopspring/decimal"
)

type ChargeManager struct {
	Store repository.Store
	Log   log.Log
}

func NewChargeManager(store repository.Store, logger log.Log) *ChargeManager {
	return &ChargeManager{Store: store, Log: logger}
}

// CancelOutcome reports the cancelled charge and whether a balance refund happened.
type CancelOutcome struct {
	Charge   *entity.Charge
	Refunded bool
}

func (m *ChargeManager) Create(ctx context.Context, value decimal.Decimal, description *string, recipientCPF string, originatorID int64) (*entity.Charge, error) {
	if !value.IsPositive() {
		return nil, entity.NewError(entity.KindInvalidAmount, "charge value must be greater than zero")
	}

	recipient, err := m.Store.FindUserByCPF(ctx, cpf.Normalize(recipientCPF))
	if err != nil {
		if entity.KindOf(err) == entity.KindNotFound {
			return nil, entity.NewError(entity.KindNotFound, "recipient not found")
		}
		return nil, err
	}
	if recipient.ID == originatorID {
		return nil, entity.NewError(entity.KindSelfDealing, "cannot create a charge for yourself")
	}
	if _, err := m.Store.FindUserByID(ctx, originatorID); err != nil {
		return nil, err
	}

	charge := &entity.Charge{
		Value:        value,
		Description:  description,
		Status:       entity.ChargePending,
		OriginatorID: originatorID,
		RecipientID:  recipient.ID,
	}
	if err := m.Store.CreateCharge(ctx, charge); err != nil {
		return nil, err
	}
	m.Log.Info("charge-manager", fmt.Sprintf("charge %d created", charge.ID), "Create", value.String())
	return charge, nil
}

func (m *ChargeManager) Cancel(ctx context.Context, chargeID, requesterID int64) (*CancelOutcome, error) {
	var outcome *CancelOutcome
	err := m.Store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		charge, err := tx.LockCharge(ctx, chargeID)
		if err != nil {
			return err
		}
		if charge.OriginatorID != requesterID {
			return entity.NewError(entity.KindForbidden, "only the originator can cancel this charge")
		}

		switch charge.Status {
		case entity.ChargePending:
			if err := m.transition(ctx, tx, charge, entity.ChargePending, entity.ChargeCancelled); err != nil {
				return err
			}
			outcome = &CancelOutcome{Charge: charge}
			return nil
		case entity.ChargePaid:
			if err := m.refund(ctx, tx, charge); err != nil {
				return err
			}
			outcome = &CancelOutcome{Charge: charge, Refunded: true}
			return nil
		default:
			return entity.NewError(entity.KindInvalidState, fmt.Sprintf("charge is %s and cannot be cancelled", charge.Status))
		}
	})
	if err != nil {
		return nil, err
	}
	m.Log.Info("charge-manager", fmt.Sprintf("charge %d cancelled", chargeID), "Cancel", fmt.Sprintf("refunded=%t", outcome.Refunded))
	return outcome, nil
}

// refund reverses a balance payment. Card payments have no refund path.
func (m *ChargeManager) refund(ctx context.Context, tx repository.Tx, charge *entity.Charge) error {
	settling, err := tx.FindSettlingTransaction(ctx, charge.ID)
	if err != nil {
		if entity.KindOf(err) == entity.KindNotFound {
			return entity.NewError(entity.KindRefundFailure, "no settling transaction to reverse")
		}
		return err
	}
	if settling.Type != entity.TransactionBalancePayment {
		return entity.NewError(entity.KindRefundFailure, fmt.Sprintf("%s settlements cannot be refunded", settling.Type))
	}

	users, err := tx.LockUsers(ctx, settling.UserID, charge.RecipientID)
	if err != nil {
		if entity.KindOf(err) == entity.KindNotFound {
			return entity.WrapError(entity.KindRefundFailure, "payer or recipient not found for refund", err)
		}
		return err
	}
	if err := tx.AdjustBalance(ctx, users[settling.UserID].ID, charge.Value); err != nil {
		return err
	}
	if err := tx.AdjustBalance(ctx, users[charge.RecipientID].ID, charge.Value.Neg()); err != nil {
		return err
	}
	return m.transition(ctx, tx, charge, entity.ChargePaid, entity.ChargeCancelled)
}

func (m *ChargeManager) transition(ctx context.Context, tx repository.Tx, charge *entity.Charge, from, to entity.ChargeStatus) error {
	ok, err := tx.UpdateChargeStatus(ctx, charge.ID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return entity.NewError(entity.KindInvalidState, fmt.Sprintf("charge is no longer %s", from))
	}
	charge.Status = to
	return nil
}

func (m *ChargeManager) ListSent(ctx context.Context, userID int64, status *entity.ChargeStatus) ([]entity.Charge, error) {
	return m.Store.ListCharges(ctx, entity.ChargeFilter{OriginatorID: &userID, Status: status})
}

func (m *ChargeManager) ListReceived(ctx context.Context, userID int64, status *entity.ChargeStatus) ([]entity.Charge, error) {
	return m.Store.ListCharges(ctx, entity.ChargeFilter{RecipientID: &userID, Status: status})
}
