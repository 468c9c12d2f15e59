package ledger

import (
	"context"
	"fmt"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/log"

	"github.com/shopspring/decimal"
)

// Authorizer is the card authorization boundary.
type Authorizer interface {
	Authorize(ctx context.Context) (bool, error)
}

type SettlementEngine struct {
	Store      repository.Store
	Authorizer Authorizer
	Log        log.Log
}

func NewSettlementEngine(store repository.Store, authorizer Authorizer, logger log.Log) *SettlementEngine {
	return &SettlementEngine{Store: store, Authorizer: authorizer, Log: logger}
}

// PayByBalance moves the charge value from payer to recipient and marks the charge paid.
func (e *SettlementEngine) PayByBalance(ctx context.Context, chargeID, payerID int64) (*entity.Transaction, error) {
	var trx *entity.Transaction
	err := e.Store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		charge, err := lockPendingCharge(ctx, tx, chargeID)
		if err != nil {
			return err
		}
		if payerID == charge.RecipientID {
			return entity.NewError(entity.KindSelfDealing, "cannot pay a charge addressed to yourself")
		}

		users, err := tx.LockUsers(ctx, payerID, charge.RecipientID)
		if err != nil {
			return err
		}
		payer := users[payerID]
		if payer.Balance.LessThan(charge.Value) {
			return entity.NewError(entity.KindInsufficientFunds,
				fmt.Sprintf("balance %s is below charge value %s", payer.Balance, charge.Value))
		}

		if err := tx.AdjustBalance(ctx, payer.ID, charge.Value.Neg()); err != nil {
			return err
		}
		if err := tx.AdjustBalance(ctx, charge.RecipientID, charge.Value); err != nil {
			return err
		}
		if err := markPaid(ctx, tx, charge.ID); err != nil {
			return err
		}
		trx = approved(entity.TransactionBalancePayment, charge.Value, payerID, &charge.ID)
		return tx.InsertTransaction(ctx, trx)
	})
	if err != nil {
		return nil, err
	}
	e.Log.Info("settlement-engine", fmt.Sprintf("charge %d paid by balance", chargeID), "PayByBalance", trx.Amount.String())
	return trx, nil
}

// PayByCard marks the charge paid once the authorizer approves. Card funds
// never touch ledger balances.
func (e *SettlementEngine) PayByCard(ctx context.Context, chargeID, payerID int64) (*entity.Transaction, error) {
	if err := e.authorize(ctx, "PayByCard"); err != nil {
		return nil, err
	}

	var trx *entity.Transaction
	err := e.Store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		charge, err := lockPendingCharge(ctx, tx, chargeID)
		if err != nil {
			return err
		}
		if err := markPaid(ctx, tx, charge.ID); err != nil {
			return err
		}
		trx = approved(entity.TransactionCardPayment, charge.Value, payerID, &charge.ID)
		return tx.InsertTransaction(ctx, trx)
	})
	if err != nil {
		return nil, err
	}
	e.Log.Info("settlement-engine", fmt.Sprintf("charge %d paid by card", chargeID), "PayByCard", trx.Amount.String())
	return trx, nil
}

// Deposit credits the user's balance once the authorizer approves.
func (e *SettlementEngine) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, entity.NewError(entity.KindInvalidAmount, "deposit amount must be greater than zero")
	}
	if err := e.authorize(ctx, "Deposit"); err != nil {
		return nil, err
	}

	var trx *entity.Transaction
	err := e.Store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if _, err := tx.LockUsers(ctx, userID); err != nil {
			return err
		}
		if err := tx.AdjustBalance(ctx, userID, amount); err != nil {
			return err
		}
		trx = approved(entity.TransactionDeposit, amount, userID, nil)
		return tx.InsertTransaction(ctx, trx)
	})
	if err != nil {
		return nil, err
	}
	e.Log.Info("settlement-engine", fmt.Sprintf("deposit for user %d", userID), "Deposit", amount.String())
	return trx, nil
}

func (e *SettlementEngine) authorize(ctx context.Context, scope string) error {
	ok, err := e.Authorizer.Authorize(ctx)
	if err != nil {
		e.Log.Error("settlement-engine", "authorizer failed", scope, err.Error())
		return err
	}
	if !ok {
		return entity.NewError(entity.KindNotAuthorized, "operation not authorized by the external authorizer")
	}
	return nil
}

func lockPendingCharge(ctx context.Context, tx repository.Tx, chargeID int64) (*entity.Charge, error) {
	charge, err := tx.LockCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge.Status != entity.ChargePending {
		return nil, entity.NewError(entity.KindInvalidState, fmt.Sprintf("charge is %s, not pending", charge.Status))
	}
	return charge, nil
}

func markPaid(ctx context.Context, tx repository.Tx, chargeID int64) error {
	ok, err := tx.UpdateChargeStatus(ctx, chargeID, entity.ChargePending, entity.ChargePaid)
	if err != nil {
		return err
	}
	if !ok {
		return entity.NewError(entity.KindInvalidState, "charge was settled concurrently")
	}
	return nil
}

func approved(kind entity.TransactionType, amount decimal.Decimal, userID int64, chargeID *int64) *entity.Transaction {
	return &entity.Transaction{
		Type:     kind,
		Amount:   amount,
		Status:   entity.TransactionApproved,
		UserID:   userID,
		ChargeID: chargeID,
	}
}
