package usecase

import (
	"context"
	"fmt"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/gateway/messaging"
	"payment-gateway/src/internal/ledger"
	"payment-gateway/src/internal/model"
	"payment-gateway/src/internal/model/converter"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type PaymentUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Store          repository.Reader
	Engine         *ledger.SettlementEngine
	LedgerProducer *messaging.LedgerProducer
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.Reader,
	engine *ledger.SettlementEngine,
	ledgerProducer *messaging.LedgerProducer,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:            logger,
		Validate:       validate,
		Store:          store,
		Engine:         engine,
		LedgerProducer: ledgerProducer,
	}
}

func (c *PaymentUseCase) PayByBalance(ctx context.Context, request *model.PayByBalanceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("payment-usecase", err.Error(), "PayByBalance", "")
		return result
	}

	charge, err := c.Store.FindChargeByID(ctx, request.ChargeID)
	if err != nil {
		return failure(c.Log, "payment-usecase", "PayByBalance", err)
	}
	if charge.RecipientID == request.UserID {
		return failure(c.Log, "payment-usecase", "PayByBalance",
			entity.NewError(entity.KindSelfDealing, "cannot pay a charge addressed to yourself"))
	}

	trx, err := c.Engine.PayByBalance(ctx, request.ChargeID, request.UserID)
	if err != nil {
		return failure(c.Log, "payment-usecase", "PayByBalance", err)
	}
	return c.settled(trx, "PayByBalance")
}

func (c *PaymentUseCase) PayByCard(ctx context.Context, request *model.PayByCardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("payment-usecase", "invalid card payment request", "PayByCard", "")
		return result
	}

	trx, err := c.Engine.PayByCard(ctx, request.ChargeID, request.UserID)
	if err != nil {
		return failure(c.Log, "payment-usecase", "PayByCard", err)
	}
	return c.settled(trx, "PayByCard")
}

func (c *PaymentUseCase) Deposit(ctx context.Context, request *model.DepositRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		return result
	}
	if errObj := amountFailure("Amount", request.Amount); errObj != nil {
		result.Error = errObj
		return result
	}

	trx, err := c.Engine.Deposit(ctx, request.UserID, request.Amount)
	if err != nil {
		return failure(c.Log, "payment-usecase", "Deposit", err)
	}
	return c.settled(trx, "Deposit")
}

func (c *PaymentUseCase) settled(trx *entity.Transaction, scope string) utils.Result {
	if err := c.LedgerProducer.SendTransactionSettled(converter.TransactionToEvent(trx)); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("Failed publish transaction settled event : %+v", err), scope, "")
	}
	return utils.Result{Data: converter.TransactionToResponse(trx)}
}
