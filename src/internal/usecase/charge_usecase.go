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
	"payment-gateway/src/pkg/cpf"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type ChargeUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Store          repository.Reader
	Charges        *ledger.ChargeManager
	LedgerProducer *messaging.LedgerProducer
}

func NewChargeUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.Reader,
	charges *ledger.ChargeManager,
	ledgerProducer *messaging.LedgerProducer,
) *ChargeUseCase {
	return &ChargeUseCase{
		Log:            logger,
		Validate:       validate,
		Store:          store,
		Charges:        charges,
		LedgerProducer: ledgerProducer,
	}
}

func (c *ChargeUseCase) Create(ctx context.Context, request *model.CreateChargeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("charge-usecase", err.Error(), "Create", "")
		return result
	}
	if errObj := amountFailure("Value", request.Value); errObj != nil {
		result.Error = errObj
		return result
	}

	caller, err := c.Store.FindUserByID(ctx, request.UserID)
	if err != nil {
		return failure(c.Log, "charge-usecase", "Create", err)
	}
	if cpf.Normalize(request.RecipientCPF) == caller.CPF {
		return failure(c.Log, "charge-usecase", "Create",
			entity.NewError(entity.KindSelfDealing, "cannot create a charge for yourself"))
	}

	charge, err := c.Charges.Create(ctx, request.Value, request.Description, request.RecipientCPF, request.UserID)
	if err != nil {
		return failure(c.Log, "charge-usecase", "Create", err)
	}

	event := converter.ChargeToEvent(charge, "created", false)
	if err := c.LedgerProducer.SendChargeCreated(event); err != nil {
		c.Log.Error("charge-usecase", fmt.Sprintf("Failed publish charge created event : %+v", err), "Create", "")
	}

	result.Data = converter.ChargeToResponse(charge)
	return result
}

func (c *ChargeUseCase) Cancel(ctx context.Context, request *model.CancelChargeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		return result
	}

	charge, err := c.Store.FindChargeByID(ctx, request.ChargeID)
	if err != nil {
		return failure(c.Log, "charge-usecase", "Cancel", err)
	}
	if charge.OriginatorID != request.UserID {
		return failure(c.Log, "charge-usecase", "Cancel",
			entity.NewError(entity.KindForbidden, "only the originator can cancel this charge"))
	}

	outcome, err := c.Charges.Cancel(ctx, request.ChargeID, request.UserID)
	if err != nil {
		return failure(c.Log, "charge-usecase", "Cancel", err)
	}

	event := converter.ChargeToEvent(outcome.Charge, "cancelled", outcome.Refunded)
	if err := c.LedgerProducer.SendChargeCancelled(event); err != nil {
		c.Log.Error("charge-usecase", fmt.Sprintf("Failed publish charge cancelled event : %+v", err), "Cancel", "")
	}

	result.Data = &model.CancelChargeResponse{
		Charge:   *converter.ChargeToResponse(outcome.Charge),
		Refunded: outcome.Refunded,
	}
	return result
}

func (c *ChargeUseCase) ListSent(ctx context.Context, request *model.ListChargesRequest) utils.Result {
	return c.list(ctx, request, "ListSent", c.Charges.ListSent)
}

func (c *ChargeUseCase) ListReceived(ctx context.Context, request *model.ListChargesRequest) utils.Result {
	return c.list(ctx, request, "ListReceived", c.Charges.ListReceived)
}

type chargeLister func(ctx context.Context, userID int64, status *entity.ChargeStatus) ([]entity.Charge, error)

func (c *ChargeUseCase) list(ctx context.Context, request *model.ListChargesRequest, scope string, lister chargeLister) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		return result
	}

	var status *entity.ChargeStatus
	if request.Status != "" {
		s := entity.ChargeStatus(request.Status)
		status = &s
	}
	charges, err := lister(ctx, request.UserID, status)
	if err != nil {
		return failure(c.Log, "charge-usecase", scope, err)
	}
	result.Data = converter.ChargesToResponse(charges)
	return result
}
