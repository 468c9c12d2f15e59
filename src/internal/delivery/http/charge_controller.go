package http

import (
	"payment-gateway/src/internal/delivery/http/middleware"
	"payment-gateway/src/internal/model"
	"payment-gateway/src/internal/usecase"
	httpError "payment-gateway/src/pkg/http-error"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ChargeController struct {
	Log     log.Log
	UseCase *usecase.ChargeUseCase
}

func NewChargeController(useCase *usecase.ChargeUseCase, logger log.Log) *ChargeController {
	return &ChargeController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ChargeController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateChargeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ChargeController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(badBody(err), ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Charge", fiber.StatusCreated, ctx)
}

func (c *ChargeController) Cancel(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	chargeID, err := ctx.ParamsInt("id")
	if err != nil || chargeID <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "charge id must be a positive integer"
		return utils.ResponseError(errObj, ctx)
	}
	request := &model.CancelChargeRequest{
		UserID:   auth.UserID,
		ChargeID: int64(chargeID),
	}
	result := c.UseCase.Cancel(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cancel Charge", fiber.StatusOK, ctx)
}

func (c *ChargeController) ListSent(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListChargesRequest{
		UserID: auth.UserID,
		Status: ctx.Query("status"),
	}
	result := c.UseCase.ListSent(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Charges Sent", fiber.StatusOK, ctx)
}

func (c *ChargeController) ListReceived(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListChargesRequest{
		UserID: auth.UserID,
		Status: ctx.Query("status"),
	}
	result := c.UseCase.ListReceived(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Charges Received", fiber.StatusOK, ctx)
}
