package http

import (
	"payment-gateway/src/internal/delivery/http/middleware"
	"payment-gateway/src/internal/model"
	"payment-gateway/src/internal/usecase"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) PayByBalance(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.PayByBalanceRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.PayByBalance", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(badBody(err), ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.PayByBalance(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pay By Balance", fiber.StatusOK, ctx)
}

func (c *PaymentController) PayByCard(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.PayByCardRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.PayByCard", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(badBody(err), ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.PayByCard(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pay By Card", fiber.StatusOK, ctx)
}

func (c *PaymentController) Deposit(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.DepositRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Deposit", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(badBody(err), ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Deposit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Deposit", fiber.StatusOK, ctx)
}
