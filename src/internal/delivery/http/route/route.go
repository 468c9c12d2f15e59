package route

import (
	"payment-gateway/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                   *fiber.App
	UserController        *http.UserController
	ChargeController      *http.ChargeController
	PaymentController     *http.PaymentController
	LoggerMiddleware      fiber.Handler
	AuthMiddleware        fiber.Handler
	IdempotencyMiddleware fiber.Handler
}

func (c *RouteConfig) Setup() {
	if c.LoggerMiddleware != nil {
		c.App.Use(c.LoggerMiddleware)
	}
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupGuestRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Post("/users", c.UserController.Register)
	c.App.Post("/users/token", c.UserController.Login)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Get("/users/me", c.AuthMiddleware, c.UserController.GetProfile)
	c.App.Get("/users/me/transactions", c.AuthMiddleware, c.UserController.ListTransactions)

	charges := c.App.Group("/charges", c.AuthMiddleware)
	charges.Post("/", c.ChargeController.Create)
	charges.Post("/:id/cancel", c.ChargeController.Cancel)
	charges.Get("/sent", c.ChargeController.ListSent)
	charges.Get("/received", c.ChargeController.ListReceived)

	idempotency := c.IdempotencyMiddleware
	if idempotency == nil {
		idempotency = func(ctx *fiber.Ctx) error { return ctx.Next() }
	}
	payments := c.App.Group("/payments", c.AuthMiddleware, idempotency)
	payments.Post("/by-balance", c.PaymentController.PayByBalance)
	payments.Post("/by-card", c.PaymentController.PayByCard)
	payments.Post("/deposit", c.PaymentController.Deposit)
}
