package middleware

import (
	"fmt"
	"time"

	"payment-gateway/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// NewLogger tags every request with an id and logs its outcome.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(RequestIDHeader, requestID)

		start := time.Now()
		err := ctx.Next()
		status := ctx.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		message := fmt.Sprintf("%s %s %d %s", ctx.Method(), ctx.Path(), status, time.Since(start))
		if status >= fiber.StatusInternalServerError {
			logger.Error("http", message, "request", requestID)
		} else {
			logger.Info("http", message, "request", requestID)
		}
		return err
	}
}
