package middleware

import (
	"context"
	"fmt"

	"payment-gateway/src/internal/repository"
	httpError "payment-gateway/src/pkg/http-error"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type IdempotencyStore interface {
	Find(ctx context.Context, key string) (*repository.StoredResponse, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, key string, response repository.StoredResponse) error
	Release(ctx context.Context, key string) error
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Requests without the header, or a nil store, pass through. Runs after VerifyBearer.
func Idempotency(store IdempotencyStore, logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		key := ctx.Get(IdempotencyKeyHeader)
		if key == "" || store == nil {
			return ctx.Next()
		}
		scoped := fmt.Sprintf("%d:%s:%s", GetUser(ctx).UserID, ctx.Path(), key)
		c := ctx.UserContext()

		stored, err := store.Find(c, scoped)
		if err != nil {
			logger.Error("idempotency", err.Error(), "Find", scoped)
			return ctx.Next()
		}
		if stored != nil {
			ctx.Set("Idempotent-Replayed", "true")
			ctx.Set(fiber.HeaderContentType, stored.ContentType)
			return ctx.Status(stored.Status).Send(stored.Body)
		}

		reserved, err := store.Reserve(c, scoped)
		if err != nil {
			logger.Error("idempotency", err.Error(), "Reserve", scoped)
			return ctx.Next()
		}
		if !reserved {
			errObj := httpError.NewConflict()
			errObj.Message = "a request with this idempotency key is already in progress"
			return utils.ResponseError(errObj, ctx)
		}
		defer func() {
			if err := store.Release(c, scoped); err != nil {
				logger.Error("idempotency", err.Error(), "Release", scoped)
			}
		}()

		if err := ctx.Next(); err != nil {
			return err
		}

		status := ctx.Response().StatusCode()
		if status < fiber.StatusInternalServerError {
			response := repository.StoredResponse{
				Status:      status,
				ContentType: string(ctx.Response().Header.ContentType()),
				Body:        append([]byte(nil), ctx.Response().Body()...),
			}
			if err := store.Save(c, scoped, response); err != nil {
				logger.Error("idempotency", err.Error(), "Save", scoped)
			}
		}
		return nil
	}
}
