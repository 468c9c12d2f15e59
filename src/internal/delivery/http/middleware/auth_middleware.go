package middleware

import (
	"context"
	"strings"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/model"
	httpError "payment-gateway/src/pkg/http-error"
	"payment-gateway/src/pkg/token"
	"payment-gateway/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const authLocalsKey = "auth"

// TokenVerifier is the credential layer as seen by the HTTP edge.
type TokenVerifier interface {
	Verify(raw string) (*token.Claim, error)
}

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, subject string) (*model.Auth, error)
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	errObj := httpError.NewUnauthorized()
	errObj.Message = message
	ctx.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return utils.ResponseError(errObj, ctx)
}

// VerifyBearer resolves the caller from the Authorization header and stores it for GetUser.
func VerifyBearer(verifier TokenVerifier, resolver PrincipalResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(ctx, "authorization header required")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return unauthorized(ctx, "invalid authorization header format")
		}

		claim, err := verifier.Verify(parts[1])
		if err != nil {
			return unauthorized(ctx, "could not validate credentials")
		}
		auth, err := resolver.ResolvePrincipal(ctx.UserContext(), claim.Subject)
		if err != nil {
			if entity.KindOf(err) == entity.KindUnauthorized {
				return unauthorized(ctx, "could not validate credentials")
			}
			return utils.ResponseError(httpError.NewInternalServerError(), ctx)
		}

		ctx.Locals(authLocalsKey, auth)
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *model.Auth {
	auth, _ := ctx.Locals(authLocalsKey).(*model.Auth)
	if auth == nil {
		return &model.Auth{}
	}
	return auth
}
