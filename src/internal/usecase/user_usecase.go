package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/internal/model"
	"payment-gateway/src/internal/model/converter"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/cpf"
	httpError "payment-gateway/src/pkg/http-error"
	"payment-gateway/src/pkg/log"
	"payment-gateway/src/pkg/token"
	"payment-gateway/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is the credential layer as seen by the login flow.
type TokenIssuer interface {
	Issue(subject string, metadata token.Metadata) (string, time.Time, error)
}

type UserUseCase struct {
	Log        log.Log
	Validate   *validator.Validate
	Store      repository.Store
	Tokens     TokenIssuer
	BcryptCost int
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.Store,
	tokens TokenIssuer,
) *UserUseCase {
	return &UserUseCase{
		Log:        logger,
		Validate:   validate,
		Store:      store,
		Tokens:     tokens,
		BcryptCost: bcrypt.DefaultCost,
	}
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("user-usecase", err.Error(), "Register", "")
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), c.BcryptCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to hash password"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("bcrypt: %v", err), "Register", "")
		return result
	}

	user := &entity.User{
		Name:         strings.TrimSpace(request.Name),
		CPF:          cpf.Normalize(request.CPF),
		Email:        strings.ToLower(strings.TrimSpace(request.Email)),
		PasswordHash: string(hash),
		Balance:      decimal.Zero,
	}
	if err := c.Store.CreateUser(ctx, user); err != nil {
		return failure(c.Log, "user-usecase", "Register", err)
	}

	c.Log.Info("user-usecase", fmt.Sprintf("user %d registered", user.ID), "Register", "")
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("user-usecase", err.Error(), "Login", "")
		return result
	}

	user, err := c.findByLogin(ctx, request.Username)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	}
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "incorrect username or password"
		result.Error = errObj
		c.Log.Info("user-usecase", errObj.Message, "Login", "")
		return result
	}

	accessToken, expiresAt, err := c.Tokens.Issue(user.Email, token.Metadata{UserID: user.ID, FullName: user.Name})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "Login", "")
		return result
	}

	result.Data = &model.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}
	return result
}

func (c *UserUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		c.Log.Error("GetUser-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	user, err := c.Store.FindUserByID(ctx, request.ID)
	if err != nil {
		return failure(c.Log, "user-usecase", "GetUser", err)
	}
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) ListTransactions(ctx context.Context, request *model.ListTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationFailure(err)
		return result
	}
	trxs, err := c.Store.ListTransactionsByUser(ctx, request.UserID)
	if err != nil {
		return failure(c.Log, "user-usecase", "ListTransactions", err)
	}
	result.Data = &model.TransactionListResponse{
		Transactions: converter.TransactionsToResponse(trxs),
		FetchedAt:    time.Now().UTC(),
	}
	return result
}

// ResolvePrincipal maps a token subject (email or CPF) to the acting user.
func (c *UserUseCase) ResolvePrincipal(ctx context.Context, subject string) (*model.Auth, error) {
	user, err := c.findByLogin(ctx, subject)
	if err != nil {
		if entity.KindOf(err) == entity.KindNotFound {
			return nil, entity.NewError(entity.KindUnauthorized, "could not validate credentials")
		}
		return nil, err
	}
	return &model.Auth{UserID: user.ID, Subject: subject, Name: user.Name}, nil
}

func (c *UserUseCase) findByLogin(ctx context.Context, login string) (*entity.User, error) {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return c.Store.FindUserByEmail(ctx, strings.ToLower(login))
	}
	normalized := cpf.Normalize(login)
	if normalized == "" {
		return nil, entity.NewError(entity.KindNotFound, "user not found")
	}
	return c.Store.FindUserByCPF(ctx, normalized)
}
