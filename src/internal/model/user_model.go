package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginUserRequest accepts either the email or the CPF as username.
type LoginUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type GetUserRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// Auth is the resolved principal stored in the request context.
type Auth struct {
	UserID  int64
	Subject string
	Name    string
}
