package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type switchAuthorizer struct {
	approve bool
}

func (s *switchAuthorizer) Authorize(context.Context) (bool, error) {
	return s.approve, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
}

type testApp struct {
	app  *fiber.App
	auth *switchAuthorizer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.Set("jwt.secret", "test-secret")
	v.Set("jwt.ttl", time.Hour)

	auth := &switchAuthorizer{approve: true}
	app := NewFiber(v)
	Bootstrap(&BootstrapConfig{
		Store:      repository.NewMemoryStore(),
		App:        app,
		Log:        log.Discard(),
		Validate:   NewValidator(v),
		Config:     v,
		Authorizer: auth,
	})
	return &testApp{app: app, auth: auth}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (a *testApp) register(t *testing.T, name, cpf, email string) {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/users", "", map[string]string{
		"name": name, "cpf": cpf, "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
}

func (a *testApp) login(t *testing.T, username string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	return tok.AccessToken
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodPost, "/payments/deposit", "garbage", map[string]int{"amount": 10})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLedgerOverHTTP(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "User 1", "390.533.447-05", "user1@example.com")
	a.register(t, "User 2", "12345678909", "user2@example.com")
	tokenA := a.login(t, "user1@example.com")
	tokenB := a.login(t, "12345678909")

	status, env := a.do(t, http.MethodPost, "/charges", tokenA, map[string]interface{}{
		"value": 100, "description": "Teste Charge", "recipient_cpf": "12345678909",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var charge struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &charge))
	assert.Equal(t, "pending", charge.Status)

	status, _ = a.do(t, http.MethodPost, "/payments/by-balance", tokenB, map[string]int64{"charge_id": charge.ID})
	assert.Equal(t, http.StatusBadRequest, status, "recipient cannot pay its own charge")

	status, _ = a.do(t, http.MethodPost, "/payments/by-balance", tokenA, map[string]int64{"charge_id": charge.ID})
	assert.Equal(t, http.StatusBadRequest, status, "insufficient funds")

	status, env = a.do(t, http.MethodPost, "/payments/deposit", tokenA, map[string]string{"amount": "500.00"})
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = a.do(t, http.MethodPost, "/payments/by-balance", tokenA, map[string]int64{"charge_id": charge.ID})
	require.Equal(t, http.StatusOK, status, env.Message)
	var trx struct {
		Type   string `json:"type"`
		Amount string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &trx))
	assert.Equal(t, "balance_payment", trx.Type)
	assert.Equal(t, "100", trx.Amount)

	status, env = a.do(t, http.MethodGet, "/users/me", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	var profile struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "100", profile.Balance)

	status, _ = a.do(t, http.MethodPost, fmt.Sprintf("/charges/%d/cancel", charge.ID), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = a.do(t, http.MethodPost, fmt.Sprintf("/charges/%d/cancel", charge.ID), tokenA, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	var cancelled struct {
		Refunded bool `json:"refunded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cancelled))
	assert.True(t, cancelled.Refunded)

	status, env = a.do(t, http.MethodGet, "/charges/sent?status=cancelled", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	var sent []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &sent))
	assert.Len(t, sent, 1)

	status, env = a.do(t, http.MethodGet, "/charges/received", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	var received []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &received))
	assert.Len(t, received, 1)

	status, env = a.do(t, http.MethodGet, "/users/me/transactions", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	var history struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history.Transactions, 2)
}

func TestCardFlowsOverHTTP(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "User 1", "39053344705", "user1@example.com")
	a.register(t, "User 2", "12345678909", "user2@example.com")
	tokenA := a.login(t, "user1@example.com")

	status, env := a.do(t, http.MethodPost, "/charges", tokenA, map[string]interface{}{"value": 40, "recipient_cpf": "12345678909"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var charge struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &charge))
	card := map[string]interface{}{
		"charge_id": charge.ID, "card_number": "4111111111111111", "expiration_date": "12/30", "cvv": "123",
	}

	a.auth.approve = false
	status, _ = a.do(t, http.MethodPost, "/payments/by-card", tokenA, card)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = a.do(t, http.MethodPost, "/payments/deposit", tokenA, map[string]int{"amount": 10})
	assert.Equal(t, http.StatusBadRequest, status)

	a.auth.approve = true
	status, env = a.do(t, http.MethodPost, "/payments/by-card", tokenA, card)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = a.do(t, http.MethodPost, fmt.Sprintf("/charges/%d/cancel", charge.ID), tokenA, nil)
	assert.Equal(t, http.StatusBadRequest, status, "card payments cannot be refunded")
}

func TestRegisterConflictOverHTTP(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "User 1", "39053344705", "user1@example.com")

	status, _ := a.do(t, http.MethodPost, "/users", "", map[string]string{
		"name": "Again", "cpf": "39053344705", "email": "again@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status)
}
