package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"payment-gateway/src/internal/model"
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string]repository.StoredResponse
	locks     map[string]bool
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{
		responses: map[string]repository.StoredResponse{},
		locks:     map[string]bool{},
	}
}

func (s *memoryIdempotencyStore) Find(_ context.Context, key string) (*repository.StoredResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.responses[key]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *memoryIdempotencyStore) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	return true, nil
}

func (s *memoryIdempotencyStore) Save(_ context.Context, key string, response repository.StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[key] = response
	return nil
}

func (s *memoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, key)
	return nil
}

func newIdempotentApp(store IdempotencyStore, calls *int) *fiber.App {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(authLocalsKey, &model.Auth{UserID: 1})
		return ctx.Next()
	})
	app.Post("/payments/deposit", Idempotency(store, log.Discard()), func(ctx *fiber.Ctx) error {
		*calls++
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"call": *calls})
	})
	return app
}

func post(t *testing.T, app *fiber.App, key string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payments/deposit", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	calls := 0
	store := newMemoryIdempotencyStore()
	app := newIdempotentApp(store, &calls)

	first, firstBody := post(t, app, "abc")
	second, secondBody := post(t, app, "abc")

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.StatusCode, second.StatusCode)
	assert.Equal(t, firstBody, secondBody)
	assert.Equal(t, "true", second.Header.Get("Idempotent-Replayed"))
	assert.Empty(t, store.locks)
}

func TestIdempotencyRejectsInFlightKey(t *testing.T) {
	calls := 0
	store := newMemoryIdempotencyStore()
	store.locks["1:/payments/deposit:abc"] = true
	app := newIdempotentApp(store, &calls)

	resp, _ := post(t, app, "abc")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Zero(t, calls)
}

func TestIdempotencyPassThrough(t *testing.T) {
	calls := 0
	app := newIdempotentApp(newMemoryIdempotencyStore(), &calls)
	post(t, app, "")
	post(t, app, "")
	assert.Equal(t, 2, calls)

	calls = 0
	app = newIdempotentApp(nil, &calls)
	post(t, app, "abc")
	post(t, app, "abc")
	assert.Equal(t, 2, calls)
}
