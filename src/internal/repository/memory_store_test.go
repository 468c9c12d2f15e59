package repository

import (
	"context"
	"errors"
	"testing"

	"payment-gateway/src/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, s *MemoryStore) (*entity.User, *entity.User) {
	t.Helper()
	a := &entity.User{Name: "A", CPF: "39053344705", Email: "a@x.com", Balance: decimal.NewFromInt(500)}
	b := &entity.User{Name: "B", CPF: "12345678909", Email: "b@x.com"}
	require.NoError(t, s.CreateUser(context.Background(), a))
	require.NoError(t, s.CreateUser(context.Background(), b))
	return a, b
}

func TestMemoryStoreUniqueConstraints(t *testing.T) {
	s := NewMemoryStore()
	seedUsers(t, s)

	err := s.CreateUser(context.Background(), &entity.User{CPF: "39053344705", Email: "other@x.com"})
	assert.ErrorIs(t, err, entity.ErrConflict)

	err = s.CreateUser(context.Background(), &entity.User{CPF: "98765432100", Email: "a@x.com"})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestMemoryStoreLookups(t *testing.T) {
	s := NewMemoryStore()
	a, _ := seedUsers(t, s)
	ctx := context.Background()

	byCPF, err := s.FindUserByCPF(ctx, a.CPF)
	require.NoError(t, err)
	assert.Equal(t, a.ID, byCPF.ID)

	_, err = s.FindUserByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.FindChargeByID(ctx, 99)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestMemoryStoreRollback(t *testing.T) {
	s := NewMemoryStore()
	a, b := seedUsers(t, s)
	ctx := context.Background()
	charge := &entity.Charge{Value: decimal.NewFromInt(100), Status: entity.ChargePending, OriginatorID: a.ID, RecipientID: b.ID}
	require.NoError(t, s.CreateCharge(ctx, charge))

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		require.NoError(t, tx.AdjustBalance(ctx, a.ID, decimal.NewFromInt(-100)))
		ok, err := tx.UpdateChargeStatus(ctx, charge.ID, entity.ChargePending, entity.ChargePaid)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, tx.InsertTransaction(ctx, &entity.Transaction{Type: entity.TransactionBalancePayment, UserID: a.ID}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, err := s.FindUserByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(after.Balance))
	storedCharge, err := s.FindChargeByID(ctx, charge.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChargePending, storedCharge.Status)
	trxs, err := s.ListTransactionsByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, trxs)
}

func TestMemoryStoreCompareAndSet(t *testing.T) {
	s := NewMemoryStore()
	a, b := seedUsers(t, s)
	ctx := context.Background()
	charge := &entity.Charge{Value: decimal.NewFromInt(10), Status: entity.ChargePending, OriginatorID: a.ID, RecipientID: b.ID}
	require.NoError(t, s.CreateCharge(ctx, charge))

	var first, second bool
	require.NoError(t, s.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		first, err = tx.UpdateChargeStatus(ctx, charge.ID, entity.ChargePending, entity.ChargePaid)
		if err != nil {
			return err
		}
		second, err = tx.UpdateChargeStatus(ctx, charge.ID, entity.ChargePending, entity.ChargePaid)
		return err
	}))
	assert.True(t, first)
	assert.False(t, second)
}

func TestMemoryStoreListChargesFilters(t *testing.T) {
	s := NewMemoryStore()
	a, b := seedUsers(t, s)
	ctx := context.Background()
	require.NoError(t, s.CreateCharge(ctx, &entity.Charge{Value: decimal.NewFromInt(1), Status: entity.ChargePending, OriginatorID: a.ID, RecipientID: b.ID}))
	require.NoError(t, s.CreateCharge(ctx, &entity.Charge{Value: decimal.NewFromInt(2), Status: entity.ChargePaid, OriginatorID: a.ID, RecipientID: b.ID}))
	require.NoError(t, s.CreateCharge(ctx, &entity.Charge{Value: decimal.NewFromInt(3), Status: entity.ChargePending, OriginatorID: b.ID, RecipientID: a.ID}))

	pending := entity.ChargePending
	sent, err := s.ListCharges(ctx, entity.ChargeFilter{OriginatorID: &a.ID})
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	sentPending, err := s.ListCharges(ctx, entity.ChargeFilter{OriginatorID: &a.ID, Status: &pending})
	require.NoError(t, err)
	require.Len(t, sentPending, 1)
	assert.True(t, decimal.NewFromInt(1).Equal(sentPending[0].Value))

	received, err := s.ListCharges(ctx, entity.ChargeFilter{RecipientID: &a.ID})
	require.NoError(t, err)
	assert.Len(t, received, 1)
}
