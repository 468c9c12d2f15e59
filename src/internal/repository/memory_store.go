package repository

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"payment-gateway/src/internal/entity"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps the ledger in process. A single mutex serializes every
// unit of work, which gives the same guarantees as row locks at a coarser grain.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[int64]entity.User
	charges      map[int64]entity.Charge
	transactions []entity.Transaction
	nextUserID   int64
	nextChargeID int64
	Now          func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]entity.User),
		charges: make(map[int64]entity.Charge),
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userByID(id)
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userWhere(func(u entity.User) bool { return u.Email == email })
}

func (s *MemoryStore) FindUserByCPF(_ context.Context, cpf string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userWhere(func(u entity.User) bool { return u.CPF == cpf })
}

func (s *MemoryStore) FindChargeByID(_ context.Context, id int64) (*entity.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chargeByID(id)
}

func (s *MemoryStore) ListCharges(_ context.Context, filter entity.ChargeFilter) ([]entity.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	charges := []entity.Charge{}
	for _, c := range s.charges {
		if filter.OriginatorID != nil && c.OriginatorID != *filter.OriginatorID {
			continue
		}
		if filter.RecipientID != nil && c.RecipientID != *filter.RecipientID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		charges = append(charges, c)
	}
	slices.SortFunc(charges, func(a, b entity.Charge) int { return cmp.Compare(a.ID, b.ID) })
	return charges, nil
}

func (s *MemoryStore) ListTransactionsByUser(_ context.Context, userID int64) ([]entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := []entity.Transaction{}
	for _, t := range s.transactions {
		if t.UserID == userID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.CPF == user.CPF {
			return entity.NewError(entity.KindConflict, "cpf already registered")
		}
		if u.Email == user.Email {
			return entity.NewError(entity.KindConflict, "email already registered")
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = s.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) CreateCharge(_ context.Context, charge *entity.Charge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []int64{charge.OriginatorID, charge.RecipientID} {
		if _, ok := s.users[id]; !ok {
			return fmt.Errorf("insert charge: user %d does not exist", id)
		}
	}
	s.nextChargeID++
	charge.ID = s.nextChargeID
	charge.CreatedAt = s.Now()
	s.charges[charge.ID] = *charge
	return nil
}

// WithinTx snapshots the maps and restores them when fn fails.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := maps.Clone(s.users)
	charges := maps.Clone(s.charges)
	trxCount := len(s.transactions)

	if err := fn(ctx, &memoryTx{store: s}); err != nil {
		s.users = users
		s.charges = charges
		s.transactions = s.transactions[:trxCount]
		return err
	}
	return nil
}

func (s *MemoryStore) userByID(id int64) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "user not found")
	}
	return &u, nil
}

func (s *MemoryStore) userWhere(match func(entity.User) bool) (*entity.User, error) {
	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, entity.NewError(entity.KindNotFound, "user not found")
}

func (s *MemoryStore) chargeByID(id int64) (*entity.Charge, error) {
	c, ok := s.charges[id]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "charge not found")
	}
	return &c, nil
}

// memoryTx runs with MemoryStore.mu held.
type memoryTx struct {
	store *MemoryStore
}

func (t *memoryTx) LockCharge(_ context.Context, id int64) (*entity.Charge, error) {
	return t.store.chargeByID(id)
}

func (t *memoryTx) LockUsers(_ context.Context, ids ...int64) (map[int64]*entity.User, error) {
	locked := make(map[int64]*entity.User, len(ids))
	for _, id := range ids {
		u, err := t.store.userByID(id)
		if err != nil {
			return nil, entity.NewError(entity.KindNotFound, fmt.Sprintf("user %d not found", id))
		}
		locked[id] = u
	}
	return locked, nil
}

func (t *memoryTx) AdjustBalance(_ context.Context, userID int64, delta decimal.Decimal) error {
	u, ok := t.store.users[userID]
	if !ok {
		return entity.NewError(entity.KindNotFound, fmt.Sprintf("user %d not found", userID))
	}
	u.Balance = u.Balance.Add(delta)
	t.store.users[userID] = u
	return nil
}

func (t *memoryTx) UpdateChargeStatus(_ context.Context, id int64, from, to entity.ChargeStatus) (bool, error) {
	c, ok := t.store.charges[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	t.store.charges[id] = c
	return true, nil
}

func (t *memoryTx) InsertTransaction(_ context.Context, trx *entity.Transaction) error {
	trx.ID = int64(len(t.store.transactions)) + 1
	trx.CreatedAt = t.store.Now()
	t.store.transactions = append(t.store.transactions, *trx)
	return nil
}

func (t *memoryTx) FindSettlingTransaction(_ context.Context, chargeID int64) (*entity.Transaction, error) {
	for _, trx := range t.store.transactions {
		if trx.ChargeID != nil && *trx.ChargeID == chargeID && trx.Status == entity.TransactionApproved {
			return &trx, nil
		}
	}
	return nil, entity.NewError(entity.KindNotFound, "settling transaction not found")
}
