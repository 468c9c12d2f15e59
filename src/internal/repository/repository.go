package repository

import (
	"context"

	"payment-gateway/src/internal/entity"

	"github.com/shopspring/decimal"
)

// Reader covers the point lookups and listings of the ledger.
// Missing rows are reported as entity.KindNotFound.
type Reader interface {
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
	FindUserByCPF(ctx context.Context, cpf string) (*entity.User, error)
	FindChargeByID(ctx context.Context, id int64) (*entity.Charge, error)
	ListCharges(ctx context.Context, filter entity.ChargeFilter) ([]entity.Charge, error)
	ListTransactionsByUser(ctx context.Context, userID int64) ([]entity.Transaction, error)
}

// Tx is a unit of work. Rows returned by the Lock methods stay locked until
// the unit commits or rolls back.
type Tx interface {
	LockCharge(ctx context.Context, id int64) (*entity.Charge, error)
	// LockUsers locks in ascending id order and fails with KindNotFound if any id is missing.
	LockUsers(ctx context.Context, ids ...int64) (map[int64]*entity.User, error)
	AdjustBalance(ctx context.Context, userID int64, delta decimal.Decimal) error
	// UpdateChargeStatus is a compare-and-set; false means the charge was not in from.
	UpdateChargeStatus(ctx context.Context, id int64, from, to entity.ChargeStatus) (bool, error)
	InsertTransaction(ctx context.Context, trx *entity.Transaction) error
	FindSettlingTransaction(ctx context.Context, chargeID int64) (*entity.Transaction, error)
}

type Store interface {
	Reader
	// CreateUser fails with entity.KindConflict when cpf or email is taken.
	CreateUser(ctx context.Context, user *entity.User) error
	CreateCharge(ctx context.Context, charge *entity.Charge) error
	// WithinTx runs fn atomically; any error from fn rolls every write back.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
