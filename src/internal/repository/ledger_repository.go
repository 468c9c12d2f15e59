package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

const (
	userColumns        = `id, name, cpf, email, password_hash, balance, created_at`
	chargeColumns      = `id, value, description, status, created_at, originator_id, recipient_id`
	transactionColumns = `id, type, amount, status, created_at, user_id, charge_id`
)

// LedgerRepository is the MySQL implementation of Store.
type LedgerRepository struct {
	DB  mysql.DBInterface
	Now func() time.Time
}

func NewLedgerRepository(db mysql.DBInterface) *LedgerRepository {
	return &LedgerRepository{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	sqlTx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ctx, &ledgerTx{tx: sqlTx, now: r.Now}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func getOne(ctx context.Context, q sqlx.QueryerContext, dest interface{}, what, query string, args ...interface{}) error {
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.NewError(entity.KindNotFound, what+" not found")
	}
	return err
}

func findUserBy(ctx context.Context, q sqlx.QueryerContext, column string, value interface{}) (*entity.User, error) {
	var user entity.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = ?`, userColumns, column)
	if err := getOne(ctx, q, &user, "user", query, value); err != nil {
		return nil, err
	}
	return &user, nil
}

func findChargeByID(ctx context.Context, q sqlx.QueryerContext, id int64, lock bool) (*entity.Charge, error) {
	var charge entity.Charge
	query := fmt.Sprintf(`SELECT %s FROM charges WHERE id = ?`, chargeColumns)
	if lock {
		query += ` FOR UPDATE`
	}
	if err := getOne(ctx, q, &charge, "charge", query, id); err != nil {
		return nil, err
	}
	return &charge, nil
}
