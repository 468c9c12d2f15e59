package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"payment-gateway/src/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type ledgerTx struct {
	tx  *sqlx.Tx
	now func() time.Time
}

func (t *ledgerTx) LockCharge(ctx context.Context, id int64) (*entity.Charge, error) {
	return findChargeByID(ctx, t.tx, id, true)
}

func (t *ledgerTx) LockUsers(ctx context.Context, ids ...int64) (map[int64]*entity.User, error) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	query, args, err := sqlx.In(fmt.Sprintf(`SELECT %s FROM users WHERE id IN (?) ORDER BY id FOR UPDATE`, userColumns), ordered)
	if err != nil {
		return nil, err
	}
	var users []entity.User
	if err := sqlx.SelectContext(ctx, t.tx, &users, t.tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("lock users: %w", err)
	}

	locked := make(map[int64]*entity.User, len(users))
	for i := range users {
		locked[users[i].ID] = &users[i]
	}
	for _, id := range ordered {
		if _, ok := locked[id]; !ok {
			return nil, entity.NewError(entity.KindNotFound, fmt.Sprintf("user %d not found", id))
		}
	}
	return locked, nil
}

func (t *ledgerTx) AdjustBalance(ctx context.Context, userID int64, delta decimal.Decimal) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE users SET balance = balance + ? WHERE id = ?`, delta, userID)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if affected == 0 && !delta.IsZero() {
		return entity.NewError(entity.KindNotFound, fmt.Sprintf("user %d not found", userID))
	}
	return nil
}

func (t *ledgerTx) UpdateChargeStatus(ctx context.Context, id int64, from, to entity.ChargeStatus) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `UPDATE charges SET status = ? WHERE id = ? AND status = ?`, to, id, from)
	if err != nil {
		return false, fmt.Errorf("update charge status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update charge status: %w", err)
	}
	return affected == 1, nil
}

func (t *ledgerTx) InsertTransaction(ctx context.Context, trx *entity.Transaction) error {
	trx.CreatedAt = t.now()
	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO transactions (type, amount, status, created_at, user_id, charge_id) VALUES (?, ?, ?, ?, ?, ?)`,
		trx.Type, trx.Amount, trx.Status, trx.CreatedAt, trx.UserID, trx.ChargeID,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	trx.ID = id
	return nil
}

func (t *ledgerTx) FindSettlingTransaction(ctx context.Context, chargeID int64) (*entity.Transaction, error) {
	var trx entity.Transaction
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE charge_id = ? AND status = ? ORDER BY id LIMIT 1`, transactionColumns)
	if err := getOne(ctx, t.tx, &trx, "settling transaction", query, chargeID, entity.TransactionApproved); err != nil {
		return nil, err
	}
	return &trx, nil
}
