package repository

import (
	"context"
	"fmt"

	"payment-gateway/src/internal/entity"

	"github.com/jmoiron/sqlx"
)

func (r *LedgerRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	transactions := []entity.Transaction{}
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE user_id = ? ORDER BY id`, transactionColumns)
	if err := sqlx.SelectContext(ctx, db, &transactions, query, userID); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
