package repository

import (
	"context"
	"fmt"
	"strings"

	"payment-gateway/src/internal/entity"

	"github.com/jmoiron/sqlx"
)

func (r *LedgerRepository) FindChargeByID(ctx context.Context, id int64) (*entity.Charge, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return findChargeByID(ctx, db, id, false)
}

func (r *LedgerRepository) ListCharges(ctx context.Context, filter entity.ChargeFilter) ([]entity.Charge, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []interface{}
	)
	if filter.OriginatorID != nil {
		conditions = append(conditions, "originator_id = ?")
		args = append(args, *filter.OriginatorID)
	}
	if filter.RecipientID != nil {
		conditions = append(conditions, "recipient_id = ?")
		args = append(args, *filter.RecipientID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM charges`, chargeColumns)
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id`

	charges := []entity.Charge{}
	if err := sqlx.SelectContext(ctx, db, &charges, query, args...); err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}
	return charges, nil
}

func (r *LedgerRepository) CreateCharge(ctx context.Context, charge *entity.Charge) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	charge.CreatedAt = r.Now()

	res, err := db.ExecContext(ctx,
		`INSERT INTO charges (value, description, status, created_at, originator_id, recipient_id) VALUES (?, ?, ?, ?, ?, ?)`,
		charge.Value, charge.Description, charge.Status, charge.CreatedAt, charge.OriginatorID, charge.RecipientID,
	)
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	charge.ID = id
	return nil
}
