package repository

import (
	"context"
	"fmt"
	"strings"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/pkg/databases/mysql"
)

func (r *LedgerRepository) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return findUserBy(ctx, db, "id", id)
}

func (r *LedgerRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return findUserBy(ctx, db, "email", email)
}

func (r *LedgerRepository) FindUserByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return findUserBy(ctx, db, "cpf", cpf)
}

func (r *LedgerRepository) CreateUser(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	user.CreatedAt = r.Now()

	res, err := db.ExecContext(ctx,
		`INSERT INTO users (name, cpf, email, password_hash, balance, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.CPF, user.Email, user.PasswordHash, user.Balance, user.CreatedAt,
	)
	if mysqlErr, ok := mysql.IsDuplicateEntry(err); ok {
		return entity.WrapError(entity.KindConflict, duplicateField(mysqlErr.Message)+" already registered", err)
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

// duplicateField names the unique column from a 1062 message such as
// "Duplicate entry 'x' for key 'users.uq_users_cpf'".
func duplicateField(message string) string {
	switch {
	case strings.Contains(message, "cpf"):
		return "cpf"
	case strings.Contains(message, "email"):
		return "email"
	}
	return "user"
}
