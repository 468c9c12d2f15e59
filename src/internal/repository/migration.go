package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The structs below only describe the schema; queries go through sqlx.

type userSchema struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"size:100;not null"`
	CPF          string          `gorm:"column:cpf;size:11;not null;uniqueIndex:uq_users_cpf"`
	Email        string          `gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	PasswordHash string          `gorm:"size:255;not null"`
	Balance      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (userSchema) TableName() string { return "users" }

type chargeSchema struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Value        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description  *string         `gorm:"size:255"`
	Status       string          `gorm:"size:16;not null;index:idx_charges_status"`
	CreatedAt    time.Time       `gorm:"not null"`
	OriginatorID int64           `gorm:"not null;index:idx_charges_originator"`
	Originator   userSchema      `gorm:"foreignKey:OriginatorID"`
	RecipientID  int64           `gorm:"not null;index:idx_charges_recipient"`
	Recipient    userSchema      `gorm:"foreignKey:RecipientID"`
}

func (chargeSchema) TableName() string { return "charges" }

type transactionSchema struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Type      string          `gorm:"size:32;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status    string          `gorm:"size:16;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UserID    int64           `gorm:"not null;index:idx_transactions_user"`
	User      userSchema      `gorm:"foreignKey:UserID"`
	ChargeID  *int64          `gorm:"index:idx_transactions_charge"`
	Charge    *chargeSchema   `gorm:"foreignKey:ChargeID"`
}

func (transactionSchema) TableName() string { return "transactions" }

// Migrate creates or updates the ledger tables on an open connection.
func Migrate(db *sql.DB) error {
	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open gorm: %w", err)
	}
	if err := gdb.AutoMigrate(&userSchema{}, &chargeSchema{}, &transactionSchema{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
