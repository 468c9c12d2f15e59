package mysql

import (
	"errors"
	"fmt"
	"time"

	"payment-gateway/src/pkg/log"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

var ErrNotInitialized = errors.New("mysql connection is not initialized")

// DuplicateEntry is the server error number for unique key violations.
const DuplicateEntry = 1062

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type Database struct {
	db *sqlx.DB
}

// New wraps an existing handle, used with sqlmock in tests.
func New(db *sqlx.DB) *Database {
	return &Database{db: db}
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d == nil || d.db == nil {
		return nil, ErrNotInitialized
	}
	return d.db, nil
}

func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func InitConnection(v *viper.Viper, log log.Log) (*Database, error) {
	cfg, err := driver.ParseDSN(v.GetString("database.dsn"))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	db, err := sqlx.Connect("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	db.SetMaxIdleConns(v.GetInt("database.pool.idle"))
	db.SetMaxOpenConns(v.GetInt("database.pool.max"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.lifetime")) * time.Second)

	log.Info("mysql", fmt.Sprintf("connected to %s/%s", cfg.Addr, cfg.DBName), "InitConnection", "")
	return &Database{db: db}, nil
}

// IsDuplicateEntry reports whether err is a unique key violation.
func IsDuplicateEntry(err error) (*driver.MySQLError, bool) {
	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == DuplicateEntry {
		return mysqlErr, true
	}
	return nil, false
}
