package config

import (
	"payment-gateway/src/internal/repository"
	"payment-gateway/src/pkg/databases/mysql"
	"payment-gateway/src/pkg/log"

	"github.com/spf13/viper"
)

// NewStore picks the ledger store from database.driver. The returned close
// function releases the connection pool, if any.
func NewStore(viper *viper.Viper, log log.Log) (repository.Store, func() error) {
	if viper.GetString("database.driver") != "mysql" {
		log.Info("database-config", "using in-memory ledger store", "config", "")
		return repository.NewMemoryStore(), func() error { return nil }
	}

	db := NewDatabase(viper, log)
	if viper.GetBool("database.migrate") {
		sqlDB, err := db.GetDB()
		if err != nil {
			panic(err)
		}
		if err := repository.Migrate(sqlDB.DB); err != nil {
			log.Error("database migrate", err.Error(), "config", "")
			panic(err)
		}
		log.Info("database-config", "schema migrated", "config", "")
	}
	return repository.NewLedgerRepository(db), db.Close
}

func NewDatabase(viper *viper.Viper, log log.Log) mysql.DBInterface {
	db, err := mysql.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
		panic(err)
	}

	return db
}
