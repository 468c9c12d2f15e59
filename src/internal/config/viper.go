package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// NewViper reads config.json from CONFIG_PATH (or the working directory)
// and lets environment variables override any key, e.g. DATABASE_DSN.
func NewViper() *viper.Viper {
	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("json")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		config.AddConfigPath(path)
	}
	config.AddConfigPath("./")
	config.AddConfigPath("./../")

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}
	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "PAYMENT_GATEWAY")
	config.SetDefault("log.level", "DEBUG")
	config.SetDefault("web.port", 8080)
	config.SetDefault("web.prefork", false)
	config.SetDefault("database.driver", "memory")
	config.SetDefault("database.migrate", true)
	config.SetDefault("database.pool.idle", 10)
	config.SetDefault("database.pool.max", 50)
	config.SetDefault("database.pool.lifetime", 300)
	config.SetDefault("authorizer.timeout", 10*time.Second)
	config.SetDefault("jwt.ttl", 30*time.Minute)
	config.SetDefault("redis.enabled", false)
	config.SetDefault("idempotency.ttl", 24*time.Hour)
	config.SetDefault("kafka.producer.enabled", false)
	config.SetDefault("kafka.client.id", "payment-gateway")
	config.SetDefault("kafka.topic.charge_created", "charge-created")
	config.SetDefault("kafka.topic.charge_cancelled", "charge-cancelled")
	config.SetDefault("kafka.topic.transaction_settled", "transaction-settled")
}
