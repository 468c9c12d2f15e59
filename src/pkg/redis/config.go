package redis

import (
	"strings"

	"payment-gateway/src/pkg/utils"
)

type CfgRedis struct {
	UseCluster           bool
	EnableTLS            bool
	RedisHost            string
	RedisPort            string
	RedisPassword        string
	RedisDB              int
	RedisClusterNode     string
	RedisClusterPassword string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	EnableTLS bool
}

type RedisClusterConfig struct {
	Hosts     []string
	Password  string
	EnableTLS bool
}

type Config struct {
	UseCluster bool
	Single     RedisConfig
	Cluster    RedisClusterConfig
}

func LoadConfig(cfg *CfgRedis) Config {
	var hosts []string
	for _, node := range strings.Split(cfg.RedisClusterNode, ";") {
		if node = strings.TrimSpace(node); node != "" {
			hosts = append(hosts, node)
		}
	}
	return Config{
		UseCluster: cfg.UseCluster,
		Single: RedisConfig{
			Host:      cfg.RedisHost,
			Port:      cfg.RedisPort,
			Password:  cfg.RedisPassword,
			DB:        utils.ConvertInt(cfg.RedisDB),
			EnableTLS: cfg.EnableTLS,
		},
		Cluster: RedisClusterConfig{
			Hosts:     hosts,
			Password:  cfg.RedisClusterPassword,
			EnableTLS: cfg.EnableTLS,
		},
	}
}
