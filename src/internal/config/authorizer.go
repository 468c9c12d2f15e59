package config

import (
	"payment-gateway/src/internal/gateway/authorizer"
	"payment-gateway/src/pkg/log"

	"github.com/spf13/viper"
)

func NewAuthorizer(viper *viper.Viper, log log.Log) *authorizer.Client {
	url := viper.GetString("authorizer.url")
	if url == "" {
		log.Error("authorizer-config", "authorizer.url is empty, every card operation will fail", "config", "")
	}
	return authorizer.NewClient(url, viper.GetDuration("authorizer.timeout"), log)
}
