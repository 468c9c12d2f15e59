package config

import (
	"payment-gateway/src/internal/gateway/messaging"
	"payment-gateway/src/pkg/kafka"
	"payment-gateway/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafka.KafkaConfig {
	configKafka := kafka.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		KafkaCaCert:   viper.GetString("kafka.cacert"),
		ClientID:      viper.GetString("kafka.client.id"),
	}
	return kafka.InitKafkaConfig(configKafka)
}

func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}
	kafkaProducer, err := kafka.NewProducer(NewKafkaConfig(config), log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}

func NewTopics(config *viper.Viper) messaging.Topics {
	return messaging.Topics{
		ChargeCreated:      config.GetString("kafka.topic.charge_created"),
		ChargeCancelled:    config.GetString("kafka.topic.charge_cancelled"),
		TransactionSettled: config.GetString("kafka.topic.transaction_settled"),
	}
}
