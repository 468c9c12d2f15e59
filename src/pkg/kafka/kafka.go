package kafka

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"payment-gateway/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type KafkaConfig struct {
	Username      string
	Password      string
	Brokers       []string
	SaslMechanism string
	ClientID      string
	KafkaCaCert   string
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	KafkaCaCert   string
	ClientID      string
}

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(cfg.KafkaUrl, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return KafkaConfig{
		Brokers:       brokers,
		Username:      cfg.KafkaUsername,
		Password:      cfg.KafkaPassword,
		ClientID:      cfg.ClientID,
		KafkaCaCert:   cfg.KafkaCaCert,
		SaslMechanism: sarama.SASLTypePlaintext,
	}
}

func decodeKey(secret string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(secret)
}

// SaramaConfig builds a sync producer configuration, with SASL/TLS when credentials are set.
func (kc KafkaConfig) SaramaConfig() (*sarama.Config, error) {
	cfg := sarama.NewConfig()
	if kc.ClientID != "" {
		cfg.ClientID = kc.ClientID
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 500 * time.Millisecond

	if kc.Username != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.Mechanism = sarama.SASLMechanism(kc.SaslMechanism)
		cfg.Net.SASL.User = kc.Username
		cfg.Net.SASL.Password = kc.Password
		cfg.Net.TLS.Enable = true
		tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
		if kc.KafkaCaCert != "" {
			ca, err := decodeKey(kc.KafkaCaCert)
			if err != nil {
				return nil, fmt.Errorf("decode kafka ca cert: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(ca) {
				return nil, errors.New("kafka ca cert is not valid PEM")
			}
			tlsCfg.RootCAs = pool
		}
		cfg.Net.TLS.Config = tlsCfg
	}
	return cfg, nil
}

type SyncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(kc KafkaConfig, log log.Log) (*SyncProducer, error) {
	if len(kc.Brokers) == 0 {
		return nil, errors.New("kafka bootstrap servers are not configured")
	}
	cfg, err := kc.SaramaConfig()
	if err != nil {
		return nil, err
	}
	p, err := sarama.NewSyncProducer(kc.Brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewSyncProducer(p, log), nil
}

// NewSyncProducer wraps an existing sarama producer, such as mocks.SyncProducer.
func NewSyncProducer(p sarama.SyncProducer, log log.Log) *SyncProducer {
	return &SyncProducer{producer: p, log: log}
}

func (p *SyncProducer) Publish(topic string, key, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.Error("kafka-producer", fmt.Sprintf("failed to deliver message to %s: %v", topic, err), "Publish", string(key))
		return err
	}
	p.log.Info("kafka-producer", fmt.Sprintf("delivered to %s[%d]@%d", topic, partition, offset), "Publish", string(key))
	return nil
}

func (p *SyncProducer) Close() error {
	return p.producer.Close()
}
