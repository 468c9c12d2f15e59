package kafka

import (
	"errors"
	"testing"

	"payment-gateway/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitKafkaConfigSplitsBrokers(t *testing.T) {
	kc := InitKafkaConfig(Cfg{KafkaUrl: "b1:9092, b2:9092,", ClientID: "payment-gateway"})

	assert.Equal(t, []string{"b1:9092", "b2:9092"}, kc.Brokers)

	cfg, err := kc.SaramaConfig()
	require.NoError(t, err)
	assert.Equal(t, "payment-gateway", cfg.ClientID)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.False(t, cfg.Net.SASL.Enable)
}

func TestSaramaConfigEnablesSASL(t *testing.T) {
	kc := InitKafkaConfig(Cfg{KafkaUrl: "b1:9092", KafkaUsername: "user", KafkaPassword: "pass"})

	cfg, err := kc.SaramaConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Net.SASL.Enable)
	assert.True(t, cfg.Net.TLS.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypePlaintext), cfg.Net.SASL.Mechanism)
}

func TestSaramaConfigRejectsBadCA(t *testing.T) {
	kc := InitKafkaConfig(Cfg{KafkaUrl: "b1:9092", KafkaUsername: "user", KafkaCaCert: "!!"})

	_, err := kc.SaramaConfig()
	assert.Error(t, err)
}

func TestPublish(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"id":"1"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewSyncProducer(mock, log.Discard())
	require.NoError(t, p.Publish("charge-created", []byte("1"), []byte(`{"id":"1"}`)))
	assert.ErrorIs(t, p.Publish("charge-created", []byte("2"), []byte(`{}`)), sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}
