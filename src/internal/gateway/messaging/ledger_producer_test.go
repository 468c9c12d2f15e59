package messaging

import (
	"encoding/json"
	"testing"

	"payment-gateway/src/internal/model"
	"payment-gateway/src/pkg/kafka"
	"payment-gateway/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendTransactionSettled(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "transaction-settled", msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "evt-1", string(key))

		raw, err := msg.Value.Encode()
		require.NoError(t, err)
		var event model.TransactionEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, int64(11), event.TransactionID)
		assert.True(t, decimal.NewFromInt(100).Equal(event.Amount))
		return nil
	})

	producer := NewLedgerProducer(kafka.NewSyncProducer(mock, log.Discard()), DefaultTopics(), log.Discard())
	err := producer.SendTransactionSettled(&model.TransactionEvent{EventID: "evt-1", TransactionID: 11, Amount: decimal.NewFromInt(100)})

	require.NoError(t, err)
	require.NoError(t, mock.Close())
}

func TestSendPropagatesBrokerError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	producer := NewLedgerProducer(kafka.NewSyncProducer(mock, log.Discard()), DefaultTopics(), log.Discard())
	err := producer.SendChargeCreated(&model.ChargeEvent{EventID: "evt-2"})

	assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
	require.NoError(t, mock.Close())
}

func TestSendWithoutProducerIsNoop(t *testing.T) {
	producer := NewLedgerProducer(nil, DefaultTopics(), log.Discard())

	assert.NoError(t, producer.SendChargeCancelled(&model.ChargeEvent{EventID: "evt-3"}))
}
