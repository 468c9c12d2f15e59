package messaging

import (
	"encoding/json"

	"payment-gateway/src/internal/model"
	"payment-gateway/src/pkg/kafka"
	"payment-gateway/src/pkg/log"
)

// Producer publishes JSON encoded events keyed by event id. A nil
// underlying producer turns Send into a no-op.
type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		p.Log.Info("gateway/messaging/producer", "kafka producer disabled, event dropped", "Send", p.Topic)
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	if err := p.Producer.Publish(p.Topic, []byte(event.GetId()), value); err != nil {
		p.Log.Error("send-event", "error send message", "send", err.Error())
		return err
	}
	return nil
}
