package messaging

import (
	"payment-gateway/src/internal/model"
	"payment-gateway/src/pkg/kafka"
	"payment-gateway/src/pkg/log"
)

type Topics struct {
	ChargeCreated      string
	ChargeCancelled    string
	TransactionSettled string
}

func DefaultTopics() Topics {
	return Topics{
		ChargeCreated:      "charge-created",
		ChargeCancelled:    "charge-cancelled",
		TransactionSettled: "transaction-settled",
	}
}

type LedgerProducer struct {
	ChargeCreatedProducer      Producer[*model.ChargeEvent]
	ChargeCancelledProducer    Producer[*model.ChargeEvent]
	TransactionSettledProducer Producer[*model.TransactionEvent]
}

func NewLedgerProducer(producer kafka.Producer, topics Topics, log log.Log) *LedgerProducer {
	return &LedgerProducer{
		ChargeCreatedProducer: Producer[*model.ChargeEvent]{
			Producer: producer,
			Topic:    topics.ChargeCreated,
			Log:      log,
		},
		ChargeCancelledProducer: Producer[*model.ChargeEvent]{
			Producer: producer,
			Topic:    topics.ChargeCancelled,
			Log:      log,
		},
		TransactionSettledProducer: Producer[*model.TransactionEvent]{
			Producer: producer,
			Topic:    topics.TransactionSettled,
			Log:      log,
		},
	}
}

func (p *LedgerProducer) SendChargeCreated(event *model.ChargeEvent) error {
	return p.ChargeCreatedProducer.Send(event)
}

func (p *LedgerProducer) SendChargeCancelled(event *model.ChargeEvent) error {
	return p.ChargeCancelledProducer.Send(event)
}

func (p *LedgerProducer) SendTransactionSettled(event *model.TransactionEvent) error {
	return p.TransactionSettledProducer.Send(event)
}
