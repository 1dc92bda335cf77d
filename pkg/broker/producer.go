package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

type Producer struct {
	l            *slog.Logger
	w            *kafka.Writer
	settledTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:            l,
		w:            w,
		settledTopic: topic,
	}
}

type PaymentSettledEvent struct {
	RunID          uuid.UUID               `json:"run_id"`
	OrganizationID string                  `json:"organization_id"`
	InvoiceID      string                  `json:"invoice_id"`
	PaymentID      string                  `json:"payment_id"`
	Currency       entity.Currency         `json:"currency"`
	Amount         decimal.Decimal         `json:"amount"`
	Status         entity.SettlementStatus `json:"status"`
}

func NewPaymentSettledEvent(runID uuid.UUID, status entity.PaidPaymentStatus) PaymentSettledEvent {
	return PaymentSettledEvent{
		RunID:          runID,
		OrganizationID: status.OrganizationID,
		InvoiceID:      status.InvoiceID,
		PaymentID:      status.Payment.ID,
		Currency:       status.Currency,
		Amount:         status.Payment.Amount,
		Status:         status.Status,
	}
}

// Message keys the event by organization so that one organization's events
// keep their order within a partition.
func (e PaymentSettledEvent) Message(topic string) (kafka.Message, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(e.OrganizationID),
		Value: b,
		Topic: topic,
	}, nil
}

func (p *Producer) SendPaymentSettled(ctx context.Context, runID uuid.UUID, status entity.PaidPaymentStatus) {
	m, err := NewPaymentSettledEvent(runID, status).Message(p.settledTopic)
	if err != nil {
		p.l.Error(err.Error())
		return
	}

	err = p.w.WriteMessages(ctx, m)
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
