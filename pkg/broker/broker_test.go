package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

func TestPaymentSettledEvent_Message(t *testing.T) {
	t.Parallel()

	runID := uuid.Must(uuid.NewV4())

	status := entity.PaidPaymentStatus{
		OrganizationID: "org1",
		InvoiceID:      "inv1",
		Currency:       entity.CurrencyUSD,
		Payment:        entity.PendingPayment{ID: "p1", Amount: decimal.RequireFromString("70")},
		Status:         entity.SettlementStatusPaid,
	}

	m, err := NewPaymentSettledEvent(runID, status).Message("payment.settled")
	require.NoError(t, err)

	require.Equal(t, "payment.settled", m.Topic)
	require.Equal(t, []byte("org1"), m.Key)

	var got map[string]any

	require.NoError(t, json.Unmarshal(m.Value, &got))
	require.Equal(t, map[string]any{
		"run_id":          runID.String(),
		"organization_id": "org1",
		"invoice_id":      "inv1",
		"payment_id":      "p1",
		"currency":        "USD",
		"amount":          "70",
		"status":          "paid",
	}, got)
}

func TestDecodeSettlementRequested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   []byte
		want    SettlementRequestedEvent
		wantErr bool
	}{
		{name: "empty body", value: nil, want: SettlementRequestedEvent{}},
		{name: "with request id", value: []byte(`{"request_id":"abc"}`), want: SettlementRequestedEvent{RequestID: "abc"}},
		{name: "malformed", value: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeSettlementRequested(kafka.Message{Value: tt.value})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConsumer_Dispatch(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	c := newConsumer(slog.New(slog.NewTextHandler(buf, nil)), nil)

	var handled []string

	c.Handle("settlement.requested", func(_ context.Context, m kafka.Message) error {
		handled = append(handled, string(m.Value))
		return nil
	}).Handle("failing", func(context.Context, kafka.Message) error {
		return errors.New("run failed")
	})

	c.dispatch(context.Background(), kafka.Message{Topic: "settlement.requested", Value: []byte("1")})
	c.dispatch(context.Background(), kafka.Message{Topic: "unknown", Value: []byte("2")})
	c.dispatch(context.Background(), kafka.Message{Topic: "failing", Value: []byte("3")})

	require.Equal(t, []string{"1"}, handled)
	require.Contains(t, buf.String(), "kafka handler not found")
	require.Contains(t, buf.String(), "handler kafka msg: run failed")
}
