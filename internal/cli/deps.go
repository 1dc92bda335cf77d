package cli

import (
	"log/slog"

	"github.com/samandr77/microservices/settlement/internal/clients/billing"
	"github.com/samandr77/microservices/settlement/internal/service"
	"github.com/samandr77/microservices/settlement/pkg/broker"
	"github.com/samandr77/microservices/settlement/pkg/config"
)

// newService wires the settlement service. The returned close function
// flushes the event producer, if any.
func newService(cfg config.Config, l *slog.Logger) (*service.Service, func()) {
	billingClient := billing.NewClient(cfg.Billing)

	var (
		publisher service.Publisher
		closeFn   = func() {}
	)

	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(l, cfg.Kafka.BrokerAddrs(), cfg.Kafka.SettledTopic)
		publisher = producer
		closeFn = producer.Close
	}

	s := service.New(billingClient, billingClient, billingClient, publisher, service.Limits{
		Organizations: cfg.Settlement.OrganizationConcurrency,
		Invoices:      cfg.Settlement.InvoiceConcurrency,
	})

	return s, closeFn
}
