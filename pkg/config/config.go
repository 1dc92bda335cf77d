package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Billing    Billing
	Settlement Settlement
	Kafka      Kafka
}

type HTTP struct {
	Port        int    `env:"HTTP_PORT" envDefault:"8080"`
	AuthEnabled bool   `env:"HTTP_AUTH_ENABLED" envDefault:"false"`
	AuthSecret  string `env:"HTTP_AUTH_SECRET" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Billing struct {
	BaseURL   string        `env:"BILLING_BASE_URL" envDefault:"https://recruiting.data.bemmbo.com"`
	Timeout   time.Duration `env:"BILLING_TIMEOUT" envDefault:"10s"`
	RateLimit float64       `env:"BILLING_RATE_LIMIT" envDefault:"0"`
	RateBurst int           `env:"BILLING_RATE_BURST" envDefault:"1"`
}

type Settlement struct {
	OrganizationConcurrency int           `env:"SETTLEMENT_ORGANIZATION_CONCURRENCY" envDefault:"4"`
	InvoiceConcurrency      int           `env:"SETTLEMENT_INVOICE_CONCURRENCY" envDefault:"4"`
	Interval                time.Duration `env:"SETTLEMENT_INTERVAL" envDefault:"0s"`
}

type Kafka struct {
	Brokers        []string `env:"KAFKA_BROKERS" envDefault:""`
	SettledTopic   string   `env:"KAFKA_PAYMENT_SETTLED_TOPIC" envDefault:"payment.settled"`
	RequestedTopic string   `env:"KAFKA_SETTLEMENT_REQUESTED_TOPIC" envDefault:"settlement.requested"`
	GroupID        string   `env:"KAFKA_GROUP_ID" envDefault:"settlement"`
}

// Enabled reports whether at least one broker address is configured.
func (k Kafka) Enabled() bool {
	return len(lo.Compact(k.Brokers)) > 0
}

func (k Kafka) BrokerAddrs() []string {
	return lo.Compact(k.Brokers)
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.Billing.BaseURL == "" {
		return errors.New("BILLING_BASE_URL is empty")
	}

	if c.Settlement.OrganizationConcurrency < 1 {
		return fmt.Errorf("SETTLEMENT_ORGANIZATION_CONCURRENCY must be positive, got %d", c.Settlement.OrganizationConcurrency)
	}

	if c.Settlement.InvoiceConcurrency < 1 {
		return fmt.Errorf("SETTLEMENT_INVOICE_CONCURRENCY must be positive, got %d", c.Settlement.InvoiceConcurrency)
	}

	if c.Settlement.Interval < 0 {
		return fmt.Errorf("SETTLEMENT_INTERVAL must not be negative, got %s", c.Settlement.Interval)
	}

	return nil
}
