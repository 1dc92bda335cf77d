package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type InvoiceSource interface {
	PendingInvoices(ctx context.Context) ([]entity.Invoice, error)
}

type SettingsProvider interface {
	OrganizationSettings(ctx context.Context, organizationID string) (entity.OrganizationSettings, error)
}

type PaymentGateway interface {
	PayPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (entity.SettlementStatus, error)
}

type Publisher interface {
	SendPaymentSettled(ctx context.Context, runID uuid.UUID, status entity.PaidPaymentStatus)
}

// Limits bounds the number of organizations and, per organization, invoices
// settled at the same time.
type Limits struct {
	Organizations int
	Invoices      int
}

func (l Limits) organizations() int {
	return max(l.Organizations, 1)
}

func (l Limits) invoices() int {
	return max(l.Invoices, 1)
}

type Service struct {
	invoices  InvoiceSource
	settings  SettingsProvider
	gateway   PaymentGateway
	publisher Publisher
	limits    Limits

	runMu sync.Mutex
}

// New creates a settlement service. publisher may be nil.
func New(
	invoices InvoiceSource,
	settings SettingsProvider,
	gateway PaymentGateway,
	publisher Publisher,
	limits Limits,
) *Service {
	return &Service{
		invoices:  invoices,
		settings:  settings,
		gateway:   gateway,
		publisher: publisher,
		limits:    limits,
	}
}

// Run performs one settlement pass over all pending invoices. On failure the
// returned report carries no statuses. Runs of one Service never overlap.
func (s *Service) Run(ctx context.Context) (Report, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	report := Report{
		RunID:     uuid.Must(uuid.NewV4()),
		Stage:     StageFetching,
		StartedAt: time.Now(),
	}

	ctx = logger.WithRunID(ctx, report.RunID.String())

	slog.InfoContext(ctx, "settlement run started")

	invoices, err := s.invoices.PendingInvoices(ctx)
	if err != nil {
		return report.fail(ctx, fmt.Errorf("fetch pending invoices: %w", err))
	}

	report.Stage = StageSettling
	slog.InfoContext(ctx, "pending invoices fetched", "invoices", len(invoices))

	statuses, err := s.Settle(ctx, invoices)
	if err != nil {
		return report.fail(ctx, err)
	}

	report.Stage = StageAggregating
	report.Statuses = statuses

	if s.publisher != nil {
		for _, st := range statuses {
			s.publisher.SendPaymentSettled(ctx, report.RunID, st)
		}
	}

	report.Stage = StageDone
	report.FinishedAt = time.Now()

	slog.InfoContext(ctx, "settlement run done",
		"payments", len(statuses),
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)

	return report, nil
}

// RunJob adapts Run to the periodic job runner.
func (s *Service) RunJob(ctx context.Context) error {
	_, err := s.Run(ctx)
	return err
}

// Settle settles every pending payment of invoices. It returns either the
// statuses of all payments or the first error that occurred, in which case
// in-flight work is cancelled and its results are dropped.
func (s *Service) Settle(ctx context.Context, invoices []entity.Invoice) ([]entity.PaidPaymentStatus, error) {
	byOrganization := entity.GroupByOrganization(invoices)

	organizationIDs := lo.Keys(byOrganization)
	slices.Sort(organizationIDs)

	p := pool.NewWithResults[[]entity.PaidPaymentStatus]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(s.limits.organizations())

	for _, organizationID := range organizationIDs {
		organizationInvoices := byOrganization[organizationID]

		p.Go(func(ctx context.Context) ([]entity.PaidPaymentStatus, error) {
			return s.settleOrganization(ctx, organizationID, organizationInvoices)
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	return lo.Flatten(results), nil
}

func (s *Service) settleOrganization(
	ctx context.Context,
	organizationID string,
	invoices []entity.Invoice,
) ([]entity.PaidPaymentStatus, error) {
	ctx = logger.WithOrganizationID(ctx, organizationID)

	settings, err := s.settings.OrganizationSettings(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("get organization %q settings: %w", organizationID, err)
	}

	received, credits := entity.PartitionInvoices(invoices)
	budgets := AggregateCredits(credits, settings.Currency)

	slog.DebugContext(ctx, "organization credits aggregated",
		"currency", settings.Currency,
		"received_invoices", len(received),
		"credit_notes", len(credits),
	)

	p := pool.NewWithResults[[]entity.PaidPaymentStatus]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(s.limits.invoices())

	for _, inv := range received {
		p.Go(func(ctx context.Context) ([]entity.PaidPaymentStatus, error) {
			return s.settleInvoice(ctx, inv, settings.Currency, budgets.Budget(inv.ID))
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	return lo.Flatten(results), nil
}

// settleInvoice pays the invoice payments one by one in allocation order and
// stops at the first failure.
func (s *Service) settleInvoice(
	ctx context.Context,
	inv entity.ReceivedInvoice,
	currency entity.Currency,
	budget decimal.Decimal,
) ([]entity.PaidPaymentStatus, error) {
	ctx = logger.WithInvoiceID(ctx, inv.ID)

	allocations := Allocate(inv.Payments, budget, inv.Currency, currency)
	statuses := make([]entity.PaidPaymentStatus, 0, len(allocations))

	for _, a := range allocations {
		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("settle invoice %q: %w", inv.ID, err)
		}

		status, err := s.Execute(ctx, a.Payment, a.Charge, currency)
		if err != nil {
			return nil, fmt.Errorf("settle invoice %q: %w", inv.ID, err)
		}

		status.OrganizationID = inv.OrgID
		status.InvoiceID = inv.ID
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Execute issues exactly one pay call for payment. The charge is rounded to
// the minor units of currency before it is sent.
func (s *Service) Execute(
	ctx context.Context,
	payment entity.PendingPayment,
	charge decimal.Decimal,
	currency entity.Currency,
) (entity.PaidPaymentStatus, error) {
	amount := charge.Round(currency.Exponent())

	status, err := s.gateway.PayPayment(ctx, payment.ID, amount)
	if err != nil {
		return entity.PaidPaymentStatus{}, fmt.Errorf("pay payment %q: %w", payment.ID, err)
	}

	err = status.Validate()
	if err != nil {
		return entity.PaidPaymentStatus{}, fmt.Errorf("pay payment %q: %w", payment.ID, err)
	}

	slog.InfoContext(ctx, "payment settled",
		"payment_id", payment.ID,
		"original_amount", payment.Amount.String(),
		"charge", amount.String(),
		"currency", currency,
		"status", status,
	)

	return entity.PaidPaymentStatus{
		Currency: currency,
		Payment:  payment.WithAmount(amount),
		Status:   status,
	}, nil
}
