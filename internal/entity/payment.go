package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is either a PendingPayment or a PaidPayment. Only pending payments
// take part in a settlement.
type Payment interface {
	PaymentID() string
	PaymentAmount() decimal.Decimal
	Status() PaymentStatus

	payment()
}

type PendingPayment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

func (p PendingPayment) PaymentID() string              { return p.ID }
func (p PendingPayment) PaymentAmount() decimal.Decimal { return p.Amount }
func (p PendingPayment) Status() PaymentStatus          { return PaymentStatusPending }
func (PendingPayment) payment()                         {}

// WithAmount returns a copy of the payment carrying amount.
func (p PendingPayment) WithAmount(amount decimal.Decimal) PendingPayment {
	p.Amount = amount
	return p
}

type PaidPayment struct {
	ID     string
	Amount decimal.Decimal
}

func (p PaidPayment) PaymentID() string              { return p.ID }
func (p PaidPayment) PaymentAmount() decimal.Decimal { return p.Amount }
func (p PaidPayment) Status() PaymentStatus          { return PaymentStatusPaid }
func (PaidPayment) payment()                         {}

// SettlementStatus is the answer of the payment endpoint for one pay call.
type SettlementStatus string

const (
	SettlementStatusPaid        SettlementStatus = "paid"
	SettlementStatusWrongAmount SettlementStatus = "wrong_amount"
)

func (s SettlementStatus) String() string {
	return string(s)
}

func (s SettlementStatus) Validate() error {
	switch s {
	case SettlementStatusPaid, SettlementStatusWrongAmount:
		return nil
	default:
		return ParseError(fmt.Errorf("unknown payment status %q", string(s)))
	}
}

// PaidPaymentStatus is the outcome of settling one pending payment. Payment
// carries the amount that was actually charged, in the organization currency.
type PaidPaymentStatus struct {
	OrganizationID string           `json:"organizationId"`
	InvoiceID      string           `json:"invoiceId"`
	Currency       Currency         `json:"currency"`
	Payment        PendingPayment   `json:"payment"`
	Status         SettlementStatus `json:"status"`
}
