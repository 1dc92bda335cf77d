package entity

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceType string

const (
	InvoiceTypeReceived   InvoiceType = "received"
	InvoiceTypeCreditNote InvoiceType = "credit_note"
)

// Invoice is either a ReceivedInvoice or a CreditNote.
type Invoice interface {
	InvoiceID() string
	OrganizationID() string
	InvoiceAmount() decimal.Decimal
	InvoiceCurrency() Currency
	Type() InvoiceType

	invoice()
}

// ReceivedInvoice is an invoice with payments still to be settled.
type ReceivedInvoice struct {
	ID       string
	Amount   decimal.Decimal
	Currency Currency
	OrgID    string
	Payments []Payment
}

func (i ReceivedInvoice) InvoiceID() string              { return i.ID }
func (i ReceivedInvoice) OrganizationID() string         { return i.OrgID }
func (i ReceivedInvoice) InvoiceAmount() decimal.Decimal { return i.Amount }
func (i ReceivedInvoice) InvoiceCurrency() Currency      { return i.Currency }
func (i ReceivedInvoice) Type() InvoiceType              { return InvoiceTypeReceived }
func (ReceivedInvoice) invoice()                         {}

// CreditNote offsets the received invoice named by Reference.
type CreditNote struct {
	ID        string
	Amount    decimal.Decimal
	Currency  Currency
	OrgID     string
	Reference string
}

func (c CreditNote) InvoiceID() string              { return c.ID }
func (c CreditNote) OrganizationID() string         { return c.OrgID }
func (c CreditNote) InvoiceAmount() decimal.Decimal { return c.Amount }
func (c CreditNote) InvoiceCurrency() Currency      { return c.Currency }
func (c CreditNote) Type() InvoiceType              { return InvoiceTypeCreditNote }
func (CreditNote) invoice()                         {}

// PartitionInvoices splits invoices into received invoices and credit notes,
// keeping their relative order.
func PartitionInvoices(invoices []Invoice) ([]ReceivedInvoice, []CreditNote) {
	var (
		received []ReceivedInvoice
		credits  []CreditNote
	)

	for _, inv := range invoices {
		switch v := inv.(type) {
		case ReceivedInvoice:
			received = append(received, v)
		case CreditNote:
			credits = append(credits, v)
		}
	}

	return received, credits
}

// GroupByOrganization groups invoices by the organization they belong to.
func GroupByOrganization(invoices []Invoice) map[string][]Invoice {
	return lo.GroupBy(invoices, func(inv Invoice) string {
		return inv.OrganizationID()
	})
}
