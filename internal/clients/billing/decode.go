package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

type invoiceResponse struct {
	ID             string            `json:"id" validate:"required"`
	Amount         *decimal.Decimal  `json:"amount" validate:"required"`
	Currency       string            `json:"currency" validate:"required,oneof=USD CLP MXN"`
	OrganizationID string            `json:"organization_id" validate:"required"`
	Type           string            `json:"type" validate:"required,oneof=received credit_note"`
	Reference      string            `json:"reference" validate:"required_if=Type credit_note"`
	Payments       []paymentResponse `json:"payments" validate:"dive"`
}

type paymentResponse struct {
	ID     string           `json:"id" validate:"required"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	Status string           `json:"status" validate:"required,oneof=pending paid"`
}

type settingsResponse struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	Currency       string `json:"currency" validate:"required,oneof=USD CLP MXN"`
}

func (c *Client) toInvoice(raw invoiceResponse) (entity.Invoice, error) {
	err := c.validate.Struct(raw)
	if err != nil {
		return nil, entity.ParseError(fmt.Errorf("not a valid invoice: %w", err))
	}

	switch entity.InvoiceType(raw.Type) {
	case entity.InvoiceTypeCreditNote:
		return entity.CreditNote{
			ID:        raw.ID,
			Amount:    *raw.Amount,
			Currency:  entity.Currency(raw.Currency),
			OrgID:     raw.OrganizationID,
			Reference: raw.Reference,
		}, nil

	default:
		payments := make([]entity.Payment, 0, len(raw.Payments))

		for _, p := range raw.Payments {
			payments = append(payments, toPayment(p))
		}

		return entity.ReceivedInvoice{
			ID:       raw.ID,
			Amount:   *raw.Amount,
			Currency: entity.Currency(raw.Currency),
			OrgID:    raw.OrganizationID,
			Payments: payments,
		}, nil
	}
}

func toPayment(raw paymentResponse) entity.Payment {
	if entity.PaymentStatus(raw.Status) == entity.PaymentStatusPaid {
		return entity.PaidPayment{ID: raw.ID, Amount: *raw.Amount}
	}

	return entity.PendingPayment{ID: raw.ID, Amount: *raw.Amount}
}
