package entity

import (
	"github.com/shopspring/decimal"
)

// OrganizationSettings holds the currency all settlement amounts of an
// organization are normalized into.
type OrganizationSettings struct {
	OrganizationID string
	Currency       Currency
}

// AmountByReference maps an invoice reference to the credit available for it,
// already converted into the organization currency.
type AmountByReference map[string]decimal.Decimal

// Budget returns the credit available for ref, zero when there is none.
func (a AmountByReference) Budget(ref string) decimal.Decimal {
	if v, ok := a[ref]; ok {
		return v
	}

	return decimal.Zero
}
