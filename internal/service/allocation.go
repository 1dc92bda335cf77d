package service

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

// Allocation is the amount to charge for one pending payment. Charge and
// RemainingBudget are expressed in the settlement currency.
type Allocation struct {
	Payment         entity.PendingPayment
	Charge          decimal.Decimal
	RemainingBudget decimal.Decimal
}

// Allocate spreads budget over the pending payments, smallest first.
//
// Each payment consumes its full converted amount from the budget, not only the
// part that was discounted.
func Allocate(
	payments []entity.Payment,
	budget decimal.Decimal,
	invoiceCurrency, target entity.Currency,
) []Allocation {
	pending := lo.FilterMap(payments, func(p entity.Payment, _ int) (entity.PendingPayment, bool) {
		pp, ok := p.(entity.PendingPayment)
		return pp, ok
	})

	slices.SortStableFunc(pending, func(a, b entity.PendingPayment) int {
		return a.Amount.Cmp(b.Amount)
	})

	remaining := decimal.Max(budget, decimal.Zero)
	allocations := make([]Allocation, 0, len(pending))

	for _, p := range pending {
		amount := entity.Convert(p.Amount, invoiceCurrency, target)

		charge := decimal.Max(amount.Sub(remaining), decimal.Zero)
		remaining = decimal.Max(remaining.Sub(amount), decimal.Zero)

		allocations = append(allocations, Allocation{
			Payment:         p,
			Charge:          charge,
			RemainingBudget: remaining,
		})
	}

	return allocations
}
