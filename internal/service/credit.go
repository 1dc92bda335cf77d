package service

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

// AggregateCredits sums credit notes per reference, converted into target.
// References are not checked against existing invoices.
func AggregateCredits(creditNotes []entity.CreditNote, target entity.Currency) entity.AmountByReference {
	groups := lo.GroupBy(creditNotes, func(cn entity.CreditNote) string {
		return cn.Reference
	})

	budgets := make(entity.AmountByReference, len(groups))

	for ref, group := range groups {
		budgets[ref] = lo.Reduce(group, func(sum decimal.Decimal, cn entity.CreditNote, _ int) decimal.Decimal {
			return sum.Add(entity.Convert(cn.Amount, cn.Currency, target))
		}, decimal.Zero)
	}

	return budgets
}
