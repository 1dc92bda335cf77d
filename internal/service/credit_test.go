package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/internal/service"
)

func creditNote(id, ref string, amount int64, currency entity.Currency) entity.CreditNote {
	return entity.CreditNote{
		ID:        id,
		Amount:    decimal.NewFromInt(amount),
		Currency:  currency,
		OrgID:     "org1",
		Reference: ref,
	}
}

func TestAggregateCredits(t *testing.T) {
	t.Parallel()

	notes := []entity.CreditNote{
		creditNote("cn1", "A", 100, entity.CurrencyCLP),
		creditNote("cn2", "A", 50, entity.CurrencyCLP),
	}

	got := service.AggregateCredits(notes, entity.CurrencyCLP)

	require.Len(t, got, 1)
	require.True(t, got["A"].Equal(decimal.NewFromInt(150)), "got %s", got["A"])
}

func TestAggregateCredits_Empty(t *testing.T) {
	t.Parallel()

	got := service.AggregateCredits(nil, entity.CurrencyUSD)

	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestAggregateCredits_MixedCurrencies(t *testing.T) {
	t.Parallel()

	notes := []entity.CreditNote{
		creditNote("cn1", "A", 900, entity.CurrencyCLP),
		creditNote("cn2", "A", 15, entity.CurrencyMXN),
		creditNote("cn3", "A", 3, entity.CurrencyUSD),
		creditNote("cn4", "B", 30, entity.CurrencyMXN),
	}

	got := service.AggregateCredits(notes, entity.CurrencyUSD)

	require.Len(t, got, 2)
	require.True(t, got["A"].Equal(decimal.NewFromInt(5)), "got %s", got["A"])
	require.True(t, got["B"].Equal(decimal.NewFromInt(2)), "got %s", got["B"])
}

func TestAggregateCredits_Idempotent(t *testing.T) {
	t.Parallel()

	notes := []entity.CreditNote{
		creditNote("cn1", "A", 10, entity.CurrencyUSD),
		creditNote("cn2", "B", 20, entity.CurrencyMXN),
		creditNote("cn3", "A", 900, entity.CurrencyCLP),
	}

	first := service.AggregateCredits(notes, entity.CurrencyMXN)
	second := service.AggregateCredits(notes, entity.CurrencyMXN)

	require.Equal(t, len(first), len(second))

	for ref, amount := range first {
		require.True(t, amount.Equal(second[ref]), "reference %s: %s != %s", ref, amount, second[ref])
	}
}
