package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCLP Currency = "CLP"
	CurrencyMXN Currency = "MXN"
)

// usdRates is the amount of each currency that equals one USD.
//
//nolint:gochecknoglobals
var usdRates = map[Currency]decimal.Decimal{
	CurrencyUSD: decimal.NewFromInt(1),
	CurrencyCLP: decimal.NewFromInt(900),
	CurrencyMXN: decimal.NewFromInt(15),
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Validate() error {
	switch c {
	case CurrencyUSD, CurrencyCLP, CurrencyMXN:
		return nil
	default:
		return ParseError(fmt.Errorf("unknown currency %q", string(c)))
	}
}

// Exponent returns the number of minor-unit digits the currency is charged in.
func (c Currency) Exponent() int32 {
	if c == CurrencyCLP {
		return 0
	}

	return 2
}

// Convert converts amount between currencies through the USD rate table.
// Amounts in the same currency are returned untouched.
func Convert(amount decimal.Decimal, from, to Currency) decimal.Decimal {
	if from == to {
		return amount
	}

	return amount.Div(usdRates[from]).Mul(usdRates[to])
}
