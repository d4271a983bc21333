package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRates converts candidate salaries into the base currency for
// pipeline aggregation. Rate returns how many base-currency units one unit
// of the given currency is worth at the given point in time.
type ExchangeRates interface {
	Rate(currency string, asOf time.Time) (decimal.Decimal, error)
}

// StaticExchangeRates serves a fixed rate table. The base currency always
// converts at 1; any other currency missing from the table is a hard error,
// never a silent skip.
type StaticExchangeRates struct {
	base  string
	rates map[string]decimal.Decimal
}

func NewStaticExchangeRates(base string, rates map[string]decimal.Decimal) *StaticExchangeRates {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		normalized[normalizeCurrency(currency)] = rate
	}
	return &StaticExchangeRates{base: normalizeCurrency(base), rates: normalized}
}

func (exchange *StaticExchangeRates) Rate(currency string, _ time.Time) (decimal.Decimal, error) {
	code := normalizeCurrency(currency)
	if code == exchange.base {
		return decimal.NewFromInt(1), nil
	}
	rate, found := exchange.rates[code]
	if !found {
		return decimal.Decimal{}, &MissingExchangeRateError{Currency: currency}
	}
	return rate, nil
}

func normalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
