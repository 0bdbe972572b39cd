package sync

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies whose minor unit equals the major unit. Stripe sends these
// amounts whole, not in hundredths.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {},
	"kmf": {}, "krw": {}, "mga": {}, "pyg": {}, "rwf": {},
	"vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

// AmountForDB converts a minor-unit amount from the provider into the major
// units stored locally. Zero-decimal currencies pass through unchanged.
func AmountForDB(amount int64, currency string) decimal.Decimal {
	d := decimal.NewFromInt(amount)
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return d
	}
	return d.Shift(-2)
}

// AmountForDBPtr converts an optional amount. An absent input stays absent
// rather than becoming zero.
func AmountForDBPtr(amount *int64, currency string) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	d := AmountForDB(*amount, currency)
	return &d
}

// AmountForAPI is the inverse conversion, used when a local amount has to be
// sent back to the provider.
func AmountForAPI(amount decimal.Decimal, currency string) int64 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return amount.IntPart()
	}
	return amount.Shift(2).IntPart()
}
