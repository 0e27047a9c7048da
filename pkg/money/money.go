// Package money provides AUD display helpers on top of integer-cent
// arithmetic. All amounts inside the engine stay as decimals; this package
// only exists at the reporting edge.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AUD is the only currency the engine reports in.
const AUD = money.AUD

// FromDecimal converts a decimal dollar amount into go-money AUD,
// rounding to the nearest cent.
func FromDecimal(amount decimal.Decimal) *money.Money {
	cents := amount.Mul(decimal.New(1, 2)).Round(0).IntPart()
	return money.New(cents, AUD)
}

// FormatAUD renders a decimal dollar amount as a localized AUD string
// with thousands separators and two decimal places.
func FormatAUD(amount decimal.Decimal) string {
	return FromDecimal(amount).Display()
}
