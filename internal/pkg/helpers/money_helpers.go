package helpers

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount without trailing zeros followed by the currency, e.g. "22.5 UAH"
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.String()
	}
	return amount.String() + " " + currency
}

// SumDecimals adds up amounts
func SumDecimals(amounts ...decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(amounts[0], amounts[1:]...)
}
