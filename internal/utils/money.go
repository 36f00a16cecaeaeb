package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimals revenue figures are shown with.
const MoneyPrecision = 2

// FormatMoney rounds amount to cents, e.g. 12.345 -> "12.35". A nil amount formats as "".
func FormatMoney(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(MoneyPrecision)
}
