package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatYuan renders an amount as "¥1,234.56". Rounding happens here, never in the calculators.
func FormatYuan(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "¥" + formatThousand(intPart) + "." + frac
}

// FormatPercent renders a 0-100 rate as "12.5%".
func FormatPercent(rate decimal.NullDecimal) string {
	if !rate.Valid {
		return "-"
	}
	return rate.Decimal.String() + "%"
}

func formatThousand(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
