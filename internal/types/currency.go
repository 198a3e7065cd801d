package types

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brazilianPortuguese = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats an amount as Brazilian Real, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	value, _ := amount.Float64()
	return brazilianPortuguese.Sprintf("R$ %v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
