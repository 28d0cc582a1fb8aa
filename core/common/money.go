package common

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatMoney renders amount with the symbol of the ISO currency code,
// using locale's number conventions. Unknown codes or locales fall back
// to USD and English.
func FormatMoney(amount decimal.Decimal, code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
