// Package format formatea moneda, números y fechas para el panel, con la
// convención en-US del cliente (separador de miles con coma, USD).
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formatea un monto como USD sin decimales (ej. $12,500).
func Currency(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("$%v", number.Decimal(f, number.MaxFractionDigits(0)))
}

// Number formatea un entero con separadores de miles (ej. 1,250).
func Number(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// Date formatea una fecha corta legible (ej. Nov 5, 2024).
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
