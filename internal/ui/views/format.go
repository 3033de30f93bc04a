package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders prices with two decimals and digit grouping
type PriceFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewPriceFormatter creates a formatter that prefixes prices with symbol
func NewPriceFormatter(symbol string) PriceFormatter {
	if symbol == "" {
		symbol = "$"
	}
	return PriceFormatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Format renders price, e.g. "$19.99"
func (f PriceFormatter) Format(price float64) string {
	if f.printer == nil {
		f = NewPriceFormatter(f.symbol)
	}
	return f.symbol + f.printer.Sprintf("%.2f", price)
}
