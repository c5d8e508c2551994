package ubl

import (
	"github.com/invopop/gobl/currency"
	"github.com/invopop/gobl/num"
	"github.com/shopspring/decimal"
)

// NotAvailable is displayed instead of amounts that are not numbers.
const NotAvailable = "N/A"

// Amount represents a monetary amount. Conformant documents wrap the
// value with a currencyID attribute; some producers emit the bare
// number instead, which leaves CurrencyID nil.
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// UnmarshalJSON accepts both the raw and the wrapped encodings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	l, err := decodeLeaf(data)
	if err != nil {
		return err
	}
	a.Value = l.text
	a.CurrencyID = l.attr("currencyID")
	return nil
}

// Wrapped reports whether the amount carries its own currency.
func (a *Amount) Wrapped() bool {
	return a != nil && a.CurrencyID != nil
}

// Money normalizes the amount. Bare amounts take the fallback currency,
// usually the document currency.
func (a *Amount) Money(fallback string) Money {
	if a == nil {
		return Money{Currency: fallback}
	}
	m := Money{Currency: fallback}
	if a.Wrapped() {
		m.Currency = cleanString(*a.CurrencyID)
	}
	m.Value, m.Valid = parseAmount(a.Value)
	return m
}

// Format is shorthand for formatting the normalized amount.
func (a *Amount) Format(fallback string) string {
	return a.Money(fallback).String()
}

// Money is a parsed monetary value with its currency code.
type Money struct {
	Value    num.Amount
	Currency string
	Valid    bool
}

// String formats the value for display, see FormatCurrency.
func (m Money) String() string {
	if !m.Valid {
		return NotAvailable
	}
	return formatMoney(m.Value, m.Currency)
}

// FormatCurrency produces a display string for a numeric value in the
// given currency: a sign for negative values, the currency symbol when
// one is known (otherwise the code as a suffix) and two decimals.
// Values that are not numbers result in NotAvailable.
func FormatCurrency(value, code string) string {
	a, ok := parseAmount(value)
	if !ok {
		return NotAvailable
	}
	return formatMoney(a, code)
}

func formatMoney(a num.Amount, code string) string {
	var sign string
	if a.Value() < 0 {
		sign = "-"
		a = num.MakeAmount(-a.Value(), a.Exp())
	}
	value := a.Rescale(2).String()
	if sym := currencySymbol(code); sym != "" {
		return sign + sym + value
	}
	if code == "" {
		return sign + value
	}
	return sign + value + " " + code
}

// parseAmount reads a numeric string. Exponent notation, which may come
// from JSON numbers, is accepted as well.
func parseAmount(s string) (num.Amount, bool) {
	s = normalizeNumericString(s)
	if s == "" {
		return num.Amount{}, false
	}
	if a, err := num.AmountFromString(s); err == nil {
		return a, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return num.Amount{}, false
	}
	a, err := num.AmountFromString(d.String())
	if err != nil {
		return num.Amount{}, false
	}
	return a, true
}

func currencySymbol(code string) string {
	if d := currency.Get(currency.Code(code)); d != nil {
		return d.Symbol
	}
	return ""
}
