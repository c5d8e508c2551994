package ubl

import (
	"github.com/shopspring/decimal"
)

// TaxTotal represents a tax total
type TaxTotal struct {
	TaxAmount   *Amount           `xml:"cbc:TaxAmount"`
	TaxSubtotal List[TaxSubtotal] `xml:"cac:TaxSubtotal"`
}

// TaxSubtotal represents a tax subtotal
type TaxSubtotal struct {
	TaxableAmount *Amount      `xml:"cbc:TaxableAmount"`
	TaxAmount     *Amount      `xml:"cbc:TaxAmount"`
	TaxCategory   *TaxCategory `xml:"cac:TaxCategory"`
}

// TaxCategory represents a tax category. It is also used for the
// classified tax category of an item.
type TaxCategory struct {
	ID                     *IDType    `xml:"cbc:ID"`
	Percent                *Text      `xml:"cbc:Percent"`
	TaxExemptionReasonCode *Text      `xml:"cbc:TaxExemptionReasonCode"`
	TaxExemptionReason     *Text      `xml:"cbc:TaxExemptionReason"`
	TaxScheme              *TaxScheme `xml:"cac:TaxScheme"`
}

// TaxScheme represents a tax scheme
type TaxScheme struct {
	ID *IDType `xml:"cbc:ID"`
}

// MonetaryTotal represents the monetary totals of the invoice
type MonetaryTotal struct {
	LineExtensionAmount   *Amount `xml:"cbc:LineExtensionAmount"`
	TaxExclusiveAmount    *Amount `xml:"cbc:TaxExclusiveAmount"`
	TaxInclusiveAmount    *Amount `xml:"cbc:TaxInclusiveAmount"`
	AllowanceTotalAmount  *Amount `xml:"cbc:AllowanceTotalAmount"`
	ChargeTotalAmount     *Amount `xml:"cbc:ChargeTotalAmount"`
	PrepaidAmount         *Amount `xml:"cbc:PrepaidAmount"`
	PayableRoundingAmount *Amount `xml:"cbc:PayableRoundingAmount"`
	PayableAmount         *Amount `xml:"cbc:PayableAmount"`
}

var (
	one     = decimal.NewFromInt(1)
	half    = decimal.RequireFromString("0.5")
	hundred = decimal.NewFromInt(100)
)

// totals are the document level amounts derived from the items.
type totals struct {
	// sum is the unrounded sum of quantity times unit price.
	sum   decimal.Decimal
	tax   decimal.Decimal
	total decimal.Decimal
}

// calculateTotals sums the unrounded line products and rounds each
// derived amount once.
func calculateTotals(items []InvoiceItem, rate decimal.Decimal) totals {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineSum(it))
	}
	return totals{
		sum:   sum,
		tax:   round2(sum.Mul(rate)),
		total: round2(sum.Mul(one.Add(rate))),
	}
}

func lineSum(it InvoiceItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Qty).Mul(decimal.NewFromFloat(it.UnitPrice))
}

// round2 rounds to two decimal places, halves towards positive infinity.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

func amountText(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// priceText keeps precision beyond cents, but always shows at least two
// decimals.
func priceText(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}

func percentText(rate decimal.Decimal) string {
	return rate.Mul(hundred).String()
}

func newAmount(name string, d decimal.Decimal, ccy string) *Element {
	return Field(name, amountText(d), Attr{Name: "currencyID", Value: ccy})
}

func newTaxCategory(name string, d Defaults) *Element {
	return El(name,
		Field("cbc:ID", d.TaxCategory),
		Field("cbc:Percent", percentText(d.TaxRate)),
		El("cac:TaxScheme", Field("cbc:ID", d.TaxScheme)),
	)
}

// newTaxTotal aggregates GST in a single subtotal.
func newTaxTotal(t totals, ccy string, d Defaults) *Element {
	return El("cac:TaxTotal",
		newAmount("cbc:TaxAmount", t.tax, ccy),
		El("cac:TaxSubtotal",
			newAmount("cbc:TaxableAmount", round2(t.sum), ccy),
			newAmount("cbc:TaxAmount", t.tax, ccy),
			newTaxCategory("cac:TaxCategory", d),
		),
	)
}

func newMonetaryTotal(t totals, ccy string) *Element {
	sum := round2(t.sum)
	return El("cac:LegalMonetaryTotal",
		newAmount("cbc:LineExtensionAmount", sum, ccy),
		newAmount("cbc:TaxExclusiveAmount", sum, ccy),
		newAmount("cbc:TaxInclusiveAmount", t.total, ccy),
		newAmount("cbc:PayableAmount", t.total, ccy),
	)
}
