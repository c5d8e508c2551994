package ubl

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// InvoiceLine represents a line item in an invoice and credit note
type InvoiceLine struct {
	ID                  *Text                 `xml:"cbc:ID"`
	Note                List[Text]            `xml:"cbc:Note"`
	InvoicedQuantity    *Quantity             `xml:"cbc:InvoicedQuantity"`
	CreditedQuantity    *Quantity             `xml:"cbc:CreditedQuantity"`
	LineExtensionAmount *Amount               `xml:"cbc:LineExtensionAmount"`
	AccountingCost      *Text                 `xml:"cbc:AccountingCost"`
	InvoicePeriod       *Period               `xml:"cac:InvoicePeriod"`
	AllowanceCharge     List[AllowanceCharge] `xml:"cac:AllowanceCharge"`
	Item                *Item                 `xml:"cac:Item"`
	Price               *Price                `xml:"cac:Price"`
}

// Quantity returns the invoiced or credited quantity.
func (l *InvoiceLine) Quantity() *Quantity {
	if l.InvoicedQuantity != nil {
		return l.InvoicedQuantity
	}
	return l.CreditedQuantity
}

// Item represents an item in an invoice line
type Item struct {
	Description                *Text             `xml:"cbc:Description"`
	Name                       *Text             `xml:"cbc:Name"`
	BuyersItemIdentification   *Identification   `xml:"cac:BuyersItemIdentification"`
	SellersItemIdentification  *Identification   `xml:"cac:SellersItemIdentification"`
	StandardItemIdentification *Identification   `xml:"cac:StandardItemIdentification"`
	ClassifiedTaxCategory      List[TaxCategory] `xml:"cac:ClassifiedTaxCategory"`
}

// Price represents the price of an item
type Price struct {
	PriceAmount  *Amount   `xml:"cbc:PriceAmount"`
	BaseQuantity *Quantity `xml:"cbc:BaseQuantity"`
}

// newLine builds a cac:InvoiceLine. Line IDs follow the item order,
// starting at zero.
func newLine(i int, it InvoiceItem, ccy string, d Defaults) *Element {
	qty := decimal.NewFromFloat(it.Qty)
	price := decimal.NewFromFloat(it.UnitPrice)
	return El("cac:InvoiceLine",
		Field("cbc:ID", strconv.Itoa(i)),
		Field("cbc:InvoicedQuantity", qty.String(), Attr{Name: "unitCode", Value: d.UnitCode}),
		newAmount("cbc:LineExtensionAmount", round2(qty.Mul(price)), ccy),
		Field("cbc:AccountingCost", it.Code),
		newPeriod(it.StartDate, it.EndDate),
		El("cac:Item",
			Field("cbc:Description", it.Description),
			Field("cbc:Name", it.Name),
			El("cac:BuyersItemIdentification", Field("cbc:ID", it.BuyerID)),
			El("cac:SellersItemIdentification", Field("cbc:ID", it.SellerID)),
			newTaxCategory("cac:ClassifiedTaxCategory", d),
		),
		El("cac:Price",
			Field("cbc:PriceAmount", priceText(price), Attr{Name: "currencyID", Value: ccy}),
		),
	)
}

func newPeriod(start, end string) *Element {
	return El("cac:InvoicePeriod",
		Field("cbc:StartDate", start),
		Field("cbc:EndDate", end),
	)
}
