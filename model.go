package ubl

import (
	"fmt"
	"time"

	"github.com/invopop/gobl/currency"
	"github.com/invopop/gobl/l10n"
)

const dateLayout = "2006-01-02"

// InvoiceItem is a single line of goods or services to invoice.
type InvoiceItem struct {
	Description string  `json:"description,omitempty"`
	Name        string  `json:"name,omitempty"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
	Code        string  `json:"code,omitempty"`
	BuyerID     string  `json:"buyerId,omitempty"`
	SellerID    string  `json:"sellerId,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
}

// InvoiceMetadata contains the invoice level details. Empty fields are
// completed with defaults when the invoice is built.
type InvoiceMetadata struct {
	ID           string           `json:"id,omitempty"`
	IssueDate    string           `json:"issueDate,omitempty"`
	DueDate      string           `json:"dueDate,omitempty"`
	Note         string           `json:"note,omitempty"`
	CurrencyCode currency.Code    `json:"currencyCode,omitempty"`
	Reference    string           `json:"reference,omitempty"`
	StartDate    string           `json:"startDate,omitempty"`
	EndDate      string           `json:"endDate,omitempty"`
	Delivery     *InvoiceDelivery `json:"delivery,omitempty"`
}

// InvoiceDelivery describes where and when the goods were delivered.
type InvoiceDelivery struct {
	DeliveryDate string          `json:"deliveryDate,omitempty"`
	Address      *InvoiceAddress `json:"address,omitempty"`
	Name         string          `json:"name,omitempty"`
}

// InvoiceAddress is a postal address.
type InvoiceAddress struct {
	StreetAddress string              `json:"streetAddress,omitempty"`
	ExtraLine     string              `json:"extraLine,omitempty"`
	Suburb        string              `json:"suburb,omitempty"`
	Postcode      string              `json:"postcode,omitempty"`
	State         string              `json:"state,omitempty"`
	Country       l10n.ISOCountryCode `json:"country,omitempty"`
}

// InvoiceParty is the supplier or the customer of an invoice.
type InvoiceParty struct {
	Name         string          `json:"name,omitempty"`
	ABN          string          `json:"abn,omitempty"`
	ContactName  string          `json:"contactName,omitempty"`
	ContactPhone string          `json:"contactPhone,omitempty"`
	ContactEmail string          `json:"contactEmail,omitempty"`
	Address      *InvoiceAddress `json:"address,omitempty"`
}

// Request groups everything needed to build an invoice. It is the
// JSON shape accepted by the command line tool.
type Request struct {
	Items    []InvoiceItem   `json:"items"`
	Meta     InvoiceMetadata `json:"meta"`
	Supplier InvoiceParty    `json:"supplier"`
	Customer InvoiceParty    `json:"customer"`
}

// Build converts the request into a UBL XML document.
func (r *Request) Build(opts ...Option) (string, error) {
	return Build(r.Items, r.Meta, r.Supplier, r.Customer, opts...)
}

// input is a fully resolved copy of the builder's arguments. Nothing
// in it is shared with the caller.
type input struct {
	items    []InvoiceItem
	meta     InvoiceMetadata
	supplier InvoiceParty
	customer InvoiceParty
}

func (o *options) resolve(items []InvoiceItem, meta InvoiceMetadata, supplier, customer InvoiceParty) *input {
	d := o.defaults
	in := &input{
		items:    append([]InvoiceItem(nil), items...),
		meta:     meta,
		supplier: supplier,
		customer: customer,
	}
	m := &in.meta

	if m.CurrencyCode == "" {
		m.CurrencyCode = d.Currency
	}
	if m.IssueDate == "" {
		m.IssueDate = o.now().Format(dateLayout)
	}
	if m.DueDate == "" {
		m.DueDate = dueDate(m.IssueDate, d.PaymentDays, o.now)
	}
	if m.Reference == "" {
		m.Reference = d.Reference
	}
	if m.ID == "" {
		m.ID = o.invoiceNumber()
	}

	in.supplier.Address = in.supplier.Address.withCountry(d.Country)
	in.customer.Address = in.customer.Address.withCountry(d.Country)

	if meta.Delivery != nil {
		dl := *meta.Delivery
		if dl.Address == nil {
			dl.Address = in.customer.Address.clone()
		}
		dl.Address = dl.Address.withCountry(d.Country)
		m.Delivery = &dl
	}

	return in
}

// invoiceNumber draws a random, zero padded invoice number.
func (o *options) invoiceNumber() string {
	limit := o.defaults.MaxID
	if limit <= 0 {
		limit = 1
	}
	return fmt.Sprintf("%0*d", o.defaults.IDWidth, o.ids(limit))
}

// dueDate adds the payment term to the issue date. Issue dates that
// cannot be read fall back to today.
func dueDate(issue string, days int, now func() time.Time) string {
	t, err := time.Parse(dateLayout, issue)
	if err != nil {
		t = now()
	}
	return t.AddDate(0, 0, days).Format(dateLayout)
}

func (a *InvoiceAddress) clone() *InvoiceAddress {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// withCountry returns a copy of the address with the country set,
// creating an empty address if needed.
func (a *InvoiceAddress) withCountry(country l10n.ISOCountryCode) *InvoiceAddress {
	c := a.clone()
	if c == nil {
		c = new(InvoiceAddress)
	}
	if c.Country == "" {
		c.Country = country
	}
	return c
}
