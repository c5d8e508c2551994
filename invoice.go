package ubl

import (
	"encoding/xml"
)

// Main UBL Invoice Namespace
const (
	NamespaceUBLInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceUBLCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
)

// Invoice represents the root element of a UBL Invoice **or** Credit Note; the structures
// between the two types are so similar, that it doesn't make much sense to separate.
//
// Only the parts needed for display are mapped. Every field is optional
// as documents from other producers frequently leave out mandatory
// elements.
type Invoice struct {
	XMLName xml.Name `json:"-"`

	CustomizationID      *Text                 `xml:"cbc:CustomizationID"`
	ProfileID            *Text                 `xml:"cbc:ProfileID"`
	ID                   *Text                 `xml:"cbc:ID"`
	IssueDate            *Text                 `xml:"cbc:IssueDate"`
	DueDate              *Text                 `xml:"cbc:DueDate"`
	InvoiceTypeCode      *Text                 `xml:"cbc:InvoiceTypeCode"`
	CreditNoteTypeCode   *Text                 `xml:"cbc:CreditNoteTypeCode"`
	Note                 List[Text]            `xml:"cbc:Note"`
	DocumentCurrencyCode *Text                 `xml:"cbc:DocumentCurrencyCode"`
	BuyerReference       *Text                 `xml:"cbc:BuyerReference"`
	InvoicePeriod        List[Period]          `xml:"cac:InvoicePeriod"`
	OrderReference       *Reference            `xml:"cac:OrderReference"`
	AccountingSupplier   *SupplierParty        `xml:"cac:AccountingSupplierParty" json:"AccountingSupplierParty"`
	AccountingCustomer   *CustomerParty        `xml:"cac:AccountingCustomerParty" json:"AccountingCustomerParty"`
	Delivery             List[Delivery]        `xml:"cac:Delivery"`
	PaymentMeans         List[PaymentMeans]    `xml:"cac:PaymentMeans"`
	PaymentTerms         List[PaymentTerms]    `xml:"cac:PaymentTerms"`
	AllowanceCharge      List[AllowanceCharge] `xml:"cac:AllowanceCharge"`
	TaxTotal             List[TaxTotal]        `xml:"cac:TaxTotal"`
	LegalMonetaryTotal   *MonetaryTotal        `xml:"cac:LegalMonetaryTotal"`
	InvoiceLines         List[InvoiceLine]     `xml:"cac:InvoiceLine" json:"InvoiceLine"`
	CreditNoteLines      List[InvoiceLine]     `xml:"cac:CreditNoteLine" json:"CreditNoteLine"`
}

// Reference represents a reference to another document
type Reference struct {
	ID *Text `xml:"cbc:ID"`
}

// IsCreditNote reports whether the document is a credit note.
func (ui *Invoice) IsCreditNote() bool {
	return ui.XMLName.Local == "CreditNote" || ui.CreditNoteTypeCode != nil
}

// TypeCode returns the invoice or credit note type code.
func (ui *Invoice) TypeCode() string {
	if ui.InvoiceTypeCode != nil {
		return ui.InvoiceTypeCode.String()
	}
	return ui.CreditNoteTypeCode.String()
}

// Lines returns the invoice or credit note lines.
func (ui *Invoice) Lines() []InvoiceLine {
	if len(ui.InvoiceLines) > 0 {
		return ui.InvoiceLines
	}
	return ui.CreditNoteLines
}

// Currency returns the document currency, which is also used for
// amounts that do not state their own.
func (ui *Invoice) Currency() string {
	return ui.DocumentCurrencyCode.String()
}

// Context returns the known context matching the document's
// customization and profile IDs, or nil.
func (ui *Invoice) Context() *Context {
	return FindContext(ui.CustomizationID.String(), ui.ProfileID.String())
}

// Supplier returns the supplier party, if any.
func (ui *Invoice) Supplier() *Party {
	if ui.AccountingSupplier == nil {
		return nil
	}
	return ui.AccountingSupplier.Party
}

// Customer returns the customer party, if any.
func (ui *Invoice) Customer() *Party {
	if ui.AccountingCustomer == nil {
		return nil
	}
	return ui.AccountingCustomer.Party
}

// NewInvoice builds the pruned document tree of an invoice. Missing
// metadata and addresses are completed with the configured defaults on
// a copy of the inputs.
func NewInvoice(items []InvoiceItem, meta InvoiceMetadata, supplier, customer InvoiceParty, opts ...Option) (*Element, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	in := o.resolve(items, meta, supplier, customer)
	d := o.defaults
	m := in.meta
	ccy := m.CurrencyCode.String()
	t := calculateTotals(in.items, d.TaxRate)

	root := El("Invoice",
		Field("cbc:CustomizationID", o.context.CustomizationID),
		Field("cbc:ProfileID", o.context.ProfileID),
		Field("cbc:ID", m.ID),
		Field("cbc:IssueDate", m.IssueDate),
		Field("cbc:DueDate", m.DueDate),
		Field("cbc:InvoiceTypeCode", InvoiceTypeCommercial),
		Field("cbc:Note", m.Note),
		Field("cbc:DocumentCurrencyCode", ccy),
		Field("cbc:BuyerReference", m.Reference),
		newPeriod(m.StartDate, m.EndDate),
		El("cac:AccountingSupplierParty", newParty(in.supplier)),
		El("cac:AccountingCustomerParty", newParty(in.customer)),
		newDelivery(m.Delivery),
		newTaxTotal(t, ccy, d),
		newMonetaryTotal(t, ccy),
	)
	root.Attrs = []Attr{
		{Name: "xmlns:cac", Value: NamespaceCAC},
		{Name: "xmlns:cbc", Value: NamespaceCBC},
		{Name: "xmlns", Value: NamespaceUBLInvoice},
	}
	for i, it := range in.items {
		root.Children = append(root.Children, newLine(i, it, ccy, d))
	}
	return Prune(root), nil
}
