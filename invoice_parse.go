package ubl

// Detail sets how much of a document is projected for display.
type Detail int

// Detail levels, from least to most.
const (
	DetailSummary Detail = iota
	DetailDefault
	DetailDetailed
)

// String returns the name of the level.
func (d Detail) String() string {
	switch d {
	case DetailSummary:
		return "summary"
	case DetailDefault:
		return "default"
	case DetailDetailed:
		return "detailed"
	}
	return "unknown"
}

// View is the complete display grouping of a document, ready to be
// handed to a renderer.
type View struct {
	Title     string `json:"title"`
	TypeCode  string `json:"typeCode,omitempty"`
	ID        string `json:"id"`
	IssueDate string `json:"issueDate,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Reference string `json:"reference,omitempty"`
	Order     string `json:"order,omitempty"`
	Period    string `json:"period,omitempty"`
	// Profile names the context the document claims to follow.
	Profile  string        `json:"profile,omitempty"`
	Notes    []string      `json:"notes,omitempty"`
	Supplier *PartyView    `json:"supplier,omitempty"`
	Customer *PartyView    `json:"customer,omitempty"`
	Delivery *DeliveryView `json:"delivery,omitempty"`
	Lines    []LineView    `json:"lines"`
	Charges  []ChargeView  `json:"charges,omitempty"`
	Tax      *TaxSection   `json:"tax,omitempty"`
	Totals   []TotalRow    `json:"totals,omitempty"`
	Payment  *PaymentView  `json:"payment,omitempty"`
	Detail   Detail        `json:"detail"`
}

// Titles used for the supported document kinds.
const (
	TitleTaxInvoice = "Tax Invoice"
	TitleCreditNote = "Credit Note"
)

// NewView projects the document into its display grouping. It never
// fails: anything missing from the source is left out of the view.
func NewView(inv *Invoice, level Detail) *View {
	ccy := inv.Currency()
	v := &View{
		Title:     TitleTaxInvoice,
		TypeCode:  inv.TypeCode(),
		ID:        inv.ID.String(),
		IssueDate: inv.IssueDate.String(),
		DueDate:   inv.DueDate.String(),
		Currency:  ccy,
		Reference: inv.BuyerReference.String(),
		Supplier:  ProjectParty(inv.Supplier(), level),
		Customer:  ProjectParty(inv.Customer(), level),
		Lines:     ProjectLines(inv.Lines(), ccy, level),
		Charges:   ProjectCharges(inv.AllowanceCharge, ccy),
		Tax:       ProjectTax(firstTaxTotal(inv.TaxTotal), ccy),
		Totals:    ProjectTotals(inv.LegalMonetaryTotal, ccy),
		Payment:   ProjectPayment(inv, level),
		Detail:    level,
	}
	if inv.IsCreditNote() {
		v.Title = TitleCreditNote
	}
	if inv.OrderReference != nil {
		v.Order = inv.OrderReference.ID.String()
	}
	if len(inv.InvoicePeriod) > 0 {
		v.Period = periodText(&inv.InvoicePeriod[0])
	}
	if ctx := inv.Context(); ctx != nil {
		v.Profile = ctx.Name
	}
	for _, n := range inv.Note {
		if s := n.String(); s != "" {
			v.Notes = append(v.Notes, s)
		}
	}
	if level >= DetailDefault && len(inv.Delivery) > 0 {
		v.Delivery = ProjectDelivery(&inv.Delivery[0])
	}
	return v
}
