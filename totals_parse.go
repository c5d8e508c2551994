package ubl

// TotalRow is a single line of the monetary totals table.
type TotalRow struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
	// Final marks the payable amount, which is displayed emphasized.
	Final bool `json:"final,omitempty"`
}

// totalLabels lists the monetary totals in display order.
var totalLabels = []struct {
	key   string
	label string
	get   func(*MonetaryTotal) *Amount
}{
	{"LineExtensionAmount", "Subtotal (items)", func(t *MonetaryTotal) *Amount { return t.LineExtensionAmount }},
	{"AllowanceTotalAmount", "Total discount", func(t *MonetaryTotal) *Amount { return t.AllowanceTotalAmount }},
	{"ChargeTotalAmount", "Total additional charges", func(t *MonetaryTotal) *Amount { return t.ChargeTotalAmount }},
	{"TaxExclusiveAmount", "Subtotal (before tax)", func(t *MonetaryTotal) *Amount { return t.TaxExclusiveAmount }},
	{"TaxInclusiveAmount", "Subtotal (after tax)", func(t *MonetaryTotal) *Amount { return t.TaxInclusiveAmount }},
	{"PrepaidAmount", "Credit", func(t *MonetaryTotal) *Amount { return t.PrepaidAmount }},
	{"PayableRoundingAmount", "Rounding", func(t *MonetaryTotal) *Amount { return t.PayableRoundingAmount }},
	{"PayableAmount", "Payable amount", func(t *MonetaryTotal) *Amount { return t.PayableAmount }},
}

// ProjectTotals lists the totals present in the source, in a fixed
// order. Without a discount or charge total the items subtotal would
// repeat the before tax subtotal, so it is left out.
func ProjectTotals(t *MonetaryTotal, ccy string) []TotalRow {
	if t == nil {
		return nil
	}
	skipLines := t.AllowanceTotalAmount == nil && t.ChargeTotalAmount == nil
	var rows []TotalRow
	for _, l := range totalLabels {
		a := l.get(t)
		if a == nil {
			continue
		}
		if skipLines && l.key == "LineExtensionAmount" {
			continue
		}
		rows = append(rows, TotalRow{
			Key:    l.key,
			Label:  l.label,
			Amount: a.Format(ccy),
			Final:  l.key == "PayableAmount",
		})
	}
	return rows
}

// TaxSection is the tax summary table.
type TaxSection struct {
	Rows  []TaxRow `json:"rows"`
	Total string   `json:"total,omitempty"`
}

// TaxRow is one tax subtotal.
type TaxRow struct {
	Scheme   string `json:"scheme"`
	Category string `json:"category,omitempty"`
	Taxable  string `json:"taxable"`
	Percent  string `json:"percent"`
	Amount   string `json:"amount"`
	Exempt   string `json:"exempt,omitempty"`
}

// ProjectTax builds the tax table. Tax totals without subtotals yield
// nil so that no empty table is shown.
func ProjectTax(t *TaxTotal, ccy string) *TaxSection {
	if t == nil || len(t.TaxSubtotal) == 0 {
		return nil
	}
	s := &TaxSection{}
	if t.TaxAmount != nil {
		s.Total = t.TaxAmount.Format(ccy)
	}
	for i := range t.TaxSubtotal {
		st := &t.TaxSubtotal[i]
		row := TaxRow{
			Taxable: st.TaxableAmount.Format(ccy),
			Amount:  st.TaxAmount.Format(ccy),
		}
		if c := st.TaxCategory; c != nil {
			if c.TaxScheme != nil {
				row.Scheme = c.TaxScheme.ID.String()
			}
			row.Category = c.ID.String()
			if c.Percent != nil {
				row.Percent = c.Percent.String() + "%"
			}
			row.Exempt = c.TaxExemptionReason.String()
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// firstTaxTotal picks the tax total that carries subtotals, falling
// back to the first one.
func firstTaxTotal(list List[TaxTotal]) *TaxTotal {
	for i := range list {
		if len(list[i].TaxSubtotal) > 0 {
			return &list[i]
		}
	}
	if len(list) > 0 {
		return &list[0]
	}
	return nil
}
