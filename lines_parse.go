package ubl

// LineView is one row of the invoice lines table.
type LineView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	Price       string `json:"price"`
	Total       string `json:"total"`
	Period      string `json:"period,omitempty"`
	// Tax is the percentage of the first classified tax category.
	Tax string `json:"tax,omitempty"`
}

// ProjectLines lists the invoice or credit note lines in document order.
func ProjectLines(lines []InvoiceLine, ccy string, level Detail) []LineView {
	out := make([]LineView, 0, len(lines))
	for i := range lines {
		out = append(out, projectLine(&lines[i], ccy, level))
	}
	return out
}

func projectLine(l *InvoiceLine, ccy string, level Detail) LineView {
	v := LineView{
		ID:    l.ID.String(),
		Total: l.LineExtensionAmount.Format(ccy),
	}
	if q := l.Quantity(); q != nil {
		v.Quantity = cleanString(q.Value)
		if q.UnitCode != nil {
			v.Unit = cleanString(*q.UnitCode)
		}
	}
	if l.Price != nil {
		v.Price = l.Price.PriceAmount.Format(ccy)
	}
	if it := l.Item; it != nil {
		v.Name = it.Name.String()
		if level >= DetailDetailed {
			v.Description = it.Description.String()
		}
		if len(it.ClassifiedTaxCategory) > 0 {
			if p := it.ClassifiedTaxCategory[0].Percent; p != nil {
				v.Tax = p.String() + "%"
			}
		}
	}
	if v.Name == "" && l.Item != nil {
		v.Name = l.Item.Description.String()
	}
	if level >= DetailDefault {
		v.Period = periodText(l.InvoicePeriod)
	}
	return v
}

// periodText formats a period as "start - end", leaving out a missing
// side.
func periodText(p *Period) string {
	if p == nil {
		return ""
	}
	start, end := p.StartDate.String(), p.EndDate.String()
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return "from " + start
	case end != "":
		return "until " + end
	}
	return ""
}
