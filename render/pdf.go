package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	ubl "github.com/macroservices/ubl.aunz"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 5.0
	pdfMargin     = 15.0
)

type rgb struct{ r, g, b int }

type pdfDoc struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	width  float64
	accent rgb
	muted  rgb
}

// PDF lays the view out on A4 pages. Page breaks are left to gofpdf.
func PDF(w io.Writer, v *ubl.View, s Style) error {
	orientation := "P"
	if s.Landscape() {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(v.Title+" "+v.ID, true)
	pdf.AddPage()

	pw, _ := pdf.GetPageSize()
	d := &pdfDoc{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  pw - 2*pdfMargin,
		accent: rgb{31, 78, 121},
		muted:  rgb{102, 102, 102},
	}
	if s.HighContrast() {
		d.accent, d.muted = rgb{}, rgb{}
	}

	d.header(v)
	d.parties(v)
	d.lines(v.Lines)
	d.charges(v.Charges)
	d.tax(v.Tax)
	d.totals(v.Totals)
	d.payment(v.Payment)
	for _, n := range v.Notes {
		d.text(n, d.muted)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return pdf.Output(w)
}

func (d *pdfDoc) colour(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *pdfDoc) text(s string, c rgb) {
	d.colour(c)
	d.pdf.MultiCell(d.width, pdfLineHeight, d.tr(s), "", "L", false)
	d.colour(rgb{})
}

func (d *pdfDoc) header(v *ubl.View) {
	d.pdf.SetFont(pdfFont, "B", 18)
	d.colour(d.accent)
	d.pdf.CellFormat(d.width, 10, d.tr(v.Title), "", 1, "L", false, 0, "")
	d.colour(rgb{})
	d.pdf.SetFont(pdfFont, "", 10)
	for _, kv := range [][2]string{
		{"Invoice number", v.ID},
		{"Issue date", v.IssueDate},
		{"Due date", v.DueDate},
		{"Reference", v.Reference},
		{"Order", v.Order},
		{"Period", v.Period},
	} {
		if kv[1] == "" {
			continue
		}
		d.pdf.CellFormat(35, pdfLineHeight, d.tr(kv[0]+":"), "", 0, "L", false, 0, "")
		d.pdf.CellFormat(d.width-35, pdfLineHeight, d.tr(kv[1]), "", 1, "L", false, 0, "")
	}
	d.pdf.Ln(pdfLineHeight)
}

func (d *pdfDoc) parties(v *ubl.View) {
	blocks := [][]string{}
	titles := []string{}
	if v.Supplier != nil {
		titles = append(titles, "From")
		blocks = append(blocks, partyLines(v.Supplier))
	}
	if v.Customer != nil {
		titles = append(titles, "To")
		blocks = append(blocks, partyLines(v.Customer))
	}
	if dl := v.Delivery; dl != nil {
		titles = append(titles, "Deliver to")
		blocks = append(blocks, append(append(nonEmpty(dl.Name), dl.Address...), nonEmpty(dl.Date)...))
	}
	if len(blocks) == 0 {
		return
	}
	colWidth := d.width / float64(len(blocks))
	x, y := d.pdf.GetXY()
	maxY := y
	for i, b := range blocks {
		d.pdf.SetXY(x+float64(i)*colWidth, y)
		d.pdf.SetFont(pdfFont, "B", 11)
		d.pdf.CellFormat(colWidth, 6, d.tr(titles[i]), "", 2, "L", false, 0, "")
		d.pdf.SetFont(pdfFont, "", 10)
		for _, l := range b {
			d.pdf.CellFormat(colWidth, pdfLineHeight, d.tr(l), "", 2, "L", false, 0, "")
		}
		if _, cy := d.pdf.GetXY(); cy > maxY {
			maxY = cy
		}
	}
	d.pdf.SetXY(x, maxY)
	d.pdf.Ln(pdfLineHeight)
}

func partyLines(p *ubl.PartyView) []string {
	lines := nonEmpty(p.Name)
	if p.ID != "" {
		lines = append(lines, "ABN: "+p.ID)
	}
	lines = append(lines, p.Address...)
	lines = append(lines, p.Identifiers...)
	return append(lines, p.Contact...)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// table writes a header row followed by the rows. Every column after
// the first is right aligned.
func (d *pdfDoc) table(widths []float64, head []string, rows [][]string) {
	d.pdf.SetFont(pdfFont, "B", 10)
	d.pdf.SetFillColor(230, 230, 230)
	for i, h := range head {
		d.pdf.CellFormat(widths[i]*d.width, 7, d.tr(h), "B", 0, align(i), true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont(pdfFont, "", 10)
	for _, r := range rows {
		for i, c := range r {
			d.pdf.CellFormat(widths[i]*d.width, 6, d.tr(c), "B", 0, align(i), false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(pdfLineHeight)
}

func align(col int) string {
	if col == 0 || col == 1 {
		return "L"
	}
	return "R"
}

func (d *pdfDoc) lines(lines []ubl.LineView) {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		if l.Description != "" {
			name += " - " + l.Description
		}
		qty := strings.TrimSpace(l.Quantity + " " + l.Unit)
		rows = append(rows, []string{l.ID, name, qty, l.Price, l.Total})
	}
	d.table([]float64{0.1, 0.42, 0.16, 0.16, 0.16}, []string{"ID", "Item", "Quantity", "Price", "Total"}, rows)
}

func (d *pdfDoc) charges(charges []ubl.ChargeView) {
	if len(charges) == 0 {
		return
	}
	rows := make([][]string, 0, len(charges))
	for _, c := range charges {
		amount := c.Amount
		if !c.Charge {
			amount = "-" + amount
		}
		rows = append(rows, []string{c.Reason, c.Percent, amount})
	}
	d.table([]float64{0.6, 0.2, 0.2}, []string{"Discounts and charges", "", "Amount"}, rows)
}

func (d *pdfDoc) tax(t *ubl.TaxSection) {
	if t == nil {
		return
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []string{r.Scheme, r.Taxable, r.Percent, r.Amount})
	}
	d.table([]float64{0.25, 0.25, 0.25, 0.25}, []string{"Tax", "Taxable amount", "Rate", "Tax amount"}, rows)
}

func (d *pdfDoc) totals(rows []ubl.TotalRow) {
	if len(rows) == 0 {
		return
	}
	label, value := d.width*0.6, d.width*0.4
	for _, r := range rows {
		border := ""
		if r.Final {
			d.pdf.SetFont(pdfFont, "B", 13)
			border = "T"
		} else {
			d.pdf.SetFont(pdfFont, "", 10)
		}
		d.pdf.CellFormat(label, 7, d.tr(r.Label+":"), border, 0, "L", false, 0, "")
		d.pdf.CellFormat(value, 7, d.tr(r.Amount), border, 1, "R", false, 0, "")
	}
	d.pdf.SetFont(pdfFont, "", 10)
	d.pdf.Ln(pdfLineHeight)
}

func (d *pdfDoc) payment(p *ubl.PaymentView) {
	if p == nil {
		return
	}
	d.pdf.SetFont(pdfFont, "B", 11)
	d.pdf.CellFormat(d.width, 6, d.tr("Payment"), "", 1, "L", false, 0, "")
	d.pdf.SetFont(pdfFont, "", 10)
	for _, m := range p.Means {
		line := m.Method
		if m.Reference != "" {
			line += " (" + m.Reference + ")"
		}
		d.text(line, rgb{})
		for _, a := range m.Account {
			d.text(a, d.muted)
		}
	}
	for _, t := range p.Terms {
		d.text(t, rgb{})
	}
	d.pdf.Ln(pdfLineHeight)
}
