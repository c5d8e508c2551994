package render

import (
	"html/template"
	"io"

	ubl "github.com/macroservices/ubl.aunz"
)

type palette struct {
	Text   string
	Muted  string
	Accent string
	Border string
}

var (
	paletteDefault      = palette{Text: "#222222", Muted: "#666666", Accent: "#1f4e79", Border: "#d0d7de"}
	paletteHighContrast = palette{Text: "#000000", Muted: "#000000", Accent: "#000000", Border: "#000000"}
)

func (s Style) palette() palette {
	if s.HighContrast() {
		return paletteHighContrast
	}
	return paletteDefault
}

type htmlPage struct {
	*ubl.View
	Style   Style
	Colours palette
	Width   string
}

var htmlTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.ID}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; color: {{.Colours.Text}}; max-width: {{.Width}}; margin: 2em auto; }
h1 { color: {{.Colours.Accent}}; }
.muted { color: {{.Colours.Muted}}; }
.parties { display: flex; justify-content: space-between; gap: 2em; }
table { width: 100%; border-collapse: collapse; margin-top: 1em; }
th, td { border-bottom: 1px solid {{.Colours.Border}}; padding: 4px; text-align: left; }
td.amount, th.amount { text-align: right; }
tr.final td { border-top: 2px solid {{.Colours.Text}}; font-size: 1.2em; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>
<strong>Invoice number:</strong> {{.ID}}<br>
{{if .IssueDate}}<strong>Issue date:</strong> {{.IssueDate}}<br>{{end}}
{{if .DueDate}}<strong>Due date:</strong> {{.DueDate}}<br>{{end}}
{{if .Reference}}<strong>Reference:</strong> {{.Reference}}<br>{{end}}
{{if .Order}}<strong>Order:</strong> {{.Order}}<br>{{end}}
{{if .Period}}<strong>Period:</strong> {{.Period}}<br>{{end}}
</p>
<div class="parties">
{{with .Supplier}}<div class="party"><h2>From</h2>{{template "party" .}}</div>{{end}}
{{with .Customer}}<div class="party"><h2>To</h2>{{template "party" .}}</div>{{end}}
{{with .Delivery}}<div class="party"><h2>Deliver to</h2>{{if .Name}}<strong>{{.Name}}</strong><br>{{end}}{{range .Address}}{{.}}<br>{{end}}{{if .Date}}<span class="muted">{{.Date}}</span>{{end}}</div>{{end}}
</div>
<table class="lines">
<thead><tr><th>ID</th><th>Item</th><th class="amount">Quantity</th><th class="amount">Price</th><th class="amount">Total</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.ID}}</td><td>{{.Name}}{{if .Description}}<br><span class="muted">{{.Description}}</span>{{end}}{{if .Period}}<br><span class="muted">{{.Period}}</span>{{end}}</td><td class="amount">{{.Quantity}}{{if .Unit}} {{.Unit}}{{end}}</td><td class="amount">{{.Price}}</td><td class="amount">{{.Total}}</td></tr>
{{end}}</tbody>
</table>
{{if .Charges}}<table class="charges">
{{range .Charges}}<tr><td>{{.Reason}}{{if .Percent}} ({{.Percent}}){{end}}</td><td class="amount">{{if not .Charge}}-{{end}}{{.Amount}}</td></tr>
{{end}}</table>{{end}}
{{with .Tax}}<table class="tax">
<thead><tr><th>Tax</th><th class="amount">Taxable amount</th><th class="amount">Rate</th><th class="amount">Tax amount</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Scheme}}</td><td class="amount">{{.Taxable}}</td><td class="amount">{{.Percent}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</tbody>
</table>{{end}}
{{if .Totals}}<table class="totals">
{{range .Totals}}<tr{{if .Final}} class="final"{{end}}><td>{{.Label}}:</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</table>{{end}}
{{with .Payment}}<h2>Payment</h2>
{{range .Means}}<p><strong>{{.Method}}</strong>{{if .Reference}} ({{.Reference}}){{end}}<br>{{range .Account}}{{.}}<br>{{end}}</p>{{end}}
{{range .Terms}}<p>{{.}}</p>{{end}}{{end}}
{{range .Notes}}<p class="muted">{{.}}</p>{{end}}
{{if .Profile}}<p class="muted">{{.Profile}}</p>{{end}}
</body>
</html>
{{define "party"}}{{if .Name}}<strong>{{.Name}}</strong><br>{{end}}{{if .ID}}ABN: {{.ID}}<br>{{end}}{{range .Address}}{{.}}<br>{{end}}{{range .Identifiers}}{{.}}<br>{{end}}{{range .Contact}}<span class="muted">{{.}}</span><br>{{end}}{{end}}
`))

// HTML writes the view as a standalone HTML page.
func HTML(w io.Writer, v *ubl.View, s Style) error {
	p := htmlPage{View: v, Style: s, Colours: s.palette(), Width: "800px"}
	if s.Landscape() {
		p.Width = "1100px"
	}
	return htmlTemplate.Execute(w, p)
}
