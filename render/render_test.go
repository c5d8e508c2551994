package render_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/macroservices/ubl.aunz/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadInvoice(t *testing.T, name string) *ubl.Invoice {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "test", "data", "parse", name))
	require.NoError(t, err)
	inv, err := ubl.Parse(data)
	require.NoError(t, err)
	return inv
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		n      int
		name   string
		detail ubl.Detail
	}{
		{0, "Default", ubl.DetailDefault},
		{1, "Landscape", ubl.DetailDefault},
		{2, "Detailed", ubl.DetailDetailed},
		{3, "Summary", ubl.DetailSummary},
		{4, "Default High Contrast", ubl.DetailDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := render.ParseStyle(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.String())
			assert.Equal(t, tt.detail, s.Detail())
			assert.Equal(t, tt.n == 1, s.Landscape())
			assert.Equal(t, tt.n == 4, s.HighContrast())
		})
	}

	for _, n := range []int{-1, 5, 42} {
		_, err := render.ParseStyle(n)
		assert.ErrorIs(t, err, render.ErrUnknownStyle)
	}
	assert.Equal(t, "Unknown", render.Style(9).String())
}

func TestParseFormat(t *testing.T) {
	f, err := render.ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, render.FormatPDF, f)

	f, err = render.ParseFormat("html")
	require.NoError(t, err)
	assert.Equal(t, render.FormatHTML, f)

	_, err = render.ParseFormat("docx")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestJSON(t *testing.T) {
	inv := loadInvoice(t, "aunz-invoice.xml")
	buf := new(bytes.Buffer)
	require.NoError(t, render.Document(buf, inv, render.FormatJSON, render.StyleDetailed))

	out := new(ubl.View)
	require.NoError(t, json.Unmarshal(buf.Bytes(), out))
	assert.Equal(t, ubl.NewView(inv, ubl.DetailDetailed), out)
}

func TestHTML(t *testing.T) {
	inv := loadInvoice(t, "aunz-invoice.xml")

	t.Run("default", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, render.Document(buf, inv, render.FormatHTML, render.StyleDefault))
		out := buf.String()
		assert.Contains(t, out, "<title>Tax Invoice AU-1001</title>")
		assert.Contains(t, out, "<h1>Tax Invoice</h1>")
		assert.Contains(t, out, "ABN: 47555222000")
		assert.Contains(t, out, "Ultimo NSW 2007")
		assert.Contains(t, out, "<h2>Deliver to</h2>")
		assert.Contains(t, out, "<td>Freight</td>")
		assert.Contains(t, out, `<tr class="final"><td>Payable amount:</td><td class="amount">$170.50</td></tr>`)
		assert.Contains(t, out, "BSB: 062-000")
		assert.Contains(t, out, "max-width: 800px")
		assert.NotContains(t, out, "#000000")
	})

	t.Run("landscape", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, render.Document(buf, inv, render.FormatHTML, render.StyleLandscape))
		assert.Contains(t, buf.String(), "max-width: 1100px")
	})

	t.Run("summary", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, render.Document(buf, inv, render.FormatHTML, render.StyleSummary))
		out := buf.String()
		assert.NotContains(t, out, "Deliver to")
		assert.NotContains(t, out, "Ultimo NSW 2007")
	})

	t.Run("high contrast", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, render.Document(buf, inv, render.FormatHTML, render.StyleHighContrast))
		assert.Contains(t, buf.String(), "color: #000000")
	})

	t.Run("credit note", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, render.Document(buf, loadInvoice(t, "aunz-creditnote.xml"), render.FormatHTML, render.StyleDefault))
		out := buf.String()
		assert.Contains(t, out, "<h1>Credit Note</h1>")
		assert.Contains(t, out, "-$11.50")
		assert.NotContains(t, out, `class="tax"`)
	})
}

func TestPDF(t *testing.T) {
	docs := []string{"aunz-invoice.xml", "aunz-creditnote.xml"}
	styles := []render.Style{
		render.StyleDefault,
		render.StyleLandscape,
		render.StyleDetailed,
		render.StyleSummary,
		render.StyleHighContrast,
	}
	for _, name := range docs {
		inv := loadInvoice(t, name)
		for _, s := range styles {
			t.Run(name+"/"+s.String(), func(t *testing.T) {
				buf := new(bytes.Buffer)
				require.NoError(t, render.Document(buf, inv, render.FormatPDF, s))
				assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
				assert.True(t, bytes.Contains(buf.Bytes(), []byte("%%EOF")))
			})
		}
	}
}

func TestDocumentUnknownFormat(t *testing.T) {
	inv := loadInvoice(t, "aunz-invoice.xml")
	err := render.Document(new(bytes.Buffer), inv, render.Format("docx"), render.StyleDefault)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
