package ubl_test

import (
	"encoding/json"
	"testing"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txt(s string) *ubl.Text {
	return &ubl.Text{Value: s}
}

func amt(v string) *ubl.Amount {
	return &ubl.Amount{Value: v}
}

func amtIn(v, ccy string) *ubl.Amount {
	return &ubl.Amount{Value: v, CurrencyID: &ccy}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value string
		code  string
		want  string
	}{
		{"-87.21", "AUD", "-$87.21"},
		{"10.1", "XYZ", "10.10 XYZ"},
		{"1234.5", "GBP", "£1234.50"},
		{".5", "EUR", "€0.50"},
		{"-.5", "NZD", "-$0.50"},
		{" 7 ", "NZD", "$7.00"},
		{"1e3", "USD", "$1000.00"},
		{"10.1", "GHS", "₵10.10"},
		{"10.1", "KES", "KSh10.10"},
		{"-10.1", "BYN", "-Br10.10"},
		{"100", "", "100.00"},
		{"0", "AUD", "$0.00"},
		{"NaN", "AUD", ubl.NotAvailable},
		{"abc", "AUD", ubl.NotAvailable},
		{"", "AUD", ubl.NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.value+" "+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ubl.FormatCurrency(tt.value, tt.code))
		})
	}
}

func TestAmountMoney(t *testing.T) {
	t.Run("bare amount takes the fallback", func(t *testing.T) {
		m := amt("5").Money("AUD")
		assert.True(t, m.Valid)
		assert.Equal(t, "AUD", m.Currency)
		assert.Equal(t, "$5.00", m.String())
	})

	t.Run("wrapped amount keeps its currency", func(t *testing.T) {
		a := amtIn("5", "EUR")
		assert.True(t, a.Wrapped())
		assert.Equal(t, "€5.00", a.Format("AUD"))
	})

	t.Run("nil", func(t *testing.T) {
		var a *ubl.Amount
		assert.False(t, a.Wrapped())
		assert.Equal(t, ubl.NotAvailable, a.Format("AUD"))
	})

	t.Run("not a number", func(t *testing.T) {
		m := amt("twelve").Money("AUD")
		assert.False(t, m.Valid)
		assert.Equal(t, ubl.NotAvailable, m.String())
	})
}

func TestAmountJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		value   string
		wrapped bool
	}{
		{"raw number", `12.5`, "12.5", false},
		{"raw string", `"12.50"`, "12.50", false},
		{"text only", `{"_text": "12.50"}`, "12.50", false},
		{"dollar attribute", `{"_text": "12.50", "$currencyID": "NZD"}`, "12.50", true},
		{"attributes object", `{"_attributes": {"currencyID": "NZD"}, "_text": 12.5}`, "12.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := new(ubl.Amount)
			require.NoError(t, json.Unmarshal([]byte(tt.data), a))
			assert.Equal(t, tt.value, a.Value)
			assert.Equal(t, tt.wrapped, a.Wrapped())
			if tt.wrapped {
				assert.Equal(t, "NZD", *a.CurrencyID)
			}
		})
	}
}

func TestListJSON(t *testing.T) {
	var one ubl.List[ubl.Text]
	require.NoError(t, json.Unmarshal([]byte(`{"_text": "a"}`), &one))
	require.Len(t, one, 1)
	assert.Equal(t, "a", one[0].String())

	var many ubl.List[ubl.Text]
	require.NoError(t, json.Unmarshal([]byte(`["a", {"_text": "b"}]`), &many))
	require.Len(t, many, 2)
	assert.Equal(t, "b", many[1].String())

	var none ubl.List[ubl.Text]
	require.NoError(t, json.Unmarshal([]byte(`null`), &none))
	assert.Nil(t, none)
}

func TestTextString(t *testing.T) {
	assert.Equal(t, "Level 2 Tower B", txt("  Level 2\n\t Tower B ").String())
	var n *ubl.Text
	assert.Equal(t, "", n.String())
}
