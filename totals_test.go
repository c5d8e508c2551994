package ubl_test

import (
	"testing"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTotals(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		rows := ubl.ProjectTotals(&ubl.MonetaryTotal{
			LineExtensionAmount:   amtIn("150.00", "AUD"),
			TaxExclusiveAmount:    amtIn("155.00", "AUD"),
			TaxInclusiveAmount:    amtIn("170.50", "AUD"),
			AllowanceTotalAmount:  amtIn("10.00", "AUD"),
			ChargeTotalAmount:     amtIn("15.00", "AUD"),
			PrepaidAmount:         amtIn("20.00", "AUD"),
			PayableRoundingAmount: amtIn("0.02", "AUD"),
			PayableAmount:         amtIn("150.52", "AUD"),
		}, "AUD")
		assert.Equal(t, []ubl.TotalRow{
			{Key: "LineExtensionAmount", Label: "Subtotal (items)", Amount: "$150.00"},
			{Key: "AllowanceTotalAmount", Label: "Total discount", Amount: "$10.00"},
			{Key: "ChargeTotalAmount", Label: "Total additional charges", Amount: "$15.00"},
			{Key: "TaxExclusiveAmount", Label: "Subtotal (before tax)", Amount: "$155.00"},
			{Key: "TaxInclusiveAmount", Label: "Subtotal (after tax)", Amount: "$170.50"},
			{Key: "PrepaidAmount", Label: "Credit", Amount: "$20.00"},
			{Key: "PayableRoundingAmount", Label: "Rounding", Amount: "$0.02"},
			{Key: "PayableAmount", Label: "Payable amount", Amount: "$150.52", Final: true},
		}, rows)
	})

	t.Run("items subtotal needs a discount or charge", func(t *testing.T) {
		rows := ubl.ProjectTotals(&ubl.MonetaryTotal{
			LineExtensionAmount: amtIn("100.00", "AUD"),
			TaxExclusiveAmount:  amtIn("100.00", "AUD"),
			PayableAmount:       amtIn("110.00", "AUD"),
		}, "AUD")
		require.Len(t, rows, 2)
		assert.Equal(t, "TaxExclusiveAmount", rows[0].Key)
		assert.Equal(t, "PayableAmount", rows[1].Key)

		rows = ubl.ProjectTotals(&ubl.MonetaryTotal{
			LineExtensionAmount: amtIn("100.00", "AUD"),
			ChargeTotalAmount:   amtIn("5.00", "AUD"),
		}, "AUD")
		require.Len(t, rows, 2)
		assert.Equal(t, "LineExtensionAmount", rows[0].Key)
	})

	t.Run("bare amounts use the document currency", func(t *testing.T) {
		rows := ubl.ProjectTotals(&ubl.MonetaryTotal{PayableAmount: amt("9.5")}, "NZD")
		require.Len(t, rows, 1)
		assert.Equal(t, "$9.50", rows[0].Amount)

		rows = ubl.ProjectTotals(&ubl.MonetaryTotal{PayableAmount: amt("9.5")}, "SEK")
		assert.Equal(t, "kr9.50", rows[0].Amount)
	})

	t.Run("invalid amount", func(t *testing.T) {
		rows := ubl.ProjectTotals(&ubl.MonetaryTotal{PayableAmount: amt("n/a")}, "AUD")
		require.Len(t, rows, 1)
		assert.Equal(t, ubl.NotAvailable, rows[0].Amount)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ubl.ProjectTotals(nil, "AUD"))
		assert.Empty(t, ubl.ProjectTotals(&ubl.MonetaryTotal{}, "AUD"))
	})
}

func gstCategory(percent string) *ubl.TaxCategory {
	return &ubl.TaxCategory{
		ID:        &ubl.IDType{Value: "S"},
		Percent:   txt(percent),
		TaxScheme: &ubl.TaxScheme{ID: &ubl.IDType{Value: "GST"}},
	}
}

func TestProjectTax(t *testing.T) {
	t.Run("subtotals", func(t *testing.T) {
		exempt := &ubl.TaxCategory{
			ID:                 &ubl.IDType{Value: "E"},
			TaxExemptionReason: txt("Exported services"),
			TaxScheme:          &ubl.TaxScheme{ID: &ubl.IDType{Value: "GST"}},
		}
		s := ubl.ProjectTax(&ubl.TaxTotal{
			TaxAmount: amtIn("15.50", "AUD"),
			TaxSubtotal: ubl.List[ubl.TaxSubtotal]{
				{TaxableAmount: amtIn("155.00", "AUD"), TaxAmount: amtIn("15.50", "AUD"), TaxCategory: gstCategory("10")},
				{TaxableAmount: amt("20"), TaxAmount: amt("0"), TaxCategory: exempt},
			},
		}, "AUD")
		require.NotNil(t, s)
		assert.Equal(t, "$15.50", s.Total)
		assert.Equal(t, []ubl.TaxRow{
			{Scheme: "GST", Category: "S", Taxable: "$155.00", Percent: "10%", Amount: "$15.50"},
			{Scheme: "GST", Category: "E", Taxable: "$20.00", Amount: "$0.00", Exempt: "Exported services"},
		}, s.Rows)
	})

	t.Run("no category", func(t *testing.T) {
		s := ubl.ProjectTax(&ubl.TaxTotal{
			TaxSubtotal: ubl.List[ubl.TaxSubtotal]{{TaxableAmount: amt("1"), TaxAmount: amt("0.1")}},
		}, "AUD")
		require.NotNil(t, s)
		assert.Empty(t, s.Total)
		assert.Equal(t, ubl.TaxRow{Taxable: "$1.00", Amount: "$0.10"}, s.Rows[0])
	})

	t.Run("no subtotals", func(t *testing.T) {
		assert.Nil(t, ubl.ProjectTax(&ubl.TaxTotal{TaxAmount: amt("1.50")}, "AUD"))
		assert.Nil(t, ubl.ProjectTax(nil, "AUD"))
	})
}

func TestViewUsesTaxTotalWithSubtotals(t *testing.T) {
	inv := &ubl.Invoice{
		DocumentCurrencyCode: txt("AUD"),
		TaxTotal: ubl.List[ubl.TaxTotal]{
			{TaxAmount: amtIn("2.00", "USD")},
			{
				TaxAmount: amtIn("3.00", "AUD"),
				TaxSubtotal: ubl.List[ubl.TaxSubtotal]{
					{TaxableAmount: amt("30"), TaxAmount: amt("3"), TaxCategory: gstCategory("10")},
				},
			},
		},
	}
	v := ubl.NewView(inv, ubl.DetailDefault)
	require.NotNil(t, v.Tax)
	assert.Equal(t, "$3.00", v.Tax.Total)
}
