package ubl_test

import (
	"testing"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectPayment(t *testing.T) {
	t.Run("bank transfer", func(t *testing.T) {
		inv := loadParsed(t, "aunz-invoice.xml")
		p := ubl.ProjectPayment(inv, ubl.DetailDefault)
		require.NotNil(t, p)
		assert.Equal(t, "2024-06-09", p.DueDate)
		assert.Equal(t, []ubl.PaymentEntry{{
			Method:    "Credit transfer",
			Reference: "AU-1001",
			Account: []string{
				"Account name: Ebony Boards",
				"BSB: 062-000",
				"Account: 123456789",
			},
		}}, p.Means)
		assert.Equal(t, []string{"Payment within 30 days"}, p.Terms)
	})

	t.Run("summary leaves out accounts", func(t *testing.T) {
		inv := loadParsed(t, "aunz-invoice.xml")
		p := ubl.ProjectPayment(inv, ubl.DetailSummary)
		require.NotNil(t, p)
		require.Len(t, p.Means, 1)
		assert.Empty(t, p.Means[0].Account)
	})

	t.Run("card and mandate", func(t *testing.T) {
		inv := &ubl.Invoice{
			PaymentMeans: ubl.List[ubl.PaymentMeans]{{
				PaymentMeansCode: &ubl.IDType{Value: "54"},
				PaymentDueDate:   txt("2024-09-01"),
				CardAccount: &ubl.CardAccount{
					PrimaryAccountNumberID: txt("1234"),
					NetworkID:              txt("VISA"),
					HolderName:             txt("J Smith"),
				},
				PaymentMandate:  &ubl.PaymentMandate{ID: &ubl.IDType{Value: "M-1"}},
				InstructionNote: ubl.List[ubl.Text]{{Value: "Quote the invoice number"}},
			}},
		}
		p := ubl.ProjectPayment(inv, ubl.DetailDetailed)
		require.NotNil(t, p)
		assert.Equal(t, "2024-09-01", p.DueDate)
		assert.Equal(t, "Credit card", p.Means[0].Method)
		assert.Equal(t, []string{
			"Card network: VISA",
			"Card holder: J Smith",
			"Mandate: M-1",
			"Quote the invoice number",
		}, p.Means[0].Account)
	})

	t.Run("terms only", func(t *testing.T) {
		inv := &ubl.Invoice{
			PaymentTerms: ubl.List[ubl.PaymentTerms]{{Note: ubl.List[ubl.Text]{{Value: "EOM"}, {Value: " "}}}},
		}
		p := ubl.ProjectPayment(inv, ubl.DetailDefault)
		require.NotNil(t, p)
		assert.Empty(t, p.Means)
		assert.Equal(t, []string{"EOM"}, p.Terms)
	})

	t.Run("nothing to show", func(t *testing.T) {
		inv := &ubl.Invoice{DueDate: txt("2024-09-01")}
		assert.Nil(t, ubl.ProjectPayment(inv, ubl.DetailDefault))
	})
}

func TestPaymentMeansName(t *testing.T) {
	assert.Equal(t, "Credit transfer", ubl.PaymentMeansName("30"))
	assert.Equal(t, "Direct debit", ubl.PaymentMeansName("49"))
	assert.Equal(t, "97", ubl.PaymentMeansName("97"))
}
