package ubl_test

import (
	"testing"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDelivery(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		v := ubl.ProjectDelivery(&ubl.Delivery{
			ActualDeliveryDate: txt("2024-05-09"),
			DeliveryLocation: &ubl.DeliveryLocation{
				Address: &ubl.PostalAddress{
					StreetName: txt("9 Dock Road"),
					CityName:   txt("Fremantle"),
					Country:    &ubl.Country{IdentificationCode: txt("AU")},
				},
			},
			DeliveryParty: &ubl.DeliveryParty{PartyName: &ubl.PartyName{Name: txt("Dock 3")}},
		})
		require.NotNil(t, v)
		assert.Equal(t, "2024-05-09", v.Date)
		assert.Equal(t, "Dock 3", v.Name)
		assert.Equal(t, []string{"9 Dock Road", "Fremantle", "Australia"}, v.Address)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, ubl.ProjectDelivery(&ubl.Delivery{DeliveryLocation: &ubl.DeliveryLocation{}}))
		assert.Nil(t, ubl.ProjectDelivery(nil))
	})
}
