package ubl

import "strings"

// AllowanceCharge represents an allowance or charge
type AllowanceCharge struct {
	ChargeIndicator           *Text             `xml:"cbc:ChargeIndicator"`
	AllowanceChargeReasonCode *Text             `xml:"cbc:AllowanceChargeReasonCode"`
	AllowanceChargeReason     *Text             `xml:"cbc:AllowanceChargeReason"`
	MultiplierFactorNumeric   *Text             `xml:"cbc:MultiplierFactorNumeric"`
	Amount                    *Amount           `xml:"cbc:Amount"`
	BaseAmount                *Amount           `xml:"cbc:BaseAmount"`
	TaxCategory               List[TaxCategory] `xml:"cac:TaxCategory"`
}

// IsCharge reports whether the entry adds to the total. Anything other
// than a true indicator is treated as an allowance.
func (ac *AllowanceCharge) IsCharge() bool {
	return strings.EqualFold(ac.ChargeIndicator.String(), "true")
}
