package ubl

// ChargeView is a document level discount or additional charge.
type ChargeView struct {
	Charge  bool   `json:"charge"`
	Reason  string `json:"reason"`
	Percent string `json:"percent,omitempty"`
	Amount  string `json:"amount"`
}

// ProjectCharges lists document level allowances and charges. Entries
// without a reason are labelled by kind.
func ProjectCharges(list []AllowanceCharge, ccy string) []ChargeView {
	var out []ChargeView
	for i := range list {
		ac := &list[i]
		v := ChargeView{
			Charge: ac.IsCharge(),
			Reason: ac.AllowanceChargeReason.String(),
			Amount: ac.Amount.Format(ccy),
		}
		if v.Reason == "" {
			v.Reason = ac.AllowanceChargeReasonCode.String()
		}
		if v.Reason == "" {
			v.Reason = "Discount"
			if v.Charge {
				v.Reason = "Charge"
			}
		}
		if f := ac.MultiplierFactorNumeric.String(); f != "" {
			v.Percent = f + "%"
		}
		out = append(out, v)
	}
	return out
}
