package ubl

// PaymentView groups the payment instructions of the document.
type PaymentView struct {
	DueDate string         `json:"dueDate,omitempty"`
	Means   []PaymentEntry `json:"means,omitempty"`
	Terms   []string       `json:"terms,omitempty"`
}

// PaymentEntry is a single means of payment.
type PaymentEntry struct {
	Method    string   `json:"method"`
	Reference string   `json:"reference,omitempty"`
	Account   []string `json:"account,omitempty"`
}

// paymentMeansNames maps UNTDID 4461 codes to readable names.
var paymentMeansNames = map[string]string{
	"1":   "Not defined",
	"10":  "Cash",
	"20":  "Cheque",
	"30":  "Credit transfer",
	"31":  "Debit transfer",
	"42":  "Payment to bank account",
	"48":  "Bank card",
	"49":  "Direct debit",
	"54":  "Credit card",
	"55":  "Debit card",
	"57":  "Standing agreement",
	"58":  "SEPA credit transfer",
	"59":  "SEPA direct debit",
	"68":  "Online payment service",
	"ZZZ": "Mutually defined",
}

// PaymentMeansName returns the name of a payment means code, or the
// code when it is not known.
func PaymentMeansName(code string) string {
	if n, ok := paymentMeansNames[code]; ok {
		return n
	}
	return code
}

// ProjectPayment returns nil when the document carries no payment
// details.
func ProjectPayment(inv *Invoice, level Detail) *PaymentView {
	v := &PaymentView{DueDate: inv.DueDate.String()}
	for i := range inv.PaymentMeans {
		pm := &inv.PaymentMeans[i]
		e := PaymentEntry{
			Method:    PaymentMeansName(pm.PaymentMeansCode.String()),
			Reference: pm.PaymentID.String(),
		}
		if v.DueDate == "" {
			v.DueDate = pm.PaymentDueDate.String()
		}
		if level >= DetailDefault {
			e.Account = accountLines(pm)
		}
		v.Means = append(v.Means, e)
	}
	for _, t := range inv.PaymentTerms {
		for _, n := range t.Note {
			if s := n.String(); s != "" {
				v.Terms = append(v.Terms, s)
			}
		}
	}
	if len(v.Means) == 0 && len(v.Terms) == 0 {
		return nil
	}
	return v
}

func accountLines(pm *PaymentMeans) []string {
	var lines []string
	if fa := pm.PayeeFinancialAccount; fa != nil {
		if n := fa.Name.String(); n != "" {
			lines = append(lines, "Account name: "+n)
		}
		if b := fa.FinancialInstitutionBranch; b != nil {
			if id := b.ID.String(); id != "" {
				lines = append(lines, "BSB: "+id)
			}
		}
		if id := fa.ID.String(); id != "" {
			lines = append(lines, "Account: "+id)
		}
	}
	if ca := pm.CardAccount; ca != nil {
		if n := ca.NetworkID.String(); n != "" {
			lines = append(lines, "Card network: "+n)
		}
		if h := ca.HolderName.String(); h != "" {
			lines = append(lines, "Card holder: "+h)
		}
	}
	if md := pm.PaymentMandate; md != nil {
		if id := md.ID.String(); id != "" {
			lines = append(lines, "Mandate: "+id)
		}
	}
	for _, n := range pm.InstructionNote {
		if s := n.String(); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}
