package ubl

// PaymentMeans represents the means of payment
type PaymentMeans struct {
	PaymentMeansCode      *IDType           `xml:"cbc:PaymentMeansCode"`
	PaymentDueDate        *Text             `xml:"cbc:PaymentDueDate"`
	InstructionNote       List[Text]        `xml:"cbc:InstructionNote"`
	PaymentID             *Text             `xml:"cbc:PaymentID"`
	CardAccount           *CardAccount      `xml:"cac:CardAccount"`
	PayeeFinancialAccount *FinancialAccount `xml:"cac:PayeeFinancialAccount"`
	PaymentMandate        *PaymentMandate   `xml:"cac:PaymentMandate"`
}

// PaymentMandate represents a payment mandate
type PaymentMandate struct {
	ID *IDType `xml:"cbc:ID"`
}

// CardAccount represents a card account
type CardAccount struct {
	PrimaryAccountNumberID *Text `xml:"cbc:PrimaryAccountNumberID"`
	NetworkID              *Text `xml:"cbc:NetworkID"`
	HolderName             *Text `xml:"cbc:HolderName"`
}

// FinancialAccount represents a financial account. For Australian bank
// accounts the branch ID holds the BSB.
type FinancialAccount struct {
	ID                         *Text   `xml:"cbc:ID"`
	Name                       *Text   `xml:"cbc:Name"`
	FinancialInstitutionBranch *Branch `xml:"cac:FinancialInstitutionBranch"`
}

// Branch represents a branch of a financial institution
type Branch struct {
	ID *Text `xml:"cbc:ID"`
}

// PaymentTerms represents the terms of payment
type PaymentTerms struct {
	Note List[Text] `xml:"cbc:Note"`
}
