package ubl

// SupplierParty represents the supplier party in a transaction
type SupplierParty struct {
	Party *Party `xml:"cac:Party"`
}

// CustomerParty represents the customer party in a transaction
type CustomerParty struct {
	Party *Party `xml:"cac:Party"`
}

// Party represents a party involved in a transaction
type Party struct {
	EndpointID          *IDType              `xml:"cbc:EndpointID"`
	PartyIdentification List[Identification] `xml:"cac:PartyIdentification"`
	PartyName           *PartyName           `xml:"cac:PartyName"`
	PostalAddress       *PostalAddress       `xml:"cac:PostalAddress"`
	PartyTaxScheme      List[PartyTaxScheme] `xml:"cac:PartyTaxScheme"`
	PartyLegalEntity    *PartyLegalEntity    `xml:"cac:PartyLegalEntity"`
	Contact             *Contact             `xml:"cac:Contact"`
}

// Identification represents an identification
type Identification struct {
	ID *IDType `xml:"cbc:ID"`
}

// PartyName represents the name of a party
type PartyName struct {
	Name *Text `xml:"cbc:Name"`
}

// PostalAddress represents a postal address
type PostalAddress struct {
	StreetName           *Text             `xml:"cbc:StreetName"`
	AdditionalStreetName *Text             `xml:"cbc:AdditionalStreetName"`
	CityName             *Text             `xml:"cbc:CityName"`
	PostalZone           *Text             `xml:"cbc:PostalZone"`
	CountrySubentity     *Text             `xml:"cbc:CountrySubentity"`
	AddressLine          List[AddressLine] `xml:"cac:AddressLine"`
	Country              *Country          `xml:"cac:Country"`
}

// AddressLine represents a line in an address
type AddressLine struct {
	Line *Text `xml:"cbc:Line"`
}

// Country represents a country
type Country struct {
	IdentificationCode *Text `xml:"cbc:IdentificationCode"`
}

// PartyTaxScheme represents a party's tax scheme
type PartyTaxScheme struct {
	CompanyID *IDType    `xml:"cbc:CompanyID"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme"`
}

// PartyLegalEntity represents the legal entity of a party
type PartyLegalEntity struct {
	RegistrationName *Text   `xml:"cbc:RegistrationName"`
	CompanyID        *IDType `xml:"cbc:CompanyID"`
}

// Contact represents contact information
type Contact struct {
	Name           *Text `xml:"cbc:Name"`
	Telephone      *Text `xml:"cbc:Telephone"`
	ElectronicMail *Text `xml:"cbc:ElectronicMail"`
}

// CountryCode returns the country of the postal address, if any.
func (p *Party) CountryCode() string {
	if p == nil {
		return ""
	}
	return p.PostalAddress.CountryCode()
}

// CountryCode returns the ISO 3166-1 code of the address country.
func (a *PostalAddress) CountryCode() string {
	if a == nil || a.Country == nil {
		return ""
	}
	return a.Country.IdentificationCode.String()
}

// abnAttr tags an identifier as an Australian Business Number. The
// attribute alone never keeps an element in the tree, so a party
// without an ABN loses both the endpoint and the company ID.
var abnAttr = Attr{Name: "schemeID", Value: ABNSchemeID}

// newParty builds the cac:Party block shared by the supplier and the
// customer. Absent values are left for pruning.
func newParty(p InvoiceParty) *Element {
	return El("cac:Party",
		Field("cbc:EndpointID", p.ABN, abnAttr),
		El("cac:PartyName", Field("cbc:Name", p.Name)),
		newAddress("cac:PostalAddress", p.Address),
		El("cac:PartyLegalEntity",
			Field("cbc:RegistrationName", p.Name),
			Field("cbc:CompanyID", p.ABN, abnAttr),
		),
		El("cac:Contact",
			Field("cbc:Name", p.ContactName),
			Field("cbc:Telephone", p.ContactPhone),
			Field("cbc:ElectronicMail", p.ContactEmail),
		),
	)
}

// newAddress maps an address onto the UBL address aggregate with the
// given element name, postal or delivery.
func newAddress(name string, a *InvoiceAddress) *Element {
	if a == nil {
		return nil
	}
	return El(name,
		Field("cbc:StreetName", a.StreetAddress),
		Field("cbc:AdditionalStreetName", a.ExtraLine),
		Field("cbc:CityName", a.Suburb),
		Field("cbc:PostalZone", a.Postcode),
		Field("cbc:CountrySubentity", a.State),
		El("cac:Country", Field("cbc:IdentificationCode", string(a.Country))),
	)
}
