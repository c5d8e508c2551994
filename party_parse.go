package ubl

import (
	"strings"

	"github.com/invopop/gobl/l10n"
)

// PartyView is the display form of a supplier or customer.
type PartyView struct {
	Name string `json:"name,omitempty"`
	// ID is the registered business identifier, usually the ABN.
	ID      string   `json:"id,omitempty"`
	Contact []string `json:"contact,omitempty"`
	// Address and Identifiers are only filled from DetailDefault up.
	Address     []string `json:"address,omitempty"`
	Identifiers []string `json:"identifiers,omitempty"`
}

// ProjectParty resolves the display values of a party. The company ID
// is preferred over the endpoint ID and an explicit party name over the
// registered name. Party identifiers using the ABN scheme are dropped
// since the ABN is already shown as the party ID.
func ProjectParty(p *Party, level Detail) *PartyView {
	if p == nil {
		return nil
	}
	v := &PartyView{
		ID:   partyID(p),
		Name: partyName(p),
	}
	if c := p.Contact; c != nil {
		v.Contact = nonEmpty(c.Name.String(), c.Telephone.String(), c.ElectronicMail.String())
	}
	if level < DetailDefault {
		return v
	}
	v.Address = addressLines(p.PostalAddress)
	for _, id := range p.PartyIdentification {
		if id.ID == nil || id.ID.Scheme() == ABNSchemeID {
			continue
		}
		if s := id.ID.String(); s != "" {
			v.Identifiers = append(v.Identifiers, s)
		}
	}
	return v
}

func partyID(p *Party) string {
	if le := p.PartyLegalEntity; le != nil {
		if id := le.CompanyID.String(); id != "" {
			return id
		}
	}
	return p.EndpointID.String()
}

func partyName(p *Party) string {
	if p.PartyName != nil {
		if n := p.PartyName.Name.String(); n != "" {
			return n
		}
	}
	if p.PartyLegalEntity != nil {
		return p.PartyLegalEntity.RegistrationName.String()
	}
	return ""
}

// addressLines lays out an address: street lines, then locality, region
// and postcode on one line, then the country name and free form lines.
func addressLines(a *PostalAddress) []string {
	if a == nil {
		return nil
	}
	lines := nonEmpty(a.StreetName.String(), a.AdditionalStreetName.String())
	locality := nonEmpty(a.CityName.String(), a.CountrySubentity.String(), a.PostalZone.String())
	if len(locality) > 0 {
		lines = append(lines, strings.Join(locality, " "))
	}
	if c := CountryName(a.CountryCode()); c != "" {
		lines = append(lines, c)
	}
	for _, l := range a.AddressLine {
		if s := l.Line.String(); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// CountryName returns the English short name of an ISO 3166-1 alpha-2
// code, or the code itself when it is not known.
func CountryName(code string) string {
	if d := l10n.Countries().Code(l10n.Code(strings.ToUpper(code))); d != nil {
		return d.Name
	}
	return code
}
