package ubl

// Delivery represents delivery information
type Delivery struct {
	ActualDeliveryDate *Text             `xml:"cbc:ActualDeliveryDate"`
	DeliveryLocation   *DeliveryLocation `xml:"cac:DeliveryLocation"`
	DeliveryParty      *DeliveryParty    `xml:"cac:DeliveryParty"`
}

// DeliveryLocation represents a delivery location
type DeliveryLocation struct {
	ID      *IDType        `xml:"cbc:ID"`
	Address *PostalAddress `xml:"cac:Address"`
}

// DeliveryParty represents the party receiving the goods
type DeliveryParty struct {
	PartyName *PartyName `xml:"cac:PartyName"`
}

func newDelivery(d *InvoiceDelivery) *Element {
	if d == nil {
		return nil
	}
	return El("cac:Delivery",
		Field("cbc:ActualDeliveryDate", d.DeliveryDate),
		El("cac:DeliveryLocation", newAddress("cac:Address", d.Address)),
		El("cac:DeliveryParty",
			El("cac:PartyName", Field("cbc:Name", d.Name)),
		),
	)
}

// DeliveryView is the display form of a delivery.
type DeliveryView struct {
	Date    string   `json:"date,omitempty"`
	Name    string   `json:"name,omitempty"`
	Address []string `json:"address,omitempty"`
}

// ProjectDelivery returns nil when the delivery has nothing to show.
func ProjectDelivery(d *Delivery) *DeliveryView {
	if d == nil {
		return nil
	}
	v := &DeliveryView{Date: d.ActualDeliveryDate.String()}
	if p := d.DeliveryParty; p != nil && p.PartyName != nil {
		v.Name = p.PartyName.Name.String()
	}
	if l := d.DeliveryLocation; l != nil {
		v.Address = addressLines(l.Address)
	}
	if v.Date == "" && v.Name == "" && len(v.Address) == 0 {
		return nil
	}
	return v
}
