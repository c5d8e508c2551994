package ubl

import (
	"math/rand/v2"
	"time"

	"github.com/invopop/gobl/currency"
	"github.com/invopop/gobl/l10n"
	"github.com/shopspring/decimal"
)

// Peppol Billing Profile IDs
const (
	PeppolBillingProfileIDDefault = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// VESIDMapping maps document types to their corresponding VESID values.
type VESIDMapping struct {
	// Invoice is the VESID for invoices
	Invoice string
	// CreditNote is the VESID for credit notes
	CreditNote string
}

// Context is used to ensure that the generated UBL document
// uses a specific CustomizationID and ProfileID when generating
// the output document.
type Context struct {
	// Name is a short human label for the context.
	Name string
	// CustomizationID identifies specific characteristics in the
	// document which need to be present for local differences.
	CustomizationID string
	// ProfileID determines the business process context or scenario
	// for the exchange of the document
	ProfileID string
	// VESIDs contains the VESID (Validation Exchange Specification ID) mappings
	// for different document types within this context.
	VESIDs VESIDMapping
}

// Is checks if two contexts are the same.
func (c *Context) Is(c2 Context) bool {
	return c.CustomizationID == c2.CustomizationID && c.ProfileID == c2.ProfileID
}

// FindContext looks up a context by CustomizationID and optionally ProfileID.
// Returns nil if no matching context is found.
func FindContext(customizationID string, profileID string) *Context {
	for _, ctx := range contexts {
		if ctx.CustomizationID == customizationID {
			// If context has a ProfileID and one was provided, they must match
			if ctx.ProfileID != "" && profileID != "" && ctx.ProfileID != profileID {
				continue
			}
			return &ctx
		}
	}
	return nil
}

// ContextAUNZ is the A-NZ PEPPOL BIS Billing 3.0 context, used by default
// when building invoices.
var ContextAUNZ = Context{
	Name:            "A-NZ PEPPOL BIS Billing 3.0",
	CustomizationID: "urn:cen.eu:en16931:2017#conformant#urn:fdc:peppol.eu:2017:poacc:billing:international:aunz:3.0",
	ProfileID:       PeppolBillingProfileIDDefault,
	VESIDs: VESIDMapping{
		Invoice:    "eu.peppol.bis3.aunz.ubl:invoice:1.0.10",
		CreditNote: "eu.peppol.bis3.aunz.ubl:creditnote:1.0.10",
	},
}

// ContextPeppol defines the default Peppol context.
var ContextPeppol = Context{
	Name:            "PEPPOL BIS Billing 3.0",
	CustomizationID: "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0",
	ProfileID:       PeppolBillingProfileIDDefault,
	VESIDs: VESIDMapping{
		Invoice:    "eu.peppol.bis3:invoice:2025.5",
		CreditNote: "eu.peppol.bis3:creditnote:2025.5",
	},
}

// ContextEN16931 is the plain European norm context.
var ContextEN16931 = Context{
	Name:            "EN 16931",
	CustomizationID: "urn:cen.eu:en16931:2017",
	VESIDs: VESIDMapping{
		Invoice:    "eu.cen.en16931:ubl:1.3.14-2",
		CreditNote: "eu.cen.en16931:ubl-creditnote:1.3.15",
	},
}

// contexts is used internally for reverse lookups during parsing.
var contexts = []Context{ContextAUNZ, ContextPeppol, ContextEN16931}

// ABNSchemeID is the ISO 6523 ICD code for an Australian Business Number.
const ABNSchemeID = "0151"

// InvoiceTypeCommercial is the UNTDID 1001 code for a commercial invoice.
const InvoiceTypeCommercial = "380"

// Defaults holds the values used to complete sparse invoice data. They
// are fixed for the lifetime of a process and never mutated.
type Defaults struct {
	// Currency is used when the metadata has no currency code.
	Currency currency.Code
	// Country is applied to every address without a country.
	Country l10n.ISOCountryCode
	// Reference is the buyer reference placeholder.
	Reference string
	// PaymentDays is added to the issue date to get the due date.
	PaymentDays int
	// TaxRate is the single GST rate, as a fraction (0.1 is 10%).
	TaxRate decimal.Decimal
	// TaxCategory and TaxScheme classify the GST rate.
	TaxCategory string
	TaxScheme   string
	// UnitCode is the UN/ECE rec 20 unit used for every quantity.
	UnitCode string
	// IDWidth is the zero padded width of generated invoice numbers,
	// drawn from [0, MaxID).
	IDWidth int
	MaxID   int64
}

// DefaultsAUNZ are the defaults for Australian GST invoices.
var DefaultsAUNZ = Defaults{
	Currency:    "AUD",
	Country:     "AU",
	Reference:   "Generic",
	PaymentDays: 14,
	TaxRate:     decimal.RequireFromString("0.1"),
	TaxCategory: "S",
	TaxScheme:   "GST",
	UnitCode:    "C62",
	IDWidth:     7,
	MaxID:       9999999,
}

type options struct {
	context  Context
	defaults Defaults
	ids      func(limit int64) int64
	now      func() time.Time
}

// Option is used to define configuration options to use during
// build processes.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		context:  ContextAUNZ,
		defaults: DefaultsAUNZ,
		ids:      rand.Int64N,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContext sets the context to use for the configuration
// and business profile.
func WithContext(c Context) Option {
	return func(o *options) {
		o.context = c
	}
}

// WithDefaults replaces the defaults used to complete missing data.
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		o.defaults = d
	}
}

// WithIDSource sets the function used to draw a random invoice number
// in the range [0, limit) when none is provided.
func WithIDSource(fn func(limit int64) int64) Option {
	return func(o *options) {
		o.ids = fn
	}
}

// WithClock sets the function used to determine today's date.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		o.now = fn
	}
}
