// Package ubl builds A-NZ PEPPOL BIS Billing 3.0 invoices in UBL and
// projects UBL invoices and credit notes into display groupings.
package ubl

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/invopop/validation"
	"github.com/invopop/xmlctx"
)

// ErrUnknownDocumentType is returned when the document type
// is not recognized during parsing.
var ErrUnknownDocumentType = fmt.Errorf("unknown document type")

// InvalidAmountError is returned when a quantity or a price is not a
// finite number.
type InvalidAmountError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount for %s: %v", e.Field, e.Value)
}

// Build converts the invoice data into a UBL XML document. The
// arguments are never modified.
func Build(items []InvoiceItem, meta InvoiceMetadata, supplier, customer InvoiceParty, opts ...Option) (string, error) {
	doc, err := NewInvoice(items, meta, supplier, customer, opts...)
	if err != nil {
		return "", err
	}
	out, err := Bytes(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func validateItems(items []InvoiceItem) error {
	errs := validation.Errors{}
	for i, it := range items {
		ie := validation.Errors{}
		if !finite(it.Qty) {
			ie["qty"] = &InvalidAmountError{Field: "qty", Value: it.Qty}
		}
		if !finite(it.UnitPrice) {
			ie["unitPrice"] = &InvalidAmountError{Field: "unitPrice", Value: it.UnitPrice}
		}
		if len(ie) > 0 {
			errs[strconv.Itoa(i)] = ie
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return validation.Errors{"items": errs}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Parse reads a raw UBL Invoice or CreditNote document.
func Parse(data []byte) (*Invoice, error) {
	ns, err := extractRootNamespace(data)
	if err != nil {
		return nil, err
	}

	switch ns {
	case NamespaceUBLInvoice, NamespaceUBLCreditNote:
		in := new(Invoice)
		if err := xmlctx.Unmarshal(data, in, xmlctx.WithNamespaces(map[string]string{
			"":     ns,
			"cbc":  NamespaceCBC,
			"cac":  NamespaceCAC,
			"qdt":  NamespaceQDT,
			"udt":  NamespaceUDT,
			"ccts": NamespaceCCTS,
			"xsi":  NamespaceXSI,
		})); err != nil {
			return nil, err
		}
		return in, nil
	default:
		return nil, ErrUnknownDocumentType
	}
}

func extractRootNamespace(data []byte) (string, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing XML: %w", err)
		}
		switch t := tk.(type) {
		case xml.StartElement:
			return t.Name.Space, nil
		}
	}
	return "", ErrUnknownDocumentType
}

// ParseJSON reads a UBL document already converted into a compact JSON
// tree. Text is held in "_text" keys and attributes either in "$"
// prefixed keys or in an "_attributes" object. Namespace prefixes on
// element names are optional, and the root element may be kept as a
// wrapping "Invoice" or "CreditNote" key.
func ParseJSON(data []byte) (*Invoice, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	obj, ok := stripPrefixes(tree).(map[string]any)
	if !ok {
		return nil, ErrUnknownDocumentType
	}
	root := "Invoice"
	for _, name := range []string{"Invoice", "CreditNote"} {
		if inner, ok := obj[name].(map[string]any); ok {
			obj, root = inner, name
			break
		}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	in := new(Invoice)
	if err := json.Unmarshal(raw, in); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	if in.ID == nil && in.LegalMonetaryTotal == nil && len(in.Lines()) == 0 {
		return nil, ErrUnknownDocumentType
	}
	in.XMLName = xml.Name{Local: root}
	return in, nil
}

// stripPrefixes removes namespace prefixes from element keys. Attribute
// keys are left alone.
func stripPrefixes(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, c := range t {
			if !strings.HasPrefix(k, jsonAttrPrefix) && k != jsonAttributesKey {
				if i := strings.IndexByte(k, ':'); i >= 0 {
					k = k[i+1:]
				}
			}
			out[k] = stripPrefixes(c)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, c := range t {
			out[i] = stripPrefixes(c)
		}
		return out
	}
	return v
}

// IsInvalidAmount reports whether err, or any error aggregated in it,
// is an InvalidAmountError.
func IsInvalidAmount(err error) bool {
	var ia *InvalidAmountError
	if errors.As(err, &ia) {
		return true
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		for _, e := range ve {
			if IsInvalidAmount(e) {
				return true
			}
		}
	}
	return false
}
