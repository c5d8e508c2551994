package ubl

import (
	"bytes"
	"encoding/json"
	"strings"
)

// UBL schema constants
const (
	NamespaceCBC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceQDT  = "urn:oasis:names:specification:ubl:schema:xsd:QualifiedDataTypes-2"
	NamespaceUDT  = "urn:oasis:names:specification:ubl:schema:xsd:UnqualifiedDataTypes-2"
	NamespaceCCTS = "urn:un:unece:uncefact:documentation:2"
	NamespaceXSI  = "http://www.w3.org/2001/XMLSchema-instance"
)

// Keys used by compact JSON renditions of XML documents.
const (
	jsonTextKey       = "_text"
	jsonAttributesKey = "_attributes"
	jsonAttrPrefix    = "$"
)

// Text is a basic component holding only character data. In JSON trees
// it may appear as a raw scalar or wrapped in an object with a "_text"
// key.
type Text struct {
	Value string `xml:",chardata"`
}

// UnmarshalJSON accepts both the raw and the wrapped encodings.
func (t *Text) UnmarshalJSON(data []byte) error {
	l, err := decodeLeaf(data)
	if err != nil {
		return err
	}
	t.Value = l.text
	return nil
}

// String returns the trimmed text, or an empty string when nil.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return cleanString(t.Value)
}

// IDType represents an ID with optional scheme attributes
type IDType struct {
	SchemeID   *string `xml:"schemeID,attr"`
	SchemeName *string `xml:"schemeName,attr"`
	Value      string  `xml:",chardata"`
}

// UnmarshalJSON accepts both the raw and the wrapped encodings.
func (id *IDType) UnmarshalJSON(data []byte) error {
	l, err := decodeLeaf(data)
	if err != nil {
		return err
	}
	id.Value = l.text
	id.SchemeID = l.attr("schemeID")
	id.SchemeName = l.attr("schemeName")
	return nil
}

// String returns the trimmed identifier, or an empty string when nil.
func (id *IDType) String() string {
	if id == nil {
		return ""
	}
	return cleanString(id.Value)
}

// Scheme returns the scheme identifier, if any.
func (id *IDType) Scheme() string {
	if id == nil || id.SchemeID == nil {
		return ""
	}
	return cleanString(*id.SchemeID)
}

// Quantity represents a quantity with a unit code
type Quantity struct {
	UnitCode *string `xml:"unitCode,attr"`
	Value    string  `xml:",chardata"`
}

// UnmarshalJSON accepts both the raw and the wrapped encodings.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	l, err := decodeLeaf(data)
	if err != nil {
		return err
	}
	q.Value = l.text
	q.UnitCode = l.attr("unitCode")
	return nil
}

// Period represents a validity period
type Period struct {
	StartDate *Text `xml:"cbc:StartDate"`
	EndDate   *Text `xml:"cbc:EndDate"`
}

// List holds repeated elements. Compact JSON trees encode a single
// occurrence as an object and several as an array; both are accepted.
type List[T any] []T

// UnmarshalJSON accepts a single object or an array of objects.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*l = List[T]{item}
	return nil
}

// leaf is the decoded form of a JSON tree leaf.
type leaf struct {
	text    string
	attrs   map[string]string
	wrapped bool
}

func (l leaf) attr(name string) *string {
	v, ok := l.attrs[name]
	if !ok {
		return nil
	}
	return &v
}

// decodeLeaf reads a JSON leaf that may be a string, a number, a
// boolean, or an object with a "_text" key and "$" prefixed attributes.
func decodeLeaf(data []byte) (leaf, error) {
	var l leaf
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return l, nil
	}
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &l.text); err != nil {
			return l, err
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return l, err
		}
		if len(items) > 0 {
			return decodeLeaf(items[0])
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return l, err
		}
		l.wrapped = true
		l.attrs = make(map[string]string)
		for k, v := range obj {
			switch {
			case k == jsonTextKey:
				inner, err := decodeLeaf(v)
				if err != nil {
					return l, err
				}
				l.text = inner.text
			case k == jsonAttributesKey:
				var attrs map[string]json.RawMessage
				if err := json.Unmarshal(v, &attrs); err != nil {
					return l, err
				}
				for ak, av := range attrs {
					inner, err := decodeLeaf(av)
					if err != nil {
						return l, err
					}
					l.attrs[ak] = inner.text
				}
			case strings.HasPrefix(k, jsonAttrPrefix):
				inner, err := decodeLeaf(v)
				if err != nil {
					return l, err
				}
				l.attrs[strings.TrimPrefix(k, jsonAttrPrefix)] = inner.text
			}
		}
	default:
		// numbers and booleans keep their literal form
		l.text = string(data)
	}
	return l, nil
}

// normalizeNumericString cleans up numeric strings to ensure they can be parsed correctly.
// It handles:
// - Leading/trailing whitespace (e.g., " 123.45 " -> "123.45")
// - Numbers starting with decimal point (e.g., ".07" -> "0.07")
func normalizeNumericString(s string) string {
	// Trim whitespace
	s = strings.TrimSpace(s)

	// Add leading zero if string starts with decimal point
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}

	return s
}

// cleanString collapses runs of whitespace, which XML producers
// frequently leave behind when pretty printing.
func cleanString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
