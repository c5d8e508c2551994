package ubl

import (
	"bytes"
	"encoding/xml"
)

// Node is a single entry in a document tree. It is either a Leaf holding
// character data or an *Element.
type Node interface {
	isNode()
}

// Leaf is scalar character data. The empty string marks an absent value.
type Leaf string

func (Leaf) isNode() {}

// Attr is an attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is a named node with ordered attributes and children. Names
// include their namespace prefix, for example "cbc:ID".
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Element) isNode() {}

// El creates a new element with the provided children. Nil elements
// are accepted and ignored during pruning.
func El(name string, children ...Node) *Element {
	return &Element{Name: name, Children: children}
}

// Field creates an element holding a single text value.
func Field(name, value string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs, Children: []Node{Leaf(value)}}
}

// Child returns the first direct child element with the given name.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, n := range e.Children {
		if c, ok := n.(*Element); ok && c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child element with the given name,
// in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, n := range e.Children {
		if c, ok := n.(*Element); ok && c != nil && c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Path follows a chain of child names from e, returning nil as soon as
// one of them is missing.
func (e *Element) Path(names ...string) *Element {
	for _, n := range names {
		e = e.Child(n)
		if e == nil {
			return nil
		}
	}
	return e
}

// Text returns the concatenated character data of the element's direct
// leaves.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var s string
	for _, n := range e.Children {
		if l, ok := n.(Leaf); ok {
			s += string(l)
		}
	}
	return s
}

// Attr returns the value of the named attribute, or an empty string.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Prune returns a copy of the tree rooted at e where every element
// without any surviving content has been removed, recursively. Empty
// leaves never survive, and attributes on their own do not keep an
// element alive. The root element itself is always kept.
func Prune(e *Element) *Element {
	if e == nil {
		return nil
	}
	return &Element{
		Name:     e.Name,
		Attrs:    append([]Attr(nil), e.Attrs...),
		Children: pruneNodes(e.Children),
	}
}

func pruneNodes(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		switch v := n.(type) {
		case Leaf:
			if v != "" {
				out = append(out, v)
			}
		case *Element:
			if v == nil {
				continue
			}
			if children := pruneNodes(v.Children); len(children) > 0 {
				out = append(out, &Element{
					Name:     v.Name,
					Attrs:    append([]Attr(nil), v.Attrs...),
					Children: children,
				})
			}
		}
	}
	return out
}

// MarshalXML writes the element tree, attributes before children.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, n := range e.Children {
		switch v := n.(type) {
		case Leaf:
			if err := enc.EncodeToken(xml.CharData(v)); err != nil {
				return err
			}
		case *Element:
			if v == nil {
				continue
			}
			if err := v.MarshalXML(enc, xml.StartElement{}); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(start.End())
}

// Bytes returns the raw XML of the document tree including the XML
// header.
func Bytes(e *Element) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	if err := e.MarshalXML(enc, xml.StartElement{}); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
