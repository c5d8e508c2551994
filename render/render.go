// Package render turns invoice views into JSON, HTML and PDF output.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	ubl "github.com/macroservices/ubl.aunz"
)

var (
	// ErrUnknownStyle is returned for style numbers outside the known set.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown format")
)

// Style selects the layout of rendered documents.
type Style int

// Supported styles, numbered as offered to users.
const (
	StyleDefault Style = iota
	StyleLandscape
	StyleDetailed
	StyleSummary
	StyleHighContrast
)

var styleNames = []string{
	StyleDefault:      "Default",
	StyleLandscape:    "Landscape",
	StyleDetailed:     "Detailed",
	StyleSummary:      "Summary",
	StyleHighContrast: "Default High Contrast",
}

// ParseStyle validates a style number.
func ParseStyle(n int) (Style, error) {
	if n < 0 || n >= len(styleNames) {
		return StyleDefault, fmt.Errorf("%w: %d", ErrUnknownStyle, n)
	}
	return Style(n), nil
}

// String returns the display name of the style.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "Unknown"
	}
	return styleNames[s]
}

// Detail is the projection level used by the style.
func (s Style) Detail() ubl.Detail {
	switch s {
	case StyleDetailed:
		return ubl.DetailDetailed
	case StyleSummary:
		return ubl.DetailSummary
	}
	return ubl.DetailDefault
}

// Landscape reports whether pages are laid out horizontally.
func (s Style) Landscape() bool {
	return s == StyleLandscape
}

// HighContrast reports whether plain black and white colours are used.
func (s Style) HighContrast() bool {
	return s == StyleHighContrast
}

// Format is an output format.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ParseFormat reads a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatHTML, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document projects the invoice with the style's detail level and
// writes it in the requested format.
func Document(w io.Writer, inv *ubl.Invoice, f Format, s Style) error {
	v := ubl.NewView(inv, s.Detail())
	switch f {
	case FormatJSON:
		return JSON(w, v)
	case FormatHTML:
		return HTML(w, v, s)
	case FormatPDF:
		return PDF(w, v, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
