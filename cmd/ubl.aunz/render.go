package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	ubl "github.com/macroservices/ubl.aunz"
	"github.com/macroservices/ubl.aunz/render"
	"github.com/spf13/cobra"
)

const formatXML = "xml"

// errNonConformant is reported when an input cannot be read as a UBL
// invoice.
var errNonConformant = errors.New("file does not follow the A-NZ-PEPPOL-BIS-3.0 specification")

type renderOpts struct {
	*rootOpts
	format string
	style  int
}

func renderer(o *rootOpts) *renderOpts {
	return &renderOpts{rootOpts: o}
}

func (r *renderOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <infile> [outfile]",
		Short: "Render a UBL invoice, as XML or a JSON tree, into a readable document",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  r.runE,
	}

	flags := cmd.Flags()
	flags.StringVarP(&r.format, "format", "f", string(render.FormatPDF), "Output format (pdf, html, json, xml)")
	flags.IntVar(&r.style, "style", int(render.StyleDefault), "Style: 0 default, 1 landscape, 2 detailed, 3 summary, 4 high contrast")

	return cmd
}

func (r *renderOpts) runE(cmd *cobra.Command, args []string) error {
	log := r.logger()

	style, err := render.ParseStyle(r.style)
	if err != nil {
		return err
	}
	var format render.Format
	if r.format != formatXML {
		if format, err = render.ParseFormat(r.format); err != nil {
			return err
		}
	}

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	inData, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	inv, err := parseDocument(inData)
	if err != nil {
		log.Debug("parsing failed", "error", err)
		return fmt.Errorf("%w: %w", errNonConformant, err)
	}
	log.Debug("document parsed", "id", inv.ID.String(), "credit_note", inv.IsCreditNote())
	if c := inv.Context(); c == nil || !c.Is(ubl.ContextAUNZ) {
		log.Warn("document does not declare the A-NZ customization", "customization_id", inv.CustomizationID.String())
	}

	out, err := r.openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	if r.format == formatXML {
		if _, err := out.Write(inData); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := render.Document(out, inv, format, style); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	log.Debug("document rendered", "format", format, "style", style.String())
	return nil
}

// parseDocument accepts UBL XML or its compact JSON tree.
func parseDocument(data []byte) (*ubl.Invoice, error) {
	if json.Valid(data) {
		return ubl.ParseJSON(data)
	}
	return ubl.Parse(bytes.TrimSpace(data))
}
