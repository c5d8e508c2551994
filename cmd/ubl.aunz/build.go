package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/invopop/gobl/currency"
	"github.com/invopop/gobl/l10n"
	ubl "github.com/macroservices/ubl.aunz"
	"github.com/spf13/cobra"
)

type buildOpts struct {
	*rootOpts
	contextName string
	currency    string
	country     string
	reference   string
	paymentDays int
	getenv      func(string) string
}

func build(o *rootOpts) *buildOpts {
	return &buildOpts{rootOpts: o, getenv: os.Getenv, paymentDays: -1}
}

func (b *buildOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <infile> [outfile]",
		Short: "Build a UBL invoice from a JSON invoice request",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  b.runE,
	}

	flags := cmd.Flags()
	flags.StringVar(&b.contextName, "context", "", "Context for the document (aunz, peppol, en16931)")
	flags.StringVar(&b.currency, "currency", "", "Default currency code (env: "+envCurrency+")")
	flags.StringVar(&b.country, "country", "", "Default address country code (env: "+envCountry+")")
	flags.StringVar(&b.reference, "reference", "", "Default buyer reference (env: "+envReference+")")
	flags.IntVar(&b.paymentDays, "payment-days", -1, "Days between issue and due date (env: "+envPaymentDays+")")

	return cmd
}

func (b *buildOpts) runE(cmd *cobra.Command, args []string) error {
	log := b.logger()

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	inData, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	req := new(ubl.Request)
	if err := json.Unmarshal(inData, req); err != nil {
		return fmt.Errorf("parsing input as invoice request: %w", err)
	}

	opts, err := b.buildOptions()
	if err != nil {
		return err
	}

	log.Debug("building invoice", "items", len(req.Items), "id", req.Meta.ID)
	doc, err := req.Build(opts...)
	if err != nil {
		return fmt.Errorf("building UBL document: %w", err)
	}

	out, err := b.openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	if _, err = io.WriteString(out, doc); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Debug("invoice written", "bytes", len(doc), "file", b.outputFilename(args))
	return nil
}

// buildOptions combines the environment defaults with the flags, which
// take precedence.
func (b *buildOpts) buildOptions() ([]ubl.Option, error) {
	d, err := defaultsFromEnv(b.getenv)
	if err != nil {
		return nil, err
	}
	if b.currency != "" {
		d.Currency = currency.Code(strings.ToUpper(b.currency))
	}
	if b.country != "" {
		d.Country = l10n.ISOCountryCode(strings.ToUpper(b.country))
	}
	if b.reference != "" {
		d.Reference = b.reference
	}
	if b.paymentDays >= 0 {
		d.PaymentDays = b.paymentDays
	}

	ctx, err := contextByName(b.contextName)
	if err != nil {
		return nil, err
	}

	return []ubl.Option{ubl.WithContext(ctx), ubl.WithDefaults(d)}, nil
}
