package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/gobl/currency"
	"github.com/invopop/gobl/l10n"
	ubl "github.com/macroservices/ubl.aunz"
)

// Environment variables read once at start up, usually from a .env file.
const (
	envCurrency    = "UBL_DEFAULT_CURRENCY"
	envCountry     = "UBL_DEFAULT_COUNTRY"
	envReference   = "UBL_DEFAULT_REFERENCE"
	envPaymentDays = "UBL_PAYMENT_DAYS"
)

// defaultsFromEnv overlays the environment on the A-NZ defaults.
func defaultsFromEnv(getenv func(string) string) (ubl.Defaults, error) {
	d := ubl.DefaultsAUNZ
	if v := strings.TrimSpace(getenv(envCurrency)); v != "" {
		d.Currency = currency.Code(strings.ToUpper(v))
	}
	if v := strings.TrimSpace(getenv(envCountry)); v != "" {
		d.Country = l10n.ISOCountryCode(strings.ToUpper(v))
	}
	if v := strings.TrimSpace(getenv(envReference)); v != "" {
		d.Reference = v
	}
	if v := strings.TrimSpace(getenv(envPaymentDays)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return d, fmt.Errorf("%s: invalid number of days %q", envPaymentDays, v)
		}
		d.PaymentDays = n
	}
	return d, nil
}

func contextByName(name string) (ubl.Context, error) {
	switch strings.ToLower(name) {
	case "", "aunz", "a-nz", "peppol-aunz":
		return ubl.ContextAUNZ, nil
	case "peppol":
		return ubl.ContextPeppol, nil
	case "en16931", "en":
		return ubl.ContextEN16931, nil
	}
	return ubl.Context{}, fmt.Errorf("unknown context %q", name)
}
