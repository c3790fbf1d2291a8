package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	countries "github.com/BeamLabEU/beamlab-countries"
)

type cliConfig struct {
	kind   string
	code   string
	list   bool
	format bool
	amount float64
	native bool
	after  bool
}

func main() {
	cfg := cliConfig{}
	flag.StringVar(&cfg.kind, "kind", "currency", "record kind: currency, country, language, locale, subdivision, organization")
	flag.StringVar(&cfg.code, "code", "", "code to look up")
	flag.BoolVar(&cfg.list, "list", false, "list every code for the selected kind")
	flag.BoolVar(&cfg.format, "format", false, "format -amount in the currency given by -code")
	flag.Float64Var(&cfg.amount, "amount", 0, "amount to format")
	flag.BoolVar(&cfg.native, "native", false, "use the native currency symbol")
	flag.BoolVar(&cfg.after, "after", false, "place the symbol after the number")
	flag.Parse()

	registry, err := countries.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(registry, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(registry *countries.Registry, cfg cliConfig) error {
	if cfg.format {
		formatted, ok := registry.Currencies.Format(cfg.amount, cfg.code, formatOptions(cfg)...)
		if !ok {
			return fmt.Errorf("unknown currency %q", cfg.code)
		}
		fmt.Println(formatted)
		return nil
	}

	if cfg.list {
		return list(registry, cfg.kind)
	}

	if cfg.code == "" {
		return errors.New("missing -code (or pass -list)")
	}
	return lookup(registry, cfg.kind, cfg.code)
}

func formatOptions(cfg cliConfig) []countries.FormatOption {
	var opts []countries.FormatOption
	if cfg.native {
		opts = append(opts, countries.Native())
	}
	if cfg.after {
		opts = append(opts, countries.SymbolAfter())
	}
	return opts
}

func list(registry *countries.Registry, kind string) error {
	switch strings.ToLower(kind) {
	case "currency":
		for _, code := range registry.Currencies.Codes() {
			fmt.Println(code)
		}
	case "country":
		for _, code := range registry.Countries.Codes() {
			fmt.Println(code)
		}
	case "language":
		for _, code := range registry.Languages.Codes() {
			fmt.Println(code)
		}
	case "locale":
		for _, code := range registry.Locales.Codes() {
			fmt.Println(code)
		}
	case "organization":
		for _, org := range registry.Organizations.All() {
			fmt.Println(org.Code)
		}
	default:
		return fmt.Errorf("cannot list kind %q", kind)
	}
	return nil
}

func lookup(registry *countries.Registry, kind, code string) error {
	switch strings.ToLower(kind) {
	case "currency":
		currency, err := registry.Currencies.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\t%d digits\n", currency.Code, currency.Name, currency.Symbol, currency.DecimalDigits)
	case "country":
		country, err := registry.Countries.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", country.Alpha2, country.Name, country.Capital, country.CurrencyCode)
	case "language":
		language, err := registry.Languages.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\n", language.Code, language.Name, language.NativeName)
	case "locale":
		locale, err := registry.Locales.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", locale.Code, locale.Name)
	case "subdivision":
		subdivision, err := registry.Subdivisions.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\n", subdivision.Code, subdivision.Name, subdivision.Category)
	case "organization":
		organization, err := registry.Organizations.MustGet(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\n", organization.Code, organization.Name, strings.Join(organization.Members, ","))
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	return nil
}
