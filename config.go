package countries

import (
	"fmt"
	"io"
)

// Config captures the dataset sources used to build a Registry. Every
// source defaults to the embedded dataset.
type Config struct {
	currencyData     []byte
	countryData      []byte
	languageData     []byte
	subdivisionData  []byte
	organizationData []byte
	localeData       []byte
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithCurrencySource replaces the embedded currency dataset.
func WithCurrencySource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read currency source: %w", err)
		}
		c.currencyData = data
		return nil
	}
}

// WithCountrySource replaces the embedded country dataset.
func WithCountrySource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read country source: %w", err)
		}
		c.countryData = data
		return nil
	}
}

// WithLanguageSource replaces the embedded language dataset.
func WithLanguageSource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read language source: %w", err)
		}
		c.languageData = data
		return nil
	}
}

// WithSubdivisionSource replaces the embedded subdivision dataset.
func WithSubdivisionSource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read subdivision source: %w", err)
		}
		c.subdivisionData = data
		return nil
	}
}

// WithOrganizationSource replaces the embedded organization dataset.
func WithOrganizationSource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read organization source: %w", err)
		}
		c.organizationData = data
		return nil
	}
}

// WithLocaleSource replaces the embedded locale dataset.
func WithLocaleSource(r io.Reader) Option {
	return func(c *Config) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("countries: read locale source: %w", err)
		}
		c.localeData = data
		return nil
	}
}

// Registry aggregates every catalog. It is built once by New and shared
// by read-only reference afterwards; there is no package-level instance.
type Registry struct {
	Currencies    *CurrencyCatalog
	Countries     *CountryCatalog
	Languages     *LanguageCatalog
	Subdivisions  *SubdivisionCatalog
	Organizations *OrganizationCatalog
	Locales       *LocaleCatalog
}

// New decodes every dataset and wires the catalogs. A decode or
// validation failure aborts construction; a partially populated
// Registry is never returned.
func New(opts ...Option) (*Registry, error) {
	cfg := &Config{
		currencyData:     defaultCurrencyData,
		countryData:      defaultCountryData,
		languageData:     defaultLanguageData,
		subdivisionData:  defaultSubdivisionData,
		organizationData: defaultOrganizationData,
		localeData:       defaultLocaleData,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Countries first: the currency, language, and organization
	// catalogs cross-reference them.
	countryRecords, err := decodeCountries(cfg.countryData)
	if err != nil {
		return nil, err
	}
	countryCatalog, err := NewCountryCatalog(countryRecords)
	if err != nil {
		return nil, err
	}

	currencyRecords, err := decodeCurrencies(cfg.currencyData)
	if err != nil {
		return nil, err
	}
	currencyCatalog, err := NewCurrencyCatalog(currencyRecords, countryCatalog)
	if err != nil {
		return nil, err
	}

	languageRecords, err := decodeLanguages(cfg.languageData)
	if err != nil {
		return nil, err
	}
	languageCatalog, err := NewLanguageCatalog(languageRecords, countryCatalog)
	if err != nil {
		return nil, err
	}

	subdivisionRecords, err := decodeSubdivisions(cfg.subdivisionData)
	if err != nil {
		return nil, err
	}
	subdivisionCatalog, err := NewSubdivisionCatalog(subdivisionRecords)
	if err != nil {
		return nil, err
	}

	organizationRecords, err := decodeOrganizations(cfg.organizationData)
	if err != nil {
		return nil, err
	}
	organizationCatalog, err := NewOrganizationCatalog(organizationRecords, countryCatalog)
	if err != nil {
		return nil, err
	}

	localeRecords, err := decodeLocales(cfg.localeData)
	if err != nil {
		return nil, err
	}
	localeCatalog, err := NewLocaleCatalog(localeRecords)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Currencies:    currencyCatalog,
		Countries:     countryCatalog,
		Languages:     languageCatalog,
		Subdivisions:  subdivisionCatalog,
		Organizations: organizationCatalog,
		Locales:       localeCatalog,
	}, nil
}

// MustNew panics when construction fails. Intended for program init
// where the embedded datasets are the source and failure is a build
// defect.
func MustNew(opts ...Option) *Registry {
	registry, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return registry
}
