package countries

import "sort"

// CurrencyCatalog is an immutable snapshot of ISO 4217 records,
// constructed once and read-only afterwards. Lookups are O(1) and
// case-insensitive; the catalog needs no locking for concurrent reads.
type CurrencyCatalog struct {
	currencies map[string]Currency
	codes      []string
	countries  *CountryCatalog
}

// NewCurrencyCatalog builds a catalog from decoded records. The country
// catalog backs the cross-reference queries and may be nil when those
// are not needed.
func NewCurrencyCatalog(records []Currency, countries *CountryCatalog) (*CurrencyCatalog, error) {
	currencies := make(map[string]Currency, len(records))
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Code = normalizeCode(record.Code)
		if _, exists := currencies[record.Code]; exists {
			return nil, duplicateCode("currency", record.Code)
		}
		currencies[record.Code] = record
		codes = append(codes, record.Code)
	}

	sort.Strings(codes)

	return &CurrencyCatalog{
		currencies: currencies,
		codes:      codes,
		countries:  countries,
	}, nil
}

// Get returns the currency for a code. Matching is case-insensitive,
// so Get("usd"), Get("USD") and Get("Usd") are equivalent.
func (c *CurrencyCatalog) Get(code string) (Currency, bool) {
	if c == nil {
		return Currency{}, false
	}
	currency, ok := c.currencies[normalizeCode(code)]
	return currency, ok
}

// MustGet is the fail-fast variant of Get: it returns a NotFoundError
// carrying the code as the caller passed it when the lookup misses.
func (c *CurrencyCatalog) MustGet(code string) (Currency, error) {
	currency, ok := c.Get(code)
	if !ok {
		return Currency{}, notFound("currency", code)
	}
	return currency, nil
}

// Name returns the display name for a code.
func (c *CurrencyCatalog) Name(code string) (string, bool) {
	currency, ok := c.Get(code)
	return currency.Name, ok
}

// Symbol returns the international symbol for a code.
func (c *CurrencyCatalog) Symbol(code string) (string, bool) {
	currency, ok := c.Get(code)
	return currency.Symbol, ok
}

// SymbolNative returns the home-territory symbol for a code.
func (c *CurrencyCatalog) SymbolNative(code string) (string, bool) {
	currency, ok := c.Get(code)
	return currency.SymbolNative, ok
}

// DecimalDigits returns the conventional fractional digit count for a code.
func (c *CurrencyCatalog) DecimalDigits(code string) (int, bool) {
	currency, ok := c.Get(code)
	return currency.DecimalDigits, ok
}

// All returns every currency sorted ascending by code.
func (c *CurrencyCatalog) All() []Currency {
	if c == nil {
		return nil
	}
	out := make([]Currency, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.currencies[code])
	}
	return out
}

// Codes returns all currency codes sorted ascending.
func (c *CurrencyCatalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Count returns the number of currencies in the catalog.
func (c *CurrencyCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// IsValid reports whether the code resolves, case-insensitive.
func (c *CurrencyCatalog) IsValid(code string) bool {
	_, ok := c.Get(code)
	return ok
}

// ForCountry resolves the currency used by the country with the given
// alpha-2 code. Misses on either side return ok=false.
func (c *CurrencyCatalog) ForCountry(alpha2 string) (Currency, bool) {
	if c == nil {
		return Currency{}, false
	}
	country, ok := c.countries.Get(alpha2)
	if !ok {
		return Currency{}, false
	}
	return c.Get(country.CurrencyCode)
}

// CountriesFor returns every country whose currency_code matches the
// given code, sorted ascending by country name. Country records store
// uppercase currency codes, so the match is exact after normalization.
func (c *CurrencyCatalog) CountriesFor(code string) []Country {
	if c == nil || c.countries == nil {
		return nil
	}

	normalized := normalizeCode(code)
	var out []Country
	for _, country := range c.countries.All() {
		if country.CurrencyCode == normalized {
			out = append(out, country)
		}
	}
	sortCountriesByName(out)
	return out
}
