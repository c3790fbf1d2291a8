package countries

import (
	"sort"
	"strings"
)

// CountryCatalog is an immutable snapshot of ISO 3166-1 records with
// O(1) case-insensitive lookup by alpha-2, alpha-3, and numeric code.
// Safe for concurrent readers once constructed.
type CountryCatalog struct {
	byAlpha2  map[string]Country
	byAlpha3  map[string]Country
	byNumeric map[string]Country
	codes     []string
}

// NewCountryCatalog builds a catalog from decoded records. Duplicate
// alpha-2 codes are a construction error, never a silent overwrite.
func NewCountryCatalog(records []Country) (*CountryCatalog, error) {
	byAlpha2 := make(map[string]Country, len(records))
	byAlpha3 := make(map[string]Country, len(records))
	byNumeric := make(map[string]Country, len(records))
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Alpha2 = normalizeCode(record.Alpha2)
		record.Alpha3 = normalizeCode(record.Alpha3)
		record.CurrencyCode = normalizeCode(record.CurrencyCode)

		if _, exists := byAlpha2[record.Alpha2]; exists {
			return nil, duplicateCode("country", record.Alpha2)
		}

		byAlpha2[record.Alpha2] = record
		if record.Alpha3 != "" {
			byAlpha3[record.Alpha3] = record
		}
		if record.Numeric != "" {
			byNumeric[record.Numeric] = record
		}
		codes = append(codes, record.Alpha2)
	}

	sort.Strings(codes)

	return &CountryCatalog{
		byAlpha2:  byAlpha2,
		byAlpha3:  byAlpha3,
		byNumeric: byNumeric,
		codes:     codes,
	}, nil
}

// Get returns the country for an alpha-2 code, case-insensitive.
func (c *CountryCatalog) Get(alpha2 string) (Country, bool) {
	if c == nil {
		return Country{}, false
	}
	country, ok := c.byAlpha2[normalizeCode(alpha2)]
	return country, ok
}

// MustGet is the fail-fast variant of Get. The returned error carries
// the code as passed by the caller.
func (c *CountryCatalog) MustGet(alpha2 string) (Country, error) {
	country, ok := c.Get(alpha2)
	if !ok {
		return Country{}, notFound("country", alpha2)
	}
	return country, nil
}

// GetByAlpha3 returns the country for an ISO 3166-1 alpha-3 code.
func (c *CountryCatalog) GetByAlpha3(alpha3 string) (Country, bool) {
	if c == nil {
		return Country{}, false
	}
	country, ok := c.byAlpha3[normalizeCode(alpha3)]
	return country, ok
}

// GetByNumeric returns the country for an ISO 3166-1 numeric code,
// e.g. "840" for the United States.
func (c *CountryCatalog) GetByNumeric(numeric string) (Country, bool) {
	if c == nil {
		return Country{}, false
	}
	country, ok := c.byNumeric[strings.TrimSpace(numeric)]
	return country, ok
}

// All returns every country sorted ascending by alpha-2 code.
func (c *CountryCatalog) All() []Country {
	if c == nil {
		return nil
	}
	out := make([]Country, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.byAlpha2[code])
	}
	return out
}

// Codes returns all alpha-2 codes sorted ascending.
func (c *CountryCatalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Count returns the number of countries in the catalog.
func (c *CountryCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// IsValid reports whether the alpha-2 code resolves, case-insensitive.
func (c *CountryCatalog) IsValid(alpha2 string) bool {
	_, ok := c.Get(alpha2)
	return ok
}

// InRegion returns every country in the named region sorted by name.
// Region matching is case-insensitive.
func (c *CountryCatalog) InRegion(region string) []Country {
	if c == nil {
		return nil
	}

	var out []Country
	for _, code := range c.codes {
		country := c.byAlpha2[code]
		if strings.EqualFold(country.Region, region) {
			out = append(out, country)
		}
	}
	sortCountriesByName(out)
	return out
}

// FindByName resolves a country by its common or official name,
// case-insensitive exact match.
func (c *CountryCatalog) FindByName(name string) (Country, bool) {
	if c == nil {
		return Country{}, false
	}

	trimmed := strings.TrimSpace(name)
	for _, code := range c.codes {
		country := c.byAlpha2[code]
		if strings.EqualFold(country.Name, trimmed) || strings.EqualFold(country.OfficialName, trimmed) {
			return country, true
		}
	}
	return Country{}, false
}

func sortCountriesByName(records []Country) {
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
}
