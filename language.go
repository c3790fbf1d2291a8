package countries

import (
	"sort"
	"strings"
)

// LanguageCatalog is an immutable snapshot of ISO 639-1 records.
type LanguageCatalog struct {
	languages map[string]Language
	codes     []string
	countries *CountryCatalog
}

// NewLanguageCatalog builds a catalog from decoded records. The country
// catalog backs CountriesFor and may be nil.
func NewLanguageCatalog(records []Language, countries *CountryCatalog) (*LanguageCatalog, error) {
	languages := make(map[string]Language, len(records))
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Code = strings.ToLower(strings.TrimSpace(record.Code))
		if _, exists := languages[record.Code]; exists {
			return nil, duplicateCode("language", record.Code)
		}
		languages[record.Code] = record
		codes = append(codes, record.Code)
	}

	sort.Strings(codes)

	return &LanguageCatalog{
		languages: languages,
		codes:     codes,
		countries: countries,
	}, nil
}

// Get returns the language for an ISO 639-1 code, case-insensitive.
func (c *LanguageCatalog) Get(code string) (Language, bool) {
	if c == nil {
		return Language{}, false
	}
	language, ok := c.languages[strings.ToLower(strings.TrimSpace(code))]
	return language, ok
}

// MustGet is the fail-fast variant of Get.
func (c *LanguageCatalog) MustGet(code string) (Language, error) {
	language, ok := c.Get(code)
	if !ok {
		return Language{}, notFound("language", code)
	}
	return language, nil
}

// All returns every language sorted ascending by code.
func (c *LanguageCatalog) All() []Language {
	if c == nil {
		return nil
	}
	out := make([]Language, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.languages[code])
	}
	return out
}

// Codes returns all language codes sorted ascending.
func (c *LanguageCatalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Count returns the number of languages in the catalog.
func (c *LanguageCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// IsValid reports whether the code resolves, case-insensitive.
func (c *LanguageCatalog) IsValid(code string) bool {
	_, ok := c.Get(code)
	return ok
}

// CountriesFor returns every country that lists the language, sorted
// ascending by country name.
func (c *LanguageCatalog) CountriesFor(code string) []Country {
	if c == nil || c.countries == nil {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(code))
	var out []Country
	for _, country := range c.countries.All() {
		for _, lang := range country.Languages {
			if lang == normalized {
				out = append(out, country)
				break
			}
		}
	}
	sortCountriesByName(out)
	return out
}
