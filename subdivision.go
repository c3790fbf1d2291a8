package countries

import "sort"

// SubdivisionCatalog is an immutable snapshot of ISO 3166-2 records
// indexed by full code and by owning country.
type SubdivisionCatalog struct {
	byCode    map[string]Subdivision
	byCountry map[string][]Subdivision
	codes     []string
}

// NewSubdivisionCatalog builds a catalog from decoded records.
func NewSubdivisionCatalog(records []Subdivision) (*SubdivisionCatalog, error) {
	byCode := make(map[string]Subdivision, len(records))
	byCountry := make(map[string][]Subdivision)
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Code = normalizeCode(record.Code)
		if _, exists := byCode[record.Code]; exists {
			return nil, duplicateCode("subdivision", record.Code)
		}
		byCode[record.Code] = record
		country := record.CountryCode()
		byCountry[country] = append(byCountry[country], record)
		codes = append(codes, record.Code)
	}

	sort.Strings(codes)
	for _, list := range byCountry {
		sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	}

	return &SubdivisionCatalog{
		byCode:    byCode,
		byCountry: byCountry,
		codes:     codes,
	}, nil
}

// Get returns the subdivision for a full "CC-XXX" code, case-insensitive.
func (c *SubdivisionCatalog) Get(code string) (Subdivision, bool) {
	if c == nil {
		return Subdivision{}, false
	}
	subdivision, ok := c.byCode[normalizeCode(code)]
	return subdivision, ok
}

// MustGet is the fail-fast variant of Get.
func (c *SubdivisionCatalog) MustGet(code string) (Subdivision, error) {
	subdivision, ok := c.Get(code)
	if !ok {
		return Subdivision{}, notFound("subdivision", code)
	}
	return subdivision, nil
}

// ForCountry returns a country's subdivisions sorted ascending by code.
func (c *SubdivisionCatalog) ForCountry(alpha2 string) []Subdivision {
	if c == nil {
		return nil
	}
	list, ok := c.byCountry[normalizeCode(alpha2)]
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]Subdivision, len(list))
	copy(out, list)
	return out
}

// Count returns the number of subdivisions in the catalog.
func (c *SubdivisionCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}
