package countries

import "sort"

// OrganizationCatalog is an immutable snapshot of international
// organizations and trade blocs with their membership lists.
type OrganizationCatalog struct {
	organizations map[string]Organization
	membership    map[string]map[string]struct{}
	codes         []string
	countries     *CountryCatalog
}

// NewOrganizationCatalog builds a catalog from decoded records. The
// country catalog resolves MemberCountries and may be nil.
func NewOrganizationCatalog(records []Organization, countries *CountryCatalog) (*OrganizationCatalog, error) {
	organizations := make(map[string]Organization, len(records))
	membership := make(map[string]map[string]struct{}, len(records))
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Code = normalizeCode(record.Code)
		if _, exists := organizations[record.Code]; exists {
			return nil, duplicateCode("organization", record.Code)
		}

		members := make(map[string]struct{}, len(record.Members))
		normalized := make([]string, 0, len(record.Members))
		for _, member := range record.Members {
			alpha2 := normalizeCode(member)
			if _, ok := members[alpha2]; ok {
				continue
			}
			members[alpha2] = struct{}{}
			normalized = append(normalized, alpha2)
		}
		sort.Strings(normalized)
		record.Members = normalized

		organizations[record.Code] = record
		membership[record.Code] = members
		codes = append(codes, record.Code)
	}

	sort.Strings(codes)

	return &OrganizationCatalog{
		organizations: organizations,
		membership:    membership,
		codes:         codes,
		countries:     countries,
	}, nil
}

// Get returns the organization for a code, case-insensitive.
func (c *OrganizationCatalog) Get(code string) (Organization, bool) {
	if c == nil {
		return Organization{}, false
	}
	organization, ok := c.organizations[normalizeCode(code)]
	return organization, ok
}

// MustGet is the fail-fast variant of Get.
func (c *OrganizationCatalog) MustGet(code string) (Organization, error) {
	organization, ok := c.Get(code)
	if !ok {
		return Organization{}, notFound("organization", code)
	}
	return organization, nil
}

// All returns every organization sorted ascending by code.
func (c *OrganizationCatalog) All() []Organization {
	if c == nil {
		return nil
	}
	out := make([]Organization, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.organizations[code])
	}
	return out
}

// Count returns the number of organizations in the catalog.
func (c *OrganizationCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// IsMember reports whether the country belongs to the organization.
// Both codes are case-insensitive.
func (c *OrganizationCatalog) IsMember(code, alpha2 string) bool {
	if c == nil {
		return false
	}
	members, ok := c.membership[normalizeCode(code)]
	if !ok {
		return false
	}
	_, ok = members[normalizeCode(alpha2)]
	return ok
}

// MemberCountries resolves an organization's members through the country
// catalog, sorted ascending by country name. Members without a country
// record are skipped.
func (c *OrganizationCatalog) MemberCountries(code string) []Country {
	if c == nil || c.countries == nil {
		return nil
	}

	organization, ok := c.Get(code)
	if !ok {
		return nil
	}

	out := make([]Country, 0, len(organization.Members))
	for _, member := range organization.Members {
		if country, ok := c.countries.Get(member); ok {
			out = append(out, country)
		}
	}
	sortCountriesByName(out)
	return out
}
