package countries

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/currencies.yaml
var defaultCurrencyData []byte

//go:embed data/countries.yaml
var defaultCountryData []byte

//go:embed data/languages.yaml
var defaultLanguageData []byte

//go:embed data/subdivisions.json
var defaultSubdivisionData []byte

//go:embed data/organizations.yaml
var defaultOrganizationData []byte

//go:embed data/locales.yaml
var defaultLocaleData []byte

type rawCurrency struct {
	Name          string `yaml:"name"`
	NamePlural    string `yaml:"name_plural"`
	Symbol        string `yaml:"symbol"`
	SymbolNative  string `yaml:"symbol_native"`
	DecimalDigits int    `yaml:"decimal_digits"`
}

func decodeCurrencies(data []byte) ([]Currency, error) {
	var raw map[string]rawCurrency
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode currencies: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("countries: empty currency dataset")
	}

	records := make([]Currency, 0, len(raw))
	for code, entry := range raw {
		normalized := normalizeCode(code)
		if len(normalized) != 3 {
			return nil, fmt.Errorf("countries: currency code %q is not a 3-letter code", code)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("countries: currency %s has no name", normalized)
		}
		if entry.DecimalDigits < 0 {
			return nil, fmt.Errorf("countries: currency %s has negative decimal digits", normalized)
		}

		records = append(records, Currency{
			Code:          normalized,
			Name:          entry.Name,
			NamePlural:    entry.NamePlural,
			Symbol:        entry.Symbol,
			SymbolNative:  entry.SymbolNative,
			DecimalDigits: entry.DecimalDigits,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

type rawCountry struct {
	Alpha3       string   `yaml:"alpha3"`
	Numeric      string   `yaml:"numeric"`
	Name         string   `yaml:"name"`
	OfficialName string   `yaml:"official_name"`
	Region       string   `yaml:"region"`
	Subregion    string   `yaml:"subregion"`
	Capital      string   `yaml:"capital"`
	CurrencyCode string   `yaml:"currency_code"`
	CallingCode  string   `yaml:"calling_code"`
	Languages    []string `yaml:"languages"`
	EmojiFlag    string   `yaml:"emoji_flag"`
}

func decodeCountries(data []byte) ([]Country, error) {
	var raw map[string]rawCountry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode countries: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("countries: empty country dataset")
	}

	records := make([]Country, 0, len(raw))
	for code, entry := range raw {
		alpha2 := normalizeCode(code)
		if len(alpha2) != 2 {
			return nil, fmt.Errorf("countries: country code %q is not a 2-letter code", code)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("countries: country %s has no name", alpha2)
		}

		languages := make([]string, 0, len(entry.Languages))
		for _, lang := range entry.Languages {
			lang = strings.ToLower(strings.TrimSpace(lang))
			if lang != "" {
				languages = append(languages, lang)
			}
		}

		records = append(records, Country{
			Alpha2:       alpha2,
			Alpha3:       normalizeCode(entry.Alpha3),
			Numeric:      strings.TrimSpace(entry.Numeric),
			Name:         entry.Name,
			OfficialName: entry.OfficialName,
			Region:       entry.Region,
			Subregion:    entry.Subregion,
			Capital:      entry.Capital,
			CurrencyCode: normalizeCode(entry.CurrencyCode),
			CallingCode:  strings.TrimSpace(entry.CallingCode),
			Languages:    languages,
			EmojiFlag:    entry.EmojiFlag,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Alpha2 < records[j].Alpha2 })
	return records, nil
}

type rawLanguage struct {
	Name       string `yaml:"name"`
	NativeName string `yaml:"native_name"`
}

func decodeLanguages(data []byte) ([]Language, error) {
	var raw map[string]rawLanguage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode languages: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("countries: empty language dataset")
	}

	records := make([]Language, 0, len(raw))
	for code, entry := range raw {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if len(normalized) != 2 {
			return nil, fmt.Errorf("countries: language code %q is not a 2-letter code", code)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("countries: language %s has no name", normalized)
		}

		records = append(records, Language{
			Code:       normalized,
			Name:       entry.Name,
			NativeName: entry.NativeName,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

type rawSubdivision struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func decodeSubdivisions(data []byte) ([]Subdivision, error) {
	var raw map[string][]rawSubdivision
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode subdivisions: %w", err)
	}

	var records []Subdivision
	for country, entries := range raw {
		alpha2 := normalizeCode(country)
		if len(alpha2) != 2 {
			return nil, fmt.Errorf("countries: subdivision country %q is not a 2-letter code", country)
		}
		for _, entry := range entries {
			code := normalizeCode(entry.Code)
			if !strings.HasPrefix(code, alpha2+"-") {
				return nil, fmt.Errorf("countries: subdivision %q does not belong to %s", entry.Code, alpha2)
			}
			if entry.Name == "" {
				return nil, fmt.Errorf("countries: subdivision %s has no name", code)
			}
			records = append(records, Subdivision{
				Code:     code,
				Name:     entry.Name,
				Category: entry.Category,
			})
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

type rawOrganization struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

func decodeOrganizations(data []byte) ([]Organization, error) {
	var raw map[string]rawOrganization
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode organizations: %w", err)
	}

	records := make([]Organization, 0, len(raw))
	for code, entry := range raw {
		normalized := normalizeCode(code)
		if normalized == "" {
			return nil, errors.New("countries: empty organization code")
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("countries: organization %s has no name", normalized)
		}

		seen := make(map[string]struct{}, len(entry.Members))
		members := make([]string, 0, len(entry.Members))
		for _, member := range entry.Members {
			alpha2 := normalizeCode(member)
			if len(alpha2) != 2 {
				return nil, fmt.Errorf("countries: organization %s member %q is not a 2-letter code", normalized, member)
			}
			if _, ok := seen[alpha2]; ok {
				continue
			}
			seen[alpha2] = struct{}{}
			members = append(members, alpha2)
		}
		sort.Strings(members)

		records = append(records, Organization{
			Code:    normalized,
			Name:    entry.Name,
			Members: members,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

type rawLocale struct {
	Name      string `yaml:"name"`
	Language  string `yaml:"language"`
	Territory string `yaml:"territory"`
}

func decodeLocales(data []byte) ([]Locale, error) {
	var raw map[string]rawLocale
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("countries: decode locales: %w", err)
	}

	records := make([]Locale, 0, len(raw))
	for code, entry := range raw {
		normalized := normalizeLocale(code)
		if normalized == "" {
			return nil, errors.New("countries: empty locale code")
		}
		if entry.Language == "" {
			return nil, fmt.Errorf("countries: locale %s has no language", normalized)
		}

		records = append(records, Locale{
			Code:      normalized,
			Name:      entry.Name,
			Language:  strings.ToLower(strings.TrimSpace(entry.Language)),
			Territory: normalizeCode(entry.Territory),
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

// normalizeCode uppercases and trims a catalog key. All code-based
// lookups pass through this before matching.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
