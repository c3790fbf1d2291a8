package countries

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LocaleCatalog is an immutable snapshot of locale metadata keyed by
// normalized BCP 47 tag.
type LocaleCatalog struct {
	locales map[string]Locale
	codes   []string
}

// NewLocaleCatalog builds a catalog from decoded records.
func NewLocaleCatalog(records []Locale) (*LocaleCatalog, error) {
	locales := make(map[string]Locale, len(records))
	codes := make([]string, 0, len(records))

	for _, record := range records {
		record.Code = normalizeLocale(record.Code)
		if _, exists := locales[record.Code]; exists {
			return nil, duplicateCode("locale", record.Code)
		}
		locales[record.Code] = record
		codes = append(codes, record.Code)
	}

	sort.Strings(codes)

	return &LocaleCatalog{locales: locales, codes: codes}, nil
}

// Get returns the locale for a tag. Input is normalized first, so
// Get("en_US") and Get("en-US") are equivalent.
func (c *LocaleCatalog) Get(code string) (Locale, bool) {
	if c == nil {
		return Locale{}, false
	}
	locale, ok := c.locales[normalizeLocale(code)]
	return locale, ok
}

// MustGet is the fail-fast variant of Get.
func (c *LocaleCatalog) MustGet(code string) (Locale, error) {
	locale, ok := c.Get(code)
	if !ok {
		return Locale{}, notFound("locale", code)
	}
	return locale, nil
}

// All returns every locale sorted ascending by code.
func (c *LocaleCatalog) All() []Locale {
	if c == nil {
		return nil
	}
	out := make([]Locale, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.locales[code])
	}
	return out
}

// Codes returns all locale codes sorted ascending.
func (c *LocaleCatalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Count returns the number of locales in the catalog.
func (c *LocaleCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// Has reports whether the tag exists in the catalog.
func (c *LocaleCatalog) Has(code string) bool {
	_, ok := c.Get(code)
	return ok
}

// ForLanguage returns every locale for an ISO 639-1 language code,
// sorted ascending by locale code.
func (c *LocaleCatalog) ForLanguage(langCode string) []Locale {
	if c == nil {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(langCode))
	var out []Locale
	for _, code := range c.codes {
		locale := c.locales[code]
		if locale.Language == normalized {
			out = append(out, locale)
		}
	}
	return out
}

// Parents returns the parent chain for a tag from closest parent to
// root, e.g. "de-CH" yields ["de"]. Tags unknown to the catalog still
// derive a chain.
func (c *LocaleCatalog) Parents(code string) []string {
	normalized := normalizeLocale(code)
	if normalized == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(normalized); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, exists := seen[value]; exists {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
		return chain
	}

	// Unparseable tag: strip segments from the right.
	for current := normalized; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale canonicalizes a locale identifier: underscores become
// hyphens and parseable tags take their BCP 47 casing, so "en_us"
// normalizes to "en-US".
func normalizeLocale(locale string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if trimmed == "" {
		return ""
	}
	if tag, err := language.Parse(trimmed); err == nil {
		if value := tag.String(); value != "" && value != "und" {
			return value
		}
	}
	return trimmed
}
