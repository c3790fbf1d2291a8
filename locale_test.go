package countries

import (
	"errors"
	"sort"
	"testing"
)

func TestLocaleCatalogGet(t *testing.T) {
	catalog := newTestRegistry(t).Locales

	tests := []struct {
		code      string
		want      string
		territory string
		ok        bool
	}{
		{code: "en-US", want: "en-US", territory: "US", ok: true},
		{code: "en_US", want: "en-US", territory: "US", ok: true},
		{code: "en_us", want: "en-US", territory: "US", ok: true},
		{code: "de", want: "de", ok: true},
		{code: "xx-XX", ok: false},
	}

	for _, tc := range tests {
		locale, ok := catalog.Get(tc.code)
		if ok != tc.ok || locale.Code != tc.want || locale.Territory != tc.territory {
			t.Errorf("Get(%q) = %+v, %v", tc.code, locale, ok)
		}
	}

	if _, err := catalog.MustGet("xx-XX"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MustGet(xx-XX): %v", err)
	}
}

func TestLocaleCatalogEnumeration(t *testing.T) {
	catalog := newTestRegistry(t).Locales

	codes := catalog.Codes()
	if catalog.Count() != len(codes) || catalog.Count() != len(catalog.All()) {
		t.Fatalf("Count() = %d, len(Codes()) = %d, len(All()) = %d", catalog.Count(), len(codes), len(catalog.All()))
	}
	if !sort.StringsAreSorted(codes) {
		t.Fatalf("Codes() not sorted: %v", codes)
	}
	if !catalog.Has("en-GB") || catalog.Has("xx") {
		t.Fatal("Has misbehaves")
	}
}

func TestLocaleCatalogForLanguage(t *testing.T) {
	catalog := newTestRegistry(t).Locales

	locales := catalog.ForLanguage("de")
	if len(locales) == 0 {
		t.Fatal("ForLanguage(de) returned nothing")
	}
	for _, locale := range locales {
		if locale.Language != "de" {
			t.Fatalf("ForLanguage(de) returned %s with language %s", locale.Code, locale.Language)
		}
	}
	for i := 1; i < len(locales); i++ {
		if locales[i-1].Code >= locales[i].Code {
			t.Fatalf("ForLanguage(de) not sorted: %s before %s", locales[i-1].Code, locales[i].Code)
		}
	}
}

func TestLocaleCatalogParents(t *testing.T) {
	catalog := newTestRegistry(t).Locales

	parents := catalog.Parents("de-CH")
	if len(parents) == 0 || parents[0] != "de" {
		t.Fatalf("Parents(de-CH) = %v, want de first", parents)
	}

	parents = catalog.Parents("en-US")
	if len(parents) == 0 || parents[len(parents)-1] != "en" {
		t.Fatalf("Parents(en-US) = %v, want en last", parents)
	}

	if got := catalog.Parents("de"); len(got) != 0 {
		t.Fatalf("Parents(de) = %v, want empty", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en_US", want: "en-US"},
		{in: "en_us", want: "en-US"},
		{in: " de-DE ", want: "de-DE"},
		{in: "fr", want: "fr"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Errorf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
