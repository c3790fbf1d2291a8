package countries

import (
	"errors"
	"sort"
	"testing"
)

func TestLanguageCatalogGet(t *testing.T) {
	catalog := newTestRegistry(t).Languages

	tests := []struct {
		code   string
		name   string
		native string
		ok     bool
	}{
		{code: "de", name: "German", native: "Deutsch", ok: true},
		{code: "DE", name: "German", native: "Deutsch", ok: true},
		{code: "ja", name: "Japanese", native: "日本語", ok: true},
		{code: "xx", ok: false},
	}

	for _, tc := range tests {
		language, ok := catalog.Get(tc.code)
		if ok != tc.ok || language.Name != tc.name || language.NativeName != tc.native {
			t.Errorf("Get(%q) = %+v, %v", tc.code, language, ok)
		}
	}

	if _, err := catalog.MustGet("xx"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MustGet(xx): %v", err)
	}
}

func TestLanguageCatalogEnumeration(t *testing.T) {
	catalog := newTestRegistry(t).Languages

	codes := catalog.Codes()
	if catalog.Count() != len(codes) || catalog.Count() != len(catalog.All()) {
		t.Fatalf("Count() = %d, len(Codes()) = %d, len(All()) = %d", catalog.Count(), len(codes), len(catalog.All()))
	}
	if !sort.StringsAreSorted(codes) {
		t.Fatalf("Codes() not sorted: %v", codes)
	}
	if !catalog.IsValid("en") || catalog.IsValid("zz") {
		t.Fatal("IsValid misbehaves")
	}
}

func TestLanguageCatalogCountriesFor(t *testing.T) {
	catalog := newTestRegistry(t).Languages

	speakers := catalog.CountriesFor("de")
	if len(speakers) == 0 {
		t.Fatal("CountriesFor(de) returned nothing")
	}

	names := make([]string, 0, len(speakers))
	foundGermany, foundAustria := false, false
	for _, country := range speakers {
		names = append(names, country.Name)
		switch country.Alpha2 {
		case "DE":
			foundGermany = true
		case "AT":
			foundAustria = true
		}
	}
	if !foundGermany || !foundAustria {
		t.Fatalf("CountriesFor(de) = %v, want Germany and Austria present", names)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("CountriesFor(de) not sorted by name: %v", names)
	}

	if got := catalog.CountriesFor("xx"); len(got) != 0 {
		t.Fatalf("CountriesFor(xx) = %v, want empty", got)
	}
}
