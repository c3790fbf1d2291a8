package countries

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestSubdivisionCatalogGet(t *testing.T) {
	catalog := newTestRegistry(t).Subdivisions

	tests := []struct {
		code     string
		name     string
		category string
		ok       bool
	}{
		{code: "US-CA", name: "California", category: "state", ok: true},
		{code: "us-ca", name: "California", category: "state", ok: true},
		{code: "DE-BY", name: "Bayern", category: "state", ok: true},
		{code: "GB-SCT", name: "Scotland", category: "country", ok: true},
		{code: "US-ZZ", ok: false},
	}

	for _, tc := range tests {
		subdivision, ok := catalog.Get(tc.code)
		if ok != tc.ok || subdivision.Name != tc.name || subdivision.Category != tc.category {
			t.Errorf("Get(%q) = %+v, %v", tc.code, subdivision, ok)
		}
	}

	if _, err := catalog.MustGet("US-ZZ"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MustGet(US-ZZ): %v", err)
	}
}

func TestSubdivisionCatalogForCountry(t *testing.T) {
	catalog := newTestRegistry(t).Subdivisions

	states := catalog.ForCountry("us")
	if len(states) == 0 {
		t.Fatal("ForCountry(us) returned nothing")
	}

	codes := make([]string, 0, len(states))
	for _, subdivision := range states {
		if !strings.HasPrefix(subdivision.Code, "US-") {
			t.Fatalf("ForCountry(us) returned %s", subdivision.Code)
		}
		if subdivision.CountryCode() != "US" {
			t.Fatalf("CountryCode() = %q for %s", subdivision.CountryCode(), subdivision.Code)
		}
		codes = append(codes, subdivision.Code)
	}
	if !sort.StringsAreSorted(codes) {
		t.Fatalf("ForCountry(us) not sorted: %v", codes)
	}

	if got := catalog.ForCountry("ZZ"); got != nil {
		t.Fatalf("ForCountry(ZZ) = %v, want nil", got)
	}
}

func TestSubdivisionCatalogCount(t *testing.T) {
	catalog := newTestRegistry(t).Subdivisions

	total := 0
	for _, alpha2 := range []string{"AU", "CA", "DE", "ES", "FR", "GB", "JP", "US"} {
		total += len(catalog.ForCountry(alpha2))
	}
	if catalog.Count() != total {
		t.Fatalf("Count() = %d, per-country sum = %d", catalog.Count(), total)
	}
}
