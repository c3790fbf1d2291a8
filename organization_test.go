package countries

import (
	"errors"
	"sort"
	"testing"
)

func TestOrganizationCatalogGet(t *testing.T) {
	catalog := newTestRegistry(t).Organizations

	eu, ok := catalog.Get("eu")
	if !ok || eu.Name != "European Union" {
		t.Fatalf("Get(eu) = %+v, %v", eu, ok)
	}
	if len(eu.Members) != 27 {
		t.Fatalf("EU has %d members, want 27", len(eu.Members))
	}
	if !sort.StringsAreSorted(eu.Members) {
		t.Fatalf("EU members not sorted: %v", eu.Members)
	}

	if _, err := catalog.MustGet("NAFTA"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MustGet(NAFTA): %v", err)
	}
}

func TestOrganizationCatalogIsMember(t *testing.T) {
	catalog := newTestRegistry(t).Organizations

	tests := []struct {
		org    string
		alpha2 string
		want   bool
	}{
		{org: "EU", alpha2: "DE", want: true},
		{org: "eu", alpha2: "de", want: true},
		{org: "EU", alpha2: "GB", want: false},
		{org: "EU", alpha2: "CH", want: false},
		{org: "EUROZONE", alpha2: "DE", want: true},
		{org: "EUROZONE", alpha2: "SE", want: false},
		{org: "G7", alpha2: "JP", want: true},
		{org: "EFTA", alpha2: "NO", want: true},
		{org: "ZZ", alpha2: "DE", want: false},
	}

	for _, tc := range tests {
		if got := catalog.IsMember(tc.org, tc.alpha2); got != tc.want {
			t.Errorf("IsMember(%q, %q) = %v, want %v", tc.org, tc.alpha2, got, tc.want)
		}
	}
}

func TestOrganizationCatalogMemberCountries(t *testing.T) {
	catalog := newTestRegistry(t).Organizations

	members := catalog.MemberCountries("EU")
	if len(members) != 27 {
		t.Fatalf("MemberCountries(EU) resolved %d countries, want 27", len(members))
	}

	names := make([]string, 0, len(members))
	for _, country := range members {
		names = append(names, country.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("MemberCountries(EU) not sorted by name: %v", names)
	}
	if names[0] != "Austria" {
		t.Fatalf("MemberCountries(EU)[0] = %q, want Austria", names[0])
	}

	if got := catalog.MemberCountries("ZZ"); got != nil {
		t.Fatalf("MemberCountries(ZZ) = %v, want nil", got)
	}
}

func TestOrganizationCatalogEnumeration(t *testing.T) {
	catalog := newTestRegistry(t).Organizations

	all := catalog.All()
	if catalog.Count() != len(all) {
		t.Fatalf("Count() = %d, len(All()) = %d", catalog.Count(), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Fatalf("All() not sorted: %s before %s", all[i-1].Code, all[i].Code)
		}
	}
}

// Every eurozone member must use EUR in the country dataset; the two
// datasets are maintained together.
func TestEurozoneCurrencyConsistency(t *testing.T) {
	registry := newTestRegistry(t)

	for _, country := range registry.Organizations.MemberCountries("EUROZONE") {
		if country.CurrencyCode != "EUR" {
			t.Errorf("%s is in the euro area but uses %s", country.Alpha2, country.CurrencyCode)
		}
	}
}
