package countries

// Currency is one ISO 4217 entry. Records are immutable value objects;
// copy them freely.
type Currency struct {
	Code          string
	Name          string
	NamePlural    string
	Symbol        string
	SymbolNative  string
	DecimalDigits int
}

// Country is one ISO 3166-1 entry keyed by its alpha-2 code.
type Country struct {
	Alpha2       string
	Alpha3       string
	Numeric      string
	Name         string
	OfficialName string
	Region       string
	Subregion    string
	Capital      string
	CurrencyCode string
	CallingCode  string
	Languages    []string
	EmojiFlag    string
}

// Language is one ISO 639-1 entry.
type Language struct {
	Code       string
	Name       string
	NativeName string
}

// Subdivision is one ISO 3166-2 entry. Code carries the full
// "CC-XXX" form including the country prefix.
type Subdivision struct {
	Code     string
	Name     string
	Category string
}

// CountryCode returns the alpha-2 prefix of the subdivision code.
func (s Subdivision) CountryCode() string {
	for i := 0; i < len(s.Code); i++ {
		if s.Code[i] == '-' {
			return s.Code[:i]
		}
	}
	return s.Code
}

// Organization is an international organization or trade bloc with its
// member countries listed as alpha-2 codes.
type Organization struct {
	Code    string
	Name    string
	Members []string
}

// Locale pairs a normalized BCP 47 style tag with display metadata.
type Locale struct {
	Code      string
	Name      string
	Language  string
	Territory string
}
