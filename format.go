package countries

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type formatConfig struct {
	native      bool
	symbolAfter bool
}

// FormatOption adjusts symbol selection and placement in Format.
type FormatOption func(*formatConfig)

// Native selects the home-territory symbol over the international one.
func Native() FormatOption {
	return func(c *formatConfig) { c.native = true }
}

// SymbolAfter places the symbol behind the number instead of in front.
func SymbolAfter() FormatOption {
	return func(c *formatConfig) { c.symbolAfter = true }
}

// Format renders an amount using the currency's symbol and conventional
// decimal precision: Format(1234.56, "USD") yields "$1,234.56" and
// Format(1234, "JPY") yields "¥1,234". Unknown codes and non-finite
// amounts return ok=false.
//
// Rounding is half away from zero. Negative amounts keep the sign on
// the number, after a leading symbol: Format(-1234.5, "USD") yields
// "$-1,234.50".
func (c *CurrencyCatalog) Format(amount float64, code string, opts ...FormatOption) (string, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", false
	}

	currency, ok := c.Get(code)
	if !ok {
		return "", false
	}

	cfg := formatConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	numeric := groupThousands(decimal.NewFromFloat(amount).StringFixed(int32(currency.DecimalDigits)))

	symbol := currency.Symbol
	if cfg.native && currency.SymbolNative != "" {
		symbol = currency.SymbolNative
	}

	if cfg.symbolAfter {
		return numeric + symbol, true
	}
	return symbol + numeric, true
}

// groupThousands inserts "," every three digits of the integer part,
// keeping sign and fractional part intact.
func groupThousands(numeric string) string {
	sign := ""
	rest := numeric
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}

	intPart := rest
	fracPart := ""
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		intPart = rest[:idx]
		fracPart = rest[idx:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	b.Grow(len(numeric) + len(intPart)/3)
	b.WriteString(sign)

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	b.WriteString(fracPart)
	return b.String()
}
