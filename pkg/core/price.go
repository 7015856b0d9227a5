package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MaxAmount is the largest absolute amount in minor currency units accepted anywhere in an invoice.
const MaxAmount int64 = 9_999_999_999_99

// LabeledPricePart is one line of a price breakdown. Amount is in the currency's minor units.
type LabeledPricePart struct {
	Label  string
	Amount int64
}

func (p LabeledPricePart) String() string {
	return fmt.Sprintf("[%s: %d]", p.Label, p.Amount)
}

func pricePartsString(parts []LabeledPricePart) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range parts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

func sumPriceParts(parts []LabeledPricePart) int64 {
	var total int64
	for _, p := range parts {
		total += p.Amount
	}
	return total
}

// ParseCurrency checks that code is a known ISO 4217 currency written in upper case.
func ParseCurrency(code string) (currency.Unit, error) {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return currency.Unit{}, fmt.Errorf("malformed currency code %q", code)
	}
	return currency.ParseISO(code)
}

// FormatAmount renders an amount in minor units using the currency's standard scale,
// e.g. 1000 USD is "10.00 USD". Unknown currencies are rendered with scale 2.
func FormatAmount(amount int64, code string) string {
	scale := 2
	if unit, err := ParseCurrency(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}
	return decimal.New(amount, int32(-scale)).StringFixed(int32(scale)) + " " + code
}
