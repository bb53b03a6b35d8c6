package extract

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a captured monetary or numeric string into a decimal.
// Currency symbols and thousands separators are dropped. When both ',' and '.'
// appear, the last one is the decimal separator; a lone ',' followed by one or
// two digits is also treated as decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".,")
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("no digits in %q", raw)
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(cleaned, ",") == 1 && len(cleaned)-lastComma-1 <= 2 {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case strings.Count(cleaned, ".") > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return d, nil
}
