package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/aduana/internal/model"
)

const col = `(?:[ \t]{2,}|[ \t]*[|;][ \t]*|\t)`

// lineItemPattern matches "description · qty · unit price · total" rows
// separated by runs of spaces, tabs, pipes or semicolons.
var lineItemPattern = regexp.MustCompile(`^[ \t]*(?:\d{1,3}[.)][ \t]+)?(\S[^|;\n]*?\S)` +
	col + `(\d+(?:[.,]\d+)?)` +
	col + `(?:USD|US\$|\$)?[ \t]*(\d[\d,]*(?:\.\d+)?)` +
	col + `(?:USD|US\$|\$)?[ \t]*(\d[\d,]*(?:\.\d+)?)[ \t]*$`)

// spacedLineItemPattern anchors on the three trailing numeric columns of a
// row separated by single spaces.
var spacedLineItemPattern = regexp.MustCompile(`^[ \t]*(?:\d{1,3}[.)][ \t]+)?(\S.*?\S)` +
	`[ \t]+(\d+(?:[.,]\d+)?)` +
	`[ \t]+(?:(?:USD|US\$|\$)[ \t]*)?(\d[\d,]*(?:\.\d+)?)` +
	`[ \t]+(?:(?:USD|US\$|\$)[ \t]*)?(\d[\d,]*(?:\.\d+)?)[ \t]*$`)

var lineItemTolerance = decimal.NewFromFloat(0.02)

// ExtractLineItems returns every merchandise row found in text, in order.
// Rows whose columns are separated by single spaces are only accepted when
// quantity times unit price matches the total, since the column boundaries
// are otherwise ambiguous.
func ExtractLineItems(text string) []model.LineItem {
	var items []model.LineItem

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := lineItemPattern.FindStringSubmatch(line); m != nil {
			if item, ok := parseLineItem(m); ok {
				items = append(items, item)
			}
			continue
		}
		if m := spacedLineItemPattern.FindStringSubmatch(line); m != nil {
			if item, ok := parseLineItem(m); ok && item.Confidence == model.LineItemConsistentConfidence {
				items = append(items, item)
			}
		}
	}

	if items == nil {
		return []model.LineItem{}
	}
	return items
}

func parseLineItem(m []string) (model.LineItem, bool) {
	desc := strings.TrimSpace(m[1])
	if !strings.ContainsFunc(desc, unicode.IsLetter) {
		return model.LineItem{}, false
	}
	qty, err := ParseAmount(m[2])
	if err != nil {
		return model.LineItem{}, false
	}
	unit, err := ParseAmount(m[3])
	if err != nil {
		return model.LineItem{}, false
	}
	total, err := ParseAmount(m[4])
	if err != nil {
		return model.LineItem{}, false
	}

	confidence := model.LineItemInconsistentConfidence
	if qty.Mul(unit).Sub(total).Abs().LessThan(lineItemTolerance) {
		confidence = model.LineItemConsistentConfidence
	}

	return model.LineItem{
		Description: desc,
		Quantity:    qty.InexactFloat64(),
		UnitValue:   unit.InexactFloat64(),
		TotalValue:  total.InexactFloat64(),
		Confidence:  confidence,
	}, true
}
