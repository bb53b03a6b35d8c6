// Package pattern classifies free-text product descriptions against an ordered
// keyword pattern table and derives permits, authorities and value brackets.
package pattern

import "github.com/Veraticus/aduana/internal/model"

// Classifier assigns a product classification to a description and declared value.
type Classifier interface {
	Classify(description string, value float64) model.ClassificationResult
}

// ProductPattern is one row of the product table.
type ProductPattern struct {
	Category       string
	Subcategory    string
	Keywords       []string
	Authorities    []string // Presentation order is preserved in advisories
	Restrictions   []string
	RequiresPermit bool
}

func (p ProductPattern) clone() ProductPattern {
	p.Keywords = append([]string(nil), p.Keywords...)
	p.Authorities = append([]string(nil), p.Authorities...)
	p.Restrictions = append([]string(nil), p.Restrictions...)
	return p
}
