package model

// ValueBracket is the customs value bracket assigned to a shipment line.
type ValueBracket string

// Value brackets.
const (
	BracketA ValueBracket = "A" // documents
	BracketB ValueBracket = "B" // at or below de-minimis
	BracketC ValueBracket = "C" // below mandatory broker threshold
	BracketD ValueBracket = "D" // broker required
)

// CategoryGeneral is assigned when no product pattern matches.
const CategoryGeneral = "general"

// ClassificationResult is the product classification of one description.
type ClassificationResult struct {
	ProductCategory     string       `json:"product_category"`
	Subcategory         string       `json:"subcategory"`
	CustomsValueBracket ValueBracket `json:"customs_value_bracket"`
	Authorities         []string     `json:"authorities"`
	Restrictions        []string     `json:"restrictions"`
	Advisories          []string     `json:"advisories"`
	MatchedKeywords     []string     `json:"matched_keywords"`
	Confidence          int          `json:"confidence"`
	RequiresPermit      bool         `json:"requires_permit"`
	IsDocument          bool         `json:"is_document"`
	IsProhibited        bool         `json:"is_prohibited"`
}
