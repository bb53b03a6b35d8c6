// Package model defines the core domain models used throughout the compliance engine.
package model

// Region identifies a customs jurisdiction.
type Region string

// Supported jurisdictions.
const (
	RegionPanama     Region = "PA"
	RegionCostaRica  Region = "CR"
	RegionGuatemala  Region = "GT"
	RegionUnassigned Region = ""
)

// Valid reports whether r is one of the supported jurisdictions.
func (r Region) Valid() bool {
	switch r {
	case RegionPanama, RegionCostaRica, RegionGuatemala:
		return true
	}
	return false
}

// FiscalIDFormat describes one accepted taxpayer identifier layout.
type FiscalIDFormat struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Example string `json:"example" yaml:"example"`
}

// LegalCitations holds the statutes quoted in findings for a region.
type LegalCitations struct {
	CustomsCode    string `json:"customs_code" yaml:"customs_code"`
	VATLaw         string `json:"vat_law" yaml:"vat_law"`
	Valuation      string `json:"valuation" yaml:"valuation"`
	FiscalID       string `json:"fiscal_id" yaml:"fiscal_id"`
	Restrictions   string `json:"restrictions" yaml:"restrictions"`
	Precedents     string `json:"precedents" yaml:"precedents"`
	Undervaluation string `json:"undervaluation" yaml:"undervaluation"`
}

// RegionalTaxConfig is the immutable tax and identity profile of a jurisdiction.
type RegionalTaxConfig struct {
	Region           Region           `json:"region"`
	Country          string           `json:"country"`
	Currency         string           `json:"currency"`
	VATName          string           `json:"vat_name"`
	CustomsAuthority string           `json:"customs_authority"`
	Citations        LegalCitations   `json:"citations"`
	FiscalIDFormats  []FiscalIDFormat `json:"fiscal_id_formats"`
	VATRate          float64          `json:"vat_rate"`
	InsuranceRate    float64          `json:"insurance_rate"`
	SystemFee        float64          `json:"system_fee"`
}
