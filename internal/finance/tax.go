package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/aduana/internal/model"
)

// DeclaredTaxes are the amounts printed on the declaration. Nil values are not compared.
type DeclaredTaxes struct {
	DAI   *float64 `json:"dai,omitempty"`
	ISC   *float64 `json:"isc,omitempty"`
	VAT   *float64 `json:"vat,omitempty"`
	Total *float64 `json:"total,omitempty"`
}

// TaxInput is the base of a tax cascade computation.
type TaxInput struct {
	Declared   DeclaredTaxes
	Region     model.Region
	CIF        float64
	DAIPercent float64
	ISCPercent float64
}

// TaxBreakdown is the computed cascade, rounded to cents.
type TaxBreakdown struct {
	CIF       float64 `json:"cif"`
	DAI       float64 `json:"dai"`
	ISC       float64 `json:"isc"`
	VAT       float64 `json:"vat"`
	SystemFee float64 `json:"system_fee"`
	Total     float64 `json:"total"`
	VATRate   float64 `json:"vat_rate"`
}

// TaxResult is the outcome of ValidateTaxCascade.
type TaxResult struct {
	Findings  []model.Finding `json:"findings"`
	Breakdown TaxBreakdown    `json:"breakdown"`
}

// ValidateTaxCascade computes DAI on CIF, ISC on CIF+DAI, VAT on CIF+DAI+ISC and
// the total including the region's system fee, then compares declared amounts.
func (v *Validator) ValidateTaxCascade(in TaxInput) (TaxResult, error) {
	cfg, err := v.regions.Get(in.Region)
	if err != nil {
		return TaxResult{}, err
	}

	hundred := decimal.NewFromInt(100)
	cif := decimal.NewFromFloat(in.CIF)
	dai := cif.Mul(decimal.NewFromFloat(in.DAIPercent)).Div(hundred)
	isc := cif.Add(dai).Mul(decimal.NewFromFloat(in.ISCPercent)).Div(hundred)
	vat := cif.Add(dai).Add(isc).Mul(decimal.NewFromFloat(cfg.VATRate))
	fee := decimal.NewFromFloat(cfg.SystemFee)
	total := cif.Add(dai).Add(isc).Add(vat).Add(fee)

	result := TaxResult{
		Breakdown: TaxBreakdown{
			CIF:       money(cif),
			DAI:       money(dai),
			ISC:       money(isc),
			VAT:       money(vat),
			SystemFee: money(fee),
			Total:     money(total),
			VATRate:   cfg.VATRate,
		},
	}

	var findings []model.Finding
	if cif.IsNegative() {
		findings = append(findings, v.negative(cfg.Region, "cif", cif, cfg.Citations.CustomsCode))
	}
	if in.DAIPercent < 0 || in.ISCPercent < 0 {
		f := v.finding(RuleNegativeAmount, model.SeverityBlocking, cfg.Region,
			fmt.Sprintf("Tasa negativa (DAI %.2f%%, ISC %.2f%%): el documento no puede continuar",
				in.DAIPercent, in.ISCPercent))
		f.Field = "rates"
		f.LegalBasis = cfg.Citations.CustomsCode
		findings = append(findings, f)
	}

	checks := []struct {
		declared *float64
		computed decimal.Decimal
		code     string
		field    string
		label    string
		basis    string
	}{
		{in.Declared.DAI, dai, RuleDAIMismatch, "dai", "DAI", cfg.Citations.CustomsCode},
		{in.Declared.ISC, isc, RuleISCMismatch, "isc", "ISC", cfg.Citations.CustomsCode},
		{in.Declared.VAT, vat, RuleVATMismatch, "vat", cfg.VATName, cfg.Citations.VATLaw},
	}
	for _, c := range checks {
		if c.declared == nil {
			continue
		}
		declared := decimal.NewFromFloat(*c.declared)
		if !v.exceeds(c.computed, declared) {
			continue
		}
		f := v.finding(c.code, model.SeverityCritical, cfg.Region,
			fmt.Sprintf("%s declarado (USD %s) difiere del calculado (USD %s)",
				c.label, declared.StringFixed(2), c.computed.StringFixed(2)))
		f.Field = c.field
		f.Expected = ptr(money(c.computed))
		f.Actual = ptr(*c.declared)
		f.LegalBasis = c.basis
		f.AutoCorrection = &model.AutoCorrection{Field: c.field, Value: money(c.computed)}
		findings = append(findings, f)
	}

	if in.Declared.Total != nil {
		declared := decimal.NewFromFloat(*in.Declared.Total)
		if v.exceeds(total, declared) {
			f := v.finding(RuleTotalMismatch, model.SeverityWarning, cfg.Region,
				fmt.Sprintf("Total declarado (USD %s) difiere del total calculado (USD %s)",
					declared.StringFixed(2), total.StringFixed(2)))
			f.Field = "total"
			f.Detail = fmt.Sprintf("Incluye tasa de sistema de USD %s", fee.StringFixed(2))
			f.Expected = ptr(money(total))
			f.Actual = ptr(*in.Declared.Total)
			f.LegalBasis = cfg.Citations.CustomsCode
			findings = append(findings, f)
		}
	}

	result.Findings = findings

	v.logger.Debug("Validated tax cascade",
		"region", cfg.Region,
		"total", result.Breakdown.Total,
		"findings", len(findings))

	return result, nil
}
