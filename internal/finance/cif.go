package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/aduana/internal/model"
)

// CIFInput is the declared valuation of a shipment. A nil or zero Insurance
// is replaced by the region's theoretical insurance. When CIFUndeclared is
// set the CIF is only computed, never compared.
type CIFInput struct {
	Insurance     *float64
	Region        model.Region
	FOB           float64
	Freight       float64
	DeclaredCIF   float64
	CIFUndeclared bool
}

// CIFResult carries the computed valuation and the findings it produced.
type CIFResult struct {
	Findings         []model.Finding `json:"findings"`
	Insurance        float64         `json:"insurance"`
	CalculatedCIF    float64         `json:"calculated_cif"`
	InsuranceDerived bool            `json:"insurance_derived"`
}

// ValidateCIF checks CIF = FOB + freight + insurance. It only returns an
// error when the region is unknown; every rule outcome is a finding.
func (v *Validator) ValidateCIF(in CIFInput) (CIFResult, error) {
	cfg, err := v.regions.Get(in.Region)
	if err != nil {
		return CIFResult{}, err
	}

	fob := decimal.NewFromFloat(in.FOB)
	freight := decimal.NewFromFloat(in.Freight)
	declared := decimal.NewFromFloat(in.DeclaredCIF)

	var result CIFResult
	var findings []model.Finding

	insurance := decimal.Zero
	if in.Insurance != nil {
		insurance = decimal.NewFromFloat(*in.Insurance)
	}
	if insurance.IsZero() {
		insurance = fob.Mul(decimal.NewFromFloat(cfg.InsuranceRate))
		result.InsuranceDerived = true

		f := v.finding(RuleCIFInsuranceDerived, model.SeverityInfo, cfg.Region,
			fmt.Sprintf("Seguro no declarado: se aplica seguro teórico de %.1f%% sobre FOB (USD %s)",
				cfg.InsuranceRate*100, insurance.StringFixed(2)))
		f.Field = "insurance"
		f.Expected = ptr(money(insurance))
		f.LegalBasis = cfg.Citations.Valuation
		f.AutoCorrection = &model.AutoCorrection{
			Field: "insurance",
			Value: money(insurance),
			Note:  "seguro teórico",
		}
		findings = append(findings, f)
	}

	calculated := fob.Add(freight).Add(insurance)
	result.Insurance = money(insurance)
	result.CalculatedCIF = money(calculated)

	if !in.CIFUndeclared && v.exceeds(calculated, declared) {
		f := v.finding(RuleCIFMismatch, model.SeverityCritical, cfg.Region,
			fmt.Sprintf("El CIF declarado (USD %s) no coincide con FOB + flete + seguro (USD %s)",
				declared.StringFixed(2), calculated.StringFixed(2)))
		f.Field = "cif"
		f.Detail = fmt.Sprintf("FOB %s + flete %s + seguro %s",
			fob.StringFixed(2), freight.StringFixed(2), insurance.StringFixed(2))
		f.Expected = ptr(money(calculated))
		f.Actual = ptr(in.DeclaredCIF)
		f.LegalBasis = cfg.Citations.Valuation
		f.AutoCorrection = &model.AutoCorrection{Field: "cif", Value: money(calculated)}
		findings = append(findings, f)
	}

	components := []struct {
		field string
		value decimal.Decimal
	}{
		{"fob", fob},
		{"freight", freight},
		{"insurance", insurance},
		{"cif", declared},
	}
	for _, c := range components {
		if c.field == "cif" && in.CIFUndeclared {
			continue
		}
		if c.value.IsNegative() {
			findings = append(findings, v.negative(cfg.Region, c.field, c.value, cfg.Citations.CustomsCode))
		}
	}

	if fob.IsPositive() && fob.LessThan(decimal.NewFromInt(1)) {
		f := v.finding(RulePossibleUndervaluation, model.SeverityWarning, cfg.Region,
			fmt.Sprintf("Valor FOB de USD %s es inferior a USD 1.00: posible subvaluación", fob.StringFixed(2)))
		f.Field = "fob"
		f.Actual = ptr(in.FOB)
		f.LegalBasis = cfg.Citations.Undervaluation
		findings = append(findings, f)
	}

	result.Findings = findings

	v.logger.Debug("Validated CIF",
		"region", cfg.Region,
		"calculated", result.CalculatedCIF,
		"declared", in.DeclaredCIF,
		"findings", len(findings))

	return result, nil
}

func (v *Validator) negative(r model.Region, field string, value decimal.Decimal, basis string) model.Finding {
	f := v.finding(RuleNegativeAmount, model.SeverityBlocking, r,
		fmt.Sprintf("Monto negativo en %s (USD %s): el documento no puede continuar", field, value.StringFixed(2)))
	f.Field = field
	f.Actual = ptr(money(value))
	f.LegalBasis = basis
	return f
}
