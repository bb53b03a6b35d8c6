package finance

import (
	"fmt"
	"strings"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

// FiscalIDResult reports which format, if any, accepted an identifier.
type FiscalIDResult struct {
	Format   string          `json:"format,omitempty"`
	Findings []model.Finding `json:"findings"`
	Valid    bool            `json:"valid"`
}

// ValidateFiscalID tests id against the region's formats in declaration order.
func (v *Validator) ValidateFiscalID(id string, r model.Region) (FiscalIDResult, error) {
	cfg, err := v.regions.Get(r)
	if err != nil {
		return FiscalIDResult{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		f := v.finding(RuleFiscalIDEmpty, model.SeverityBlocking, cfg.Region,
			"Identificación fiscal vacía: el documento no puede continuar")
		f.Field = "fiscal_id"
		f.LegalBasis = cfg.Citations.FiscalID
		return FiscalIDResult{Findings: []model.Finding{f}}, nil
	}

	examples := make([]string, 0, len(cfg.FiscalIDFormats))
	for _, format := range cfg.FiscalIDFormats {
		ok, err := common.MatchRegex(format.Pattern, strings.ToUpper(id))
		if err != nil {
			return FiscalIDResult{}, fmt.Errorf("fiscal id format %s: %w", format.Name, err)
		}
		if ok {
			return FiscalIDResult{Valid: true, Format: format.Name}, nil
		}
		examples = append(examples, fmt.Sprintf("%s (%s)", format.Name, format.Example))
	}

	accepted := "Formatos aceptados: " + strings.Join(examples, "; ")
	f := v.finding(RuleFiscalIDInvalid, model.SeverityCritical, cfg.Region,
		fmt.Sprintf("Identificación fiscal %q no cumple ningún formato válido para %s. %s", id, cfg.Country, accepted))
	f.Field = "fiscal_id"
	f.Detail = accepted
	f.LegalBasis = cfg.Citations.FiscalID
	return FiscalIDResult{Findings: []model.Finding{f}}, nil
}
