package precedent

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/aduana/internal/model"
)

// VerdictKind is the outcome of checking a declared HS code against precedents.
type VerdictKind string

// Verdict kinds.
const (
	VerdictEndorsed    VerdictKind = "endorsed"
	VerdictNeedsReview VerdictKind = "needs_review"
	VerdictGRIOnly     VerdictKind = "gri_only"
)

// Verdict justifies or contests a declared classification.
type Verdict struct {
	Precedent *model.Precedent `json:"precedent,omitempty"`
	GRI       *GRIAnalysis     `json:"gri,omitempty"`
	Kind      VerdictKind      `json:"kind"`
	HSCode    string           `json:"hs_code"`
	Region    model.Region     `json:"region"`
	Rationale string           `json:"rationale"`
	Lookup    LookupResult     `json:"lookup"`
	Score     int              `json:"score"`
}

// ValidateByPrecedent endorses the declared code when a ruling with the same
// code scores at least EndorsementThreshold, recommends broker review when a
// ruling for another code scores at least ReviewThreshold, and otherwise falls
// back to an interpretation-rule rationale.
func (e *Engine) ValidateByPrecedent(ctx context.Context, declaredHS, description string, r model.Region) Verdict {
	lookup := e.SearchPrecedents(ctx, description, r, declaredHS)
	declared := digits(declaredHS)

	v := Verdict{HSCode: declaredHS, Region: r, Lookup: lookup}

	for _, m := range lookup.Matches {
		if declared == "" || digits(m.Precedent.HSCode) != declared || m.RelevanceScore < EndorsementThreshold {
			continue
		}
		p := m.Precedent
		v.Kind = VerdictEndorsed
		v.Precedent = &p
		v.Score = m.RelevanceScore
		v.Rationale = p.Rationale
		if p.GRIRule != "" {
			gri := analysisFor(p.GRIRule, declaredHS)
			v.GRI = &gri
		}
		return v
	}

	for _, m := range lookup.Matches {
		if digits(m.Precedent.HSCode) == declared || m.RelevanceScore < ReviewThreshold {
			continue
		}
		p := m.Precedent
		v.Kind = VerdictNeedsReview
		v.Precedent = &p
		v.Score = m.RelevanceScore
		v.Rationale = fmt.Sprintf("La resolución %s clasifica mercancía similar en la partida %s; se recomienda revisión por un agente corredor de aduanas.",
			p.RulingID, p.HSCode)
		return v
	}

	var candidates []string
	for _, m := range lookup.Matches {
		candidates = append(candidates, m.Precedent.HSCode)
	}
	if declared != "" {
		candidates = append(candidates, declaredHS)
	}
	gri := AnalyzeGRI(description, declaredHS, GRIContext{CandidateHeadings: candidates})
	v.Kind = VerdictGRIOnly
	v.GRI = &gri
	v.Rationale = gri.Justification
	return v
}

// FormatAdvisory renders a verdict as a short Spanish advisory for chat or
// notification channels.
func FormatAdvisory(v Verdict) string {
	var b strings.Builder

	switch v.Kind {
	case VerdictEndorsed:
		fmt.Fprintf(&b, "Clasificación respaldada: la partida %s coincide con la resolución %s de %s (vigente desde %s).",
			v.HSCode, v.Precedent.RulingID, v.Precedent.Authority, v.Precedent.EffectiveDate.Format("02/01/2006"))
		if v.Rationale != "" {
			b.WriteString(" " + v.Rationale)
		}
		if v.GRI != nil {
			fmt.Fprintf(&b, " Fundamento: %s", v.GRI.Justification)
		}
	case VerdictNeedsReview:
		fmt.Fprintf(&b, "Revisión recomendada: la partida declarada %s difiere de la resolución %s (%s), que usa la partida %s. %s",
			v.HSCode, v.Precedent.RulingID, v.Precedent.Authority, v.Precedent.HSCode, v.Rationale)
	default:
		b.WriteString("Sin precedente aplicable.")
		if v.GRI != nil {
			fmt.Fprintf(&b, " %s (confianza %.0f%%): %s", v.GRI.Rule, v.GRI.Confidence*100, v.GRI.Justification)
		}
	}

	if v.Lookup.Unavailable() {
		b.WriteString(" (Consulta remota de precedentes no disponible; se usó la caché local.)")
	}

	return b.String()
}
