package precedent

import (
	"fmt"
	"strings"

	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/pattern"
)

// Fixed confidence per interpretation rule.
var griConfidence = map[model.GRIRule]float64{
	model.GRI1:  0.85,
	model.GRI2A: 0.80,
	model.GRI2B: 0.75,
	model.GRI3A: 0.70,
	model.GRI3B: 0.75,
	model.GRI5A: 0.80,
}

// Signal terms, matched as whole normalized phrases.
var (
	containerTerms = []string{
		"estuche", "funda", "case", "carrying case", "container", "contenedor", "envase",
		"caja de presentacion", "gift box", "caja de regalo", "bolso para", "maletin",
	}
	incompleteTerms = []string{
		"incompleto", "incomplete", "sin ensamblar", "unassembled", "desarmado", "disassembled",
		"desensamblado", "ckd", "skd", "para ensamblar", "to be assembled", "kit de armado",
	}
	mixtureTerms = []string{
		"mezcla", "mixture", "blend", "mixed", "mezclado", "combinacion de", "compuesto de",
	}
	essentialTerms = []string{
		"caracter esencial", "essential character", "predominante", "predominant",
		"componente principal", "main component", "principalmente", "mainly",
	}
)

// GRIContext carries facts about the goods that the description may not state.
type GRIContext struct {
	CandidateHeadings []string
	HasContainer      bool
	Incomplete        bool
	Mixture           bool
}

// GRIAnalysis is the interpretation rule chosen to justify a classification.
type GRIAnalysis struct {
	Rule          model.GRIRule `json:"rule"`
	HSCode        string        `json:"hs_code"`
	Justification string        `json:"justification"`
	Confidence    float64       `json:"confidence"`
}

// AnalyzeGRI picks an interpretation rule by fixed priority: container,
// incomplete goods, mixtures, competing headings, then GRI 1.
func AnalyzeGRI(description, hsCode string, c GRIContext) GRIAnalysis {
	text := " " + pattern.Normalize(description) + " "

	var rule model.GRIRule
	switch {
	case c.HasContainer || hasTerm(text, containerTerms):
		rule = model.GRI5A
	case c.Incomplete || hasTerm(text, incompleteTerms):
		rule = model.GRI2A
	case c.Mixture || hasTerm(text, mixtureTerms):
		rule = model.GRI2B
	case len(distinctHeadings(c.CandidateHeadings)) > 1:
		if hasTerm(text, essentialTerms) {
			rule = model.GRI3B
		} else {
			rule = model.GRI3A
		}
	default:
		rule = model.GRI1
	}

	return analysisFor(rule, hsCode)
}

func analysisFor(rule model.GRIRule, hsCode string) GRIAnalysis {
	code := hsCode
	if code == "" {
		code = "(sin partida declarada)"
	}

	var justification string
	switch rule {
	case model.GRI5A:
		justification = fmt.Sprintf("Regla General 5(a): el estuche o envase se presenta con el artículo al que está destinado y se clasifica con él en la partida %s.", code)
	case model.GRI2A:
		justification = fmt.Sprintf("Regla General 2(a): el artículo incompleto o sin ensamblar presenta las características esenciales del artículo completo y se clasifica en la partida %s.", code)
	case model.GRI2B:
		justification = fmt.Sprintf("Regla General 2(b): la mezcla se clasifica según la materia que le confiere su carácter, en la partida %s.", code)
	case model.GRI3A:
		justification = fmt.Sprintf("Regla General 3(a): entre varias partidas posibles prevalece la descripción más específica, la partida %s.", code)
	case model.GRI3B:
		justification = fmt.Sprintf("Regla General 3(b): la mercancía se clasifica según el componente que le confiere el carácter esencial, en la partida %s.", code)
	default:
		rule = model.GRI1
		justification = fmt.Sprintf("Regla General 1: la clasificación se determina por los textos de las partidas y notas de sección y capítulo; corresponde la partida %s.", code)
	}

	return GRIAnalysis{
		Rule:          rule,
		HSCode:        hsCode,
		Justification: justification,
		Confidence:    griConfidence[rule],
	}
}

func hasTerm(padded string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(padded, " "+t+" ") {
			return true
		}
	}
	return false
}

func distinctHeadings(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	var out []string
	for _, c := range codes {
		h := heading(c)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// digits strips everything but digits from an HS code.
func digits(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// heading returns the four-digit heading of an HS code, or "" when too short.
func heading(code string) string {
	d := digits(code)
	if len(d) < 4 {
		return ""
	}
	return d[:4]
}
