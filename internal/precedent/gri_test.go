package precedent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/aduana/internal/model"
)

func TestAnalyzeGRI(t *testing.T) {
	tests := []struct {
		name       string
		desc       string
		ctx        GRIContext
		want       model.GRIRule
		confidence float64
	}{
		{"container wins over everything", "Reloj en estuche, mezcla de materiales, sin ensamblar", GRIContext{}, model.GRI5A, 0.80},
		{"incomplete", "Bicicleta sin ensamblar", GRIContext{}, model.GRI2A, 0.80},
		{"incomplete beats mixture", "mezcla para hornear incompleta CKD", GRIContext{}, model.GRI2A, 0.80},
		{"mixture", "Mezcla de café y azúcar", GRIContext{}, model.GRI2B, 0.75},
		{"mixture from context", "polvo blanco", GRIContext{Mixture: true}, model.GRI2B, 0.75},
		{"competing headings", "juego de herramientas", GRIContext{CandidateHeadings: []string{"8205.59", "8467.21"}}, model.GRI3A, 0.70},
		{"essential character", "set con componente principal de acero", GRIContext{CandidateHeadings: []string{"8205.59", "7323.93"}}, model.GRI3B, 0.75},
		{"same heading twice is not a conflict", "juego de herramientas", GRIContext{CandidateHeadings: []string{"8205.59.00", "8205.51.00"}}, model.GRI1, 0.85},
		{"default", "Camiseta de algodón", GRIContext{}, model.GRI1, 0.85},
		{"showcase is not a case", "vitrina showcase", GRIContext{}, model.GRI1, 0.85},
		{"container from context", "reloj", GRIContext{HasContainer: true}, model.GRI5A, 0.80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeGRI(tt.desc, "9102.11.00", tt.ctx)
			assert.Equal(t, tt.want, got.Rule)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
			assert.Contains(t, got.Justification, "9102.11.00")
		})
	}
}

func TestAnalyzeGRI_NoCode(t *testing.T) {
	got := AnalyzeGRI("camiseta", "", GRIContext{})
	assert.Contains(t, got.Justification, "sin partida declarada")
}
