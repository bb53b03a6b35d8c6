package model

import "time"

// GRIRule names one of the General Rules of Interpretation of the Harmonized System.
type GRIRule string

// Interpretation rules used to justify a classification.
const (
	GRI1  GRIRule = "GRI 1"
	GRI2A GRIRule = "GRI 2(a)"
	GRI2B GRIRule = "GRI 2(b)"
	GRI3A GRIRule = "GRI 3(a)"
	GRI3B GRIRule = "GRI 3(b)"
	GRI5A GRIRule = "GRI 5(a)"
)

// Precedent is a binding prior customs ruling (resolución anticipada).
type Precedent struct {
	EffectiveDate  time.Time  `json:"effective_date" yaml:"effective_date"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`
	ID             string     `json:"id" yaml:"id"`
	Region         Region     `json:"region" yaml:"region"`
	RulingID       string     `json:"ruling_id" yaml:"ruling_id"`
	Authority      string     `json:"authority" yaml:"authority"`
	HSCode         string     `json:"hs_code" yaml:"hs_code"`
	Rationale      string     `json:"rationale" yaml:"rationale"`
	GRIRule        GRIRule    `json:"gri_rule,omitempty" yaml:"gri_rule,omitempty"`
	Keywords       []string   `json:"keywords" yaml:"keywords"`
	Active         bool       `json:"active" yaml:"active"`
}

// InForce reports whether the ruling applies at the given instant.
func (p Precedent) InForce(at time.Time) bool {
	if !p.Active {
		return false
	}
	if !p.EffectiveDate.IsZero() && at.Before(p.EffectiveDate) {
		return false
	}
	if p.ExpirationDate != nil && at.After(*p.ExpirationDate) {
		return false
	}
	return true
}
