package model

import "time"

// Severity ranks the impact of a finding.
type Severity string

// Severity levels, lowest to highest.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeverityBlocking Severity = "blocking"
)

// Rank orders severities so they can be compared.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityCritical:
		return 3
	case SeverityBlocking:
		return 4
	}
	return 0
}

// AtLeast reports whether s is as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// AutoCorrection is a value the engine proposes in place of a declared one.
type AutoCorrection struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
	Note  string  `json:"note,omitempty"`
}

// Finding is a single rule outcome. Findings are never mutated once emitted.
type Finding struct {
	Expected       *float64        `json:"expected,omitempty"`
	Actual         *float64        `json:"actual,omitempty"`
	AutoCorrection *AutoCorrection `json:"auto_correction,omitempty"`
	ID             string          `json:"id"`
	RuleCode       string          `json:"rule_code"`
	Severity       Severity        `json:"severity"`
	Message        string          `json:"message"`
	Detail         string          `json:"detail,omitempty"`
	Field          string          `json:"field,omitempty"`
	LegalBasis     string          `json:"legal_basis,omitempty"`
	Region         Region          `json:"region"`
}

// ValidationResult aggregates every finding for one document.
type ValidationResult struct {
	Timestamp       time.Time `json:"timestamp"`
	PreviousHash    *string   `json:"previous_hash"`
	DocumentID      string    `json:"document_id"`
	Hash            string    `json:"hash"`
	Region          Region    `json:"region"`
	Findings        []Finding `json:"findings"`
	Score           int       `json:"score"`
	CorrectionsMade int       `json:"corrections_made"`
	BlockingIssues  int       `json:"blocking_issues"`
	IsValid         bool      `json:"is_valid"`
}

// CountSeverity returns how many findings carry the given severity.
func CountSeverity(findings []Finding, sev Severity) int {
	n := 0
	for _, f := range findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}
