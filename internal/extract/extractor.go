// Package extract pulls header fields and line items out of document text and
// folds in corrections learned from earlier reviews.
package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

// ValidationThreshold is the overall confidence below which a human must review.
const ValidationThreshold = 80

// ManualConfidence is assigned to values typed in by a reviewer.
const ManualConfidence = 100

// fallbackPenalty lowers confidence for each pattern tried before the one that matched.
const fallbackPenalty = 5

// Extraction is the result of running the extractor over one document.
type Extraction struct {
	DocumentType       model.DocumentType      `json:"document_type"`
	Fields             []model.ExtractionField `json:"fields"`
	LineItems          []model.LineItem        `json:"line_items"`
	Confidence         float64                 `json:"confidence"`
	CorrectionsApplied int                     `json:"corrections_applied"`
	ValidationRequired bool                    `json:"validation_required"`
}

// Field returns the named field.
func (e *Extraction) Field(name string) (model.ExtractionField, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return model.ExtractionField{}, false
}

// Number returns the named field's numeric value.
func (e *Extraction) Number(name string) (float64, bool) {
	f, ok := e.Field(name)
	if !ok {
		return 0, false
	}
	return f.Number()
}

// Text returns the named field's string value.
func (e *Extraction) Text(name string) (string, bool) {
	f, ok := e.Field(name)
	if !ok {
		return "", false
	}
	return f.Text()
}

// SetManual records a reviewer-supplied value for a field.
func (e *Extraction) SetManual(name string, value any) {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			e.Fields[i].Value = value
			e.Fields[i].Provenance = model.ProvenanceManual
			e.Fields[i].Confidence = ManualConfidence
			e.recompute()
			return
		}
	}
	e.Fields = append(e.Fields, model.ExtractionField{
		Name:       name,
		Value:      value,
		Provenance: model.ProvenanceManual,
		Confidence: ManualConfidence,
	})
	e.recompute()
}

// FlagFindings marks the extraction for review when any financial finding is a
// warning or worse. Callers pass only the CIF, tax and fiscal ID findings.
func (e *Extraction) FlagFindings(findings []model.Finding) {
	for _, f := range findings {
		if f.Severity.AtLeast(model.SeverityWarning) {
			e.ValidationRequired = true
			return
		}
	}
}

func (e *Extraction) recompute() {
	e.Confidence = meanConfidence(e.Fields)
	if e.Confidence < ValidationThreshold {
		e.ValidationRequired = true
	}
}

type compiledRule struct {
	FieldRule
	patterns []*regexp.Regexp
}

// Extractor applies per-document-type field rules.
type Extractor struct {
	logger *slog.Logger
	memory *Memory
	rules  map[model.DocumentType][]compiledRule
}

// Option configures an Extractor.
type Option func(*extractorConfig)

type extractorConfig struct {
	logger *slog.Logger
	memory *Memory
	rules  map[model.DocumentType][]FieldRule
}

// WithRules replaces the default field table.
func WithRules(rules map[model.DocumentType][]FieldRule) Option {
	return func(c *extractorConfig) { c.rules = rules }
}

// WithMemory attaches a correction memory applied after every extraction.
func WithMemory(m *Memory) Option {
	return func(c *extractorConfig) { c.memory = m }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *extractorConfig) { c.logger = l }
}

// NewExtractor compiles the field table. Every pattern must have a capture group.
func NewExtractor(opts ...Option) (*Extractor, error) {
	cfg := extractorConfig{rules: DefaultFieldRules()}
	for _, opt := range opts {
		opt(&cfg)
	}

	compiled := make(map[model.DocumentType][]compiledRule, len(cfg.rules))
	for docType, rules := range cfg.rules {
		for _, rule := range rules {
			cr := compiledRule{FieldRule: rule}
			for _, p := range rule.Patterns {
				re, err := common.CompileRegex(p)
				if err != nil {
					return nil, fmt.Errorf("%w: field %s of %s: %w", common.ErrInvalidConfig, rule.Name, docType, err)
				}
				if re.NumSubexp() < 1 {
					return nil, fmt.Errorf("%w: field %s of %s has no capture group", common.ErrInvalidConfig, rule.Name, docType)
				}
				cr.patterns = append(cr.patterns, re)
			}
			compiled[docType] = append(compiled[docType], cr)
		}
	}

	return &Extractor{
		logger: common.LoggerOrDefault(cfg.logger),
		memory: cfg.memory,
		rules:  compiled,
	}, nil
}

// Memory returns the attached correction memory, if any.
func (x *Extractor) Memory() *Memory {
	return x.memory
}

// Extract runs the field rules for docType over text, extracts line items and
// applies learned corrections. Unknown document types use the UNKNOWN rules.
func (x *Extractor) Extract(text string, docType model.DocumentType) *Extraction {
	rules, ok := x.rules[docType]
	if !ok {
		rules = x.rules[model.DocUnknown]
	}

	result := &Extraction{DocumentType: docType}

	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if seen[rule.Name] {
			continue
		}
		field, matched := x.extractField(text, rule)
		if !matched {
			continue
		}
		seen[rule.Name] = true
		result.Fields = append(result.Fields, field)
	}

	result.LineItems = ExtractLineItems(text)

	if x.memory != nil {
		result.CorrectionsApplied = x.memory.Apply(result.Fields)
	}

	result.recompute()

	x.logger.Debug("Extracted document fields",
		"document_type", docType,
		"fields", len(result.Fields),
		"line_items", len(result.LineItems),
		"confidence", result.Confidence,
		"corrections", result.CorrectionsApplied)

	return result
}

func (x *Extractor) extractField(text string, rule compiledRule) (model.ExtractionField, bool) {
	for i, re := range rule.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		field := model.ExtractionField{
			Name:       rule.Name,
			Column:     rule.Column,
			Provenance: model.ProvenancePattern,
			Confidence: max(rule.Confidence-i*fallbackPenalty, 0),
		}

		raw := strings.TrimSpace(m[1])
		switch rule.Kind {
		case KindNumber:
			d, err := ParseAmount(raw)
			if err != nil {
				field.Confidence = 0
				break
			}
			field.Value = d.InexactFloat64()
		default:
			field.Value = raw
		}
		return field, true
	}
	return model.ExtractionField{}, false
}

func meanConfidence(fields []model.ExtractionField) float64 {
	if len(fields) == 0 {
		return 0
	}
	sum := 0
	for _, f := range fields {
		sum += f.Confidence
	}
	return float64(sum) / float64(len(fields))
}
