// Package engine runs a trade document through detection, extraction,
// financial validation, product classification and precedent review, and
// seals one ValidationResult per document in the integrity ledger.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Veraticus/aduana/internal/classification"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/extract"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/ledger"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/pattern"
	"github.com/Veraticus/aduana/internal/precedent"
	"github.com/Veraticus/aduana/internal/region"
)

// Rule codes emitted by the engine itself.
const (
	RuleLowExtractionConfidence = "LOW_EXTRACTION_CONFIDENCE"
	RuleDocumentNotApplicable   = "DOCUMENT_NOT_APPLICABLE"
	RuleProhibitedProduct       = "PROHIBITED_PRODUCT"
	RulePermitRequired          = "PERMIT_REQUIRED"
	RuleBrokerRequired          = "BROKER_REQUIRED"
	RulePrecedentReview         = "PRECEDENT_REVIEW"
	RulePrecedentNotFound       = "PRECEDENT_NOT_FOUND"
	RulePrecedentUnavailable    = "PRECEDENT_UNAVAILABLE"
)

// Engine validates documents. Validations and corrections are serialized
// so the ledger chain and the correction memory see one writer at a time.
type Engine struct {
	logger     *slog.Logger
	regions    *region.Store
	detector   *classification.DocumentDetector
	extractor  *extract.Extractor
	finance    *finance.Validator
	products   pattern.Classifier
	precedents *precedent.Engine
	ledger     *ledger.Ledger
	newID      func() string
	thresholds region.Thresholds
	mu         sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithDetector sets the document type detector.
func WithDetector(d *classification.DocumentDetector) Option {
	return func(e *Engine) { e.detector = d }
}

// WithExtractor sets the field extractor.
func WithExtractor(x *extract.Extractor) Option {
	return func(e *Engine) { e.extractor = x }
}

// WithFinance sets the financial validator.
func WithFinance(v *finance.Validator) Option {
	return func(e *Engine) { e.finance = v }
}

// WithProductClassifier sets the product classifier.
func WithProductClassifier(c pattern.Classifier) Option {
	return func(e *Engine) { e.products = c }
}

// WithPrecedents sets the precedent engine.
func WithPrecedents(p *precedent.Engine) Option {
	return func(e *Engine) { e.precedents = p }
}

// WithLedger sets the integrity ledger.
func WithLedger(l *ledger.Ledger) Option {
	return func(e *Engine) { e.ledger = l }
}

// WithThresholds sets the value thresholds used for broker findings.
func WithThresholds(t region.Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// WithIDGenerator sets the generator for engine finding and document IDs.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an engine over regions. Components not supplied through options
// are created with their defaults.
func New(regions *region.Store, opts ...Option) (*Engine, error) {
	if regions == nil {
		return nil, fmt.Errorf("%w: region store", common.ErrMissingConfig)
	}

	e := &Engine{
		regions:    regions,
		thresholds: region.DefaultThresholds(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = common.LoggerOrDefault(e.logger)

	var err error
	if e.detector == nil {
		if e.detector, err = classification.NewDocumentDetector(classification.DefaultIdentifiers()); err != nil {
			return nil, fmt.Errorf("failed to create document detector: %w", err)
		}
	}
	if e.extractor == nil {
		if e.extractor, err = extract.NewExtractor(extract.WithMemory(extract.NewMemory())); err != nil {
			return nil, fmt.Errorf("failed to create extractor: %w", err)
		}
	}
	if e.finance == nil {
		if e.finance, err = finance.NewValidator(regions, finance.WithIDGenerator(e.newID)); err != nil {
			return nil, fmt.Errorf("failed to create financial validator: %w", err)
		}
	}
	if e.products == nil {
		if e.products, err = pattern.NewProductClassifier(pattern.WithThresholds(e.thresholds)); err != nil {
			return nil, fmt.Errorf("failed to create product classifier: %w", err)
		}
	}
	if e.precedents == nil {
		e.precedents = precedent.NewEngine(precedent.WithLogger(e.logger))
	}
	if e.ledger == nil {
		e.ledger = ledger.New(ledger.WithLogger(e.logger))
	}

	return e, nil
}

// Restore reloads the correction memory and the ledger head from their stores.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if m := e.extractor.Memory(); m != nil {
		if err := m.Load(ctx); err != nil {
			return fmt.Errorf("failed to restore correction memory: %w", err)
		}
	}
	if err := e.ledger.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}
	return nil
}

// RecordCorrection teaches the extractor that values containing match
// should read correction, and persists the memory when a store is attached.
func (e *Engine) RecordCorrection(ctx context.Context, match, correction, correctedBy string, docType model.DocumentType) (model.MemoryEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.extractor.Memory()
	if m == nil {
		return model.MemoryEntry{}, fmt.Errorf("%w: extractor has no correction memory", common.ErrMissingConfig)
	}

	entry, err := m.Record(match, correction, correctedBy, docType)
	if err != nil {
		return model.MemoryEntry{}, common.NewUserError("could not record correction", err)
	}
	if err := m.Save(ctx); err != nil {
		return entry, fmt.Errorf("failed to persist correction: %w", err)
	}

	e.logger.Info("Recorded correction",
		"pattern", entry.Pattern,
		"document_type", docType,
		"corrected_by", correctedBy)
	return entry, nil
}

// Memory returns the extractor's correction memory.
func (e *Engine) Memory() *extract.Memory {
	return e.extractor.Memory()
}

// Ledger returns the integrity ledger.
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// Precedents returns the precedent engine.
func (e *Engine) Precedents() *precedent.Engine {
	return e.precedents
}

func (e *Engine) finding(code string, sev model.Severity, r model.Region, msg string) model.Finding {
	return model.Finding{
		ID:       e.newID(),
		RuleCode: code,
		Severity: sev,
		Message:  msg,
		Region:   r,
	}
}
