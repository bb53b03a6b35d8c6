// Package ledger hashes validated records into an append-only SHA-256 chain
// and scores findings.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/service"
)

// DefaultHistoryCap bounds the in-memory validation history.
const DefaultHistoryCap = 200

// Penalties subtracted from a perfect score per finding.
var penalties = map[model.Severity]int{
	model.SeverityBlocking: 50,
	model.SeverityCritical: 20,
	model.SeverityWarning:  5,
	model.SeverityInfo:     1,
}

// ErrChainBroken reports a validation whose previous hash does not match its predecessor.
var ErrChainBroken = errors.New("validation chain broken")

// Score returns 100 minus the penalties of every finding, floored at 0.
func Score(findings []model.Finding) int {
	score := 100
	for _, f := range findings {
		score -= penalties[f.Severity]
	}
	return max(score, 0)
}

// Entry is what the ledger seals for one document.
type Entry struct {
	Data            any
	DocumentID      string
	Region          model.Region
	Findings        []model.Finding
	CorrectionsMade int
}

// Ledger chains validation results. It is safe for concurrent use.
type Ledger struct {
	logger   *slog.Logger
	store    service.HistoryStore
	now      func() time.Time
	lastHash *string
	history  []model.ValidationResult
	cap      int
	mu       sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithHistoryStore persists every result and allows the chain to be restored.
func WithHistoryStore(s service.HistoryStore) Option {
	return func(l *Ledger) { l.store = s }
}

// WithHistoryCap sets the in-memory history size.
func WithHistoryCap(n int) Option {
	return func(l *Ledger) { l.cap = n }
}

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Ledger) { l.logger = lg }
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		cap: DefaultHistoryCap,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cap <= 0 {
		l.cap = DefaultHistoryCap
	}
	l.logger = common.LoggerOrDefault(l.logger)
	return l
}

// Restore reloads the last hash and recent history from the store.
func (l *Ledger) Restore(ctx context.Context) error {
	if l.store == nil {
		return nil
	}

	last, err := l.store.LastValidationHash(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to restore ledger head: %w", err)
	}
	recent, err := l.store.RecentValidations(ctx, l.cap)
	if err != nil {
		return fmt.Errorf("failed to restore ledger history: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if last != "" {
		l.lastHash = &last
	}
	l.history = recent
	return nil
}

// Record seals an entry: it hashes the data, links the previous hash, scores
// the findings and appends the result to the history. The hash covers only
// the data, so identical data hashes alike while the chain still advances.
// A persistence failure is returned after the in-memory chain has advanced.
func (l *Ledger) Record(ctx context.Context, e Entry) (model.ValidationResult, error) {
	hash, err := Hash(e.Data)
	if err != nil {
		return model.ValidationResult{}, fmt.Errorf("failed to hash %s: %w", e.DocumentID, err)
	}

	findings := append([]model.Finding(nil), e.Findings...)
	if findings == nil {
		findings = []model.Finding{}
	}
	blocking := model.CountSeverity(findings, model.SeverityBlocking)

	l.mu.Lock()
	result := model.ValidationResult{
		DocumentID:      e.DocumentID,
		Timestamp:       l.now().UTC(),
		Hash:            hash,
		PreviousHash:    l.lastHash,
		Region:          e.Region,
		Findings:        findings,
		Score:           Score(findings),
		CorrectionsMade: e.CorrectionsMade,
		BlockingIssues:  blocking,
		IsValid:         blocking == 0,
	}
	l.history = append(l.history, result)
	if over := len(l.history) - l.cap; over > 0 {
		l.history = append([]model.ValidationResult(nil), l.history[over:]...)
	}
	l.lastHash = &hash
	l.mu.Unlock()

	l.logger.Debug("Sealed validation",
		"document_id", e.DocumentID,
		"hash", hash,
		"score", result.Score,
		"valid", result.IsValid)

	if l.store != nil {
		if err := l.store.AppendValidation(ctx, result); err != nil {
			return result, fmt.Errorf("failed to persist validation %s: %w", e.DocumentID, err)
		}
	}
	return result, nil
}

// LastHash returns the hash of the most recent validation.
func (l *Ledger) LastHash() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastHash == nil {
		return "", false
	}
	return *l.lastHash, true
}

// History returns the retained validations, oldest first.
func (l *Ledger) History() []model.ValidationResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.ValidationResult(nil), l.history...)
}

// VerifyChain checks that every result links to the hash of the one before it.
func VerifyChain(results []model.ValidationResult) error {
	for i := 1; i < len(results); i++ {
		prev := results[i].PreviousHash
		if prev == nil || *prev != results[i-1].Hash {
			return fmt.Errorf("%w at %s (position %d)", ErrChainBroken, results[i].DocumentID, i)
		}
	}
	return nil
}
