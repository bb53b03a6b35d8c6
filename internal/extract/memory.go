package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/service"
)

// DefaultMemoryCap bounds the number of learned corrections kept.
const DefaultMemoryCap = 500

// correctionBoost is added to a field's confidence when a correction applies.
const correctionBoost = 10

// Memory holds corrections learned from reviewers and applies them to new
// extractions. It is safe for concurrent use.
type Memory struct {
	store   service.MemoryStore
	now     func() time.Time
	entries []model.MemoryEntry
	cap     int
	mu      sync.Mutex
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithMemoryStore persists entries through the given store.
func WithMemoryStore(s service.MemoryStore) MemoryOption {
	return func(m *Memory) { m.store = s }
}

// WithMemoryCap sets the maximum number of entries.
func WithMemoryCap(n int) MemoryOption {
	return func(m *Memory) { m.cap = n }
}

// WithClock sets the time source used for LastSeen.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory creates an empty correction memory.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		cap: DefaultMemoryCap,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cap <= 0 {
		m.cap = DefaultMemoryCap
	}
	return m
}

// Record learns that values containing pattern should read correction.
// Recording an existing pattern for the same document type replaces its correction.
func (m *Memory) Record(pattern, correction, correctedBy string, docType model.DocumentType) (model.MemoryEntry, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return model.MemoryEntry{}, fmt.Errorf("correction pattern is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for i := range m.entries {
		e := &m.entries[i]
		if strings.EqualFold(e.Pattern, pattern) && e.DocumentType == docType {
			e.Correction = correction
			e.CorrectedBy = correctedBy
			e.LastSeen = now
			return *e, nil
		}
	}

	entry := model.MemoryEntry{
		Pattern:      pattern,
		Correction:   correction,
		CorrectedBy:  correctedBy,
		DocumentType: docType,
		LastSeen:     now,
	}
	m.entries = append(m.entries, entry)
	m.evict()
	return entry, nil
}

// evict drops the least recently seen entries beyond the cap. Caller holds mu.
func (m *Memory) evict() {
	for len(m.entries) > m.cap {
		oldest := 0
		for i, e := range m.entries {
			if e.LastSeen.Before(m.entries[oldest].LastSeen) {
				oldest = i
			}
		}
		m.entries = append(m.entries[:oldest], m.entries[oldest+1:]...)
	}
}

// Apply rewrites every string field whose value contains a learned pattern.
// Matching is case-insensitive. It returns the number of corrections made.
func (m *Memory) Apply(fields []model.ExtractionField) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	applied := 0
	for i := range m.entries {
		entry := &m.entries[i]
		needle := strings.ToLower(entry.Pattern)
		for j := range fields {
			value, ok := fields[j].Text()
			if !ok || !strings.Contains(strings.ToLower(value), needle) {
				continue
			}
			fields[j].Value = entry.Correction
			fields[j].Provenance = model.ProvenanceInference
			fields[j].Confidence = min(fields[j].Confidence+correctionBoost, model.MaxCorrectedConfidence)
			entry.Occurrences++
			entry.LastSeen = m.now()
			applied++
		}
	}
	return applied
}

// Entries returns a copy of the learned corrections, most recently seen first.
func (m *Memory) Entries() []model.MemoryEntry {
	m.mu.Lock()
	out := append([]model.MemoryEntry(nil), m.entries...)
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	return out
}

// Len returns the number of learned corrections.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Load replaces the in-memory entries with those held by the store.
func (m *Memory) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	entries, err := m.store.LoadMemory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load correction memory: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
	m.evict()
	return nil
}

// Save writes the current entries to the store.
func (m *Memory) Save(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	m.mu.Lock()
	entries := append([]model.MemoryEntry(nil), m.entries...)
	m.mu.Unlock()

	if err := m.store.SaveMemory(ctx, entries); err != nil {
		return fmt.Errorf("failed to save correction memory: %w", err)
	}
	return nil
}
