// Package precedent matches products against binding customs rulings and,
// when none applies, justifies a classification with an interpretation rule.
package precedent

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/pattern"
	"github.com/Veraticus/aduana/internal/service"
)

// Scoring weights and thresholds.
const (
	ScoreHeading      = 50
	ScoreExactCode    = 30
	ScoreKeyword      = 15
	ScorePartialToken = 5

	EndorsementThreshold = 30
	ReviewThreshold      = 40

	MaxResults = 5
)

// DefaultTimeout bounds one remote lookup attempt.
const DefaultTimeout = 3 * time.Second

// Source tells where the precedent list came from.
type Source string

// Lookup sources.
const (
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
)

// Match is a scored precedent.
type Match struct {
	Precedent       model.Precedent `json:"precedent"`
	MatchedKeywords []string        `json:"matched_keywords"`
	RelevanceScore  int             `json:"relevance_score"`
}

// LookupResult is the outcome of a search. LookupErr is set when the remote
// store failed and only the local seed cache was searched.
type LookupResult struct {
	LookupErr error   `json:"-"`
	Source    Source  `json:"source"`
	Matches   []Match `json:"matches"`
}

// Unavailable reports whether the remote store could not be consulted.
func (r LookupResult) Unavailable() bool {
	return r.LookupErr != nil
}

// Engine searches precedents and produces classification verdicts.
type Engine struct {
	logger *slog.Logger
	source service.PrecedentSource
	now    func() time.Time
	retry  service.RetryOptions
	seeds  []model.Precedent
	mu     sync.RWMutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the remote precedent store.
func WithSource(s service.PrecedentSource) Option {
	return func(e *Engine) { e.source = s }
}

// WithSeeds replaces the built-in seed set.
func WithSeeds(seeds []model.Precedent) Option {
	return func(e *Engine) { e.seeds = seeds }
}

// WithRetry sets the backoff policy for remote lookups.
func WithRetry(opts service.RetryOptions) Option {
	return func(e *Engine) { e.retry = opts }
}

// WithTimeout bounds each remote lookup attempt.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.retry.AttemptTimeout = d }
}

// WithClock sets the time used to decide whether a ruling is in force.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a precedent engine over the default seeds.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		seeds: DefaultSeeds(),
		now:   time.Now,
		retry: service.RetryOptions{
			MaxAttempts:    2,
			InitialDelay:   200 * time.Millisecond,
			MaxDelay:       time.Second,
			AttemptTimeout: DefaultTimeout,
			Multiplier:     2,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = common.LoggerOrDefault(e.logger)
	return e
}

// AddSeeds extends the local seed set. Seeds sharing a ruling ID replace older ones.
func (e *Engine) AddSeeds(seeds ...model.Precedent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range seeds {
		replaced := false
		for i := range e.seeds {
			if e.seeds[i].RulingID == s.RulingID {
				e.seeds[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			e.seeds = append(e.seeds, s)
		}
	}
}

// SeedCount returns the number of local seeds.
func (e *Engine) SeedCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.seeds)
}

// SearchPrecedents scores every in-force precedent of the region against the
// description and HS code and returns at most MaxResults, highest score first.
// Remote precedents override seeds with the same ruling ID.
func (e *Engine) SearchPrecedents(ctx context.Context, description string, r model.Region, hsCode string) LookupResult {
	result := LookupResult{Source: SourceCache}

	var remote []model.Precedent
	if e.source != nil {
		err := common.WithRetry(ctx, func(ctx context.Context) error {
			var err error
			remote, err = e.source.ActivePrecedents(ctx, r)
			return err
		}, e.retry)
		if err != nil {
			remote = nil
			result.LookupErr = err
			e.logger.Warn("Remote precedent lookup failed, using local cache",
				"region", r,
				"error", err)
		} else {
			result.Source = SourceRemote
		}
	}

	candidates := e.merge(remote, r)

	normalized := pattern.Normalize(description)
	tokens := tokenSet(normalized)
	queryDigits := digits(hsCode)
	queryHeading := heading(hsCode)

	for _, p := range candidates {
		score := 0
		if queryHeading != "" && heading(p.HSCode) == queryHeading {
			score += ScoreHeading
			if digits(p.HSCode) == queryDigits {
				score += ScoreExactCode
			}
		}

		var matched []string
		for _, kw := range p.Keywords {
			nk := pattern.Normalize(kw)
			if nk == "" {
				continue
			}
			if containsPhrase(normalized, nk) {
				score += ScoreKeyword
				matched = append(matched, kw)
				continue
			}
			if overlaps(tokens, nk) {
				score += ScorePartialToken
			}
		}

		if score > 0 {
			result.Matches = append(result.Matches, Match{
				Precedent:       p,
				RelevanceScore:  score,
				MatchedKeywords: matched,
			})
		}
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		a, b := result.Matches[i], result.Matches[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		return a.Precedent.RulingID < b.Precedent.RulingID
	})
	if len(result.Matches) > MaxResults {
		result.Matches = result.Matches[:MaxResults]
	}

	e.logger.Debug("Searched precedents",
		"region", r,
		"hs_code", hsCode,
		"candidates", len(candidates),
		"matches", len(result.Matches),
		"source", result.Source)

	return result
}

// merge de-duplicates by ruling ID, keeps the region's in-force rulings and
// lets remote entries win over seeds.
func (e *Engine) merge(remote []model.Precedent, r model.Region) []model.Precedent {
	e.mu.RLock()
	defer e.mu.RUnlock()

	now := e.now()
	seen := make(map[string]bool, len(remote)+len(e.seeds))
	var out []model.Precedent
	for _, group := range [][]model.Precedent{remote, e.seeds} {
		for _, p := range group {
			if seen[p.RulingID] {
				continue
			}
			seen[p.RulingID] = true
			if p.Region != r || !p.InForce(now) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

func tokenSet(normalized string) []string {
	return strings.Fields(normalized)
}

// containsPhrase reports whether phrase appears in text on token boundaries.
func containsPhrase(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// overlaps reports whether any keyword token equals a description token or
// shares a prefix of at least four characters with one.
func overlaps(tokens []string, keyword string) bool {
	for _, kt := range strings.Fields(keyword) {
		if len(kt) < 3 {
			continue
		}
		for _, dt := range tokens {
			if kt == dt {
				return true
			}
			if len(kt) >= 4 && len(dt) >= 4 && (strings.HasPrefix(dt, kt) || strings.HasPrefix(kt, dt)) {
				return true
			}
		}
	}
	return false
}
