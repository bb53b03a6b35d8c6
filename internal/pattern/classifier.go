package pattern

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/region"
)

// DefaultConfidenceDivisor converts a keyword score into a percentage.
// It has not been calibrated against labeled data.
const DefaultConfidenceDivisor = 20.0

// Advisory texts.
const (
	AdvisoryProhibited = "Posible mercancía prohibida: verificar con la autoridad aduanera antes de aceptar el envío"
	AdvisoryManual     = "Se requiere clasificación manual (manual classification required)"
	advisoryPermitFmt  = "Requiere permiso de %s"
	advisoryBrokerFmt  = "Requiere agente corredor de aduanas (valor declarado USD %.2f ≥ USD %.2f)"
)

// ProductClassifier matches normalized descriptions against the pattern table.
type ProductClassifier struct {
	logger     *slog.Logger
	patterns   []ProductPattern
	prohibited []string
	documents  []string
	thresholds region.Thresholds
	divisor    float64
}

// Option configures a ProductClassifier.
type Option func(*ProductClassifier)

// WithPatterns replaces the built-in pattern table.
func WithPatterns(patterns []ProductPattern) Option {
	return func(c *ProductClassifier) { c.patterns = patterns }
}

// WithProhibitedKeywords replaces the prohibited keyword list.
func WithProhibitedKeywords(keywords []string) Option {
	return func(c *ProductClassifier) { c.prohibited = keywords }
}

// WithDocumentKeywords replaces the document keyword list.
func WithDocumentKeywords(keywords []string) Option {
	return func(c *ProductClassifier) { c.documents = keywords }
}

// WithThresholds sets the shared value threshold table.
func WithThresholds(t region.Thresholds) Option {
	return func(c *ProductClassifier) { c.thresholds = t }
}

// WithConfidenceDivisor sets the score-to-confidence divisor.
func WithConfidenceDivisor(d float64) Option {
	return func(c *ProductClassifier) { c.divisor = d }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *ProductClassifier) { c.logger = l }
}

// NewProductClassifier creates a classifier over the default tables unless overridden.
func NewProductClassifier(opts ...Option) (*ProductClassifier, error) {
	c := &ProductClassifier{
		patterns:   DefaultPatterns(),
		prohibited: DefaultProhibitedKeywords(),
		documents:  DefaultDocumentKeywords(),
		thresholds: region.DefaultThresholds(),
		divisor:    DefaultConfidenceDivisor,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = common.LoggerOrDefault(c.logger)

	if c.divisor <= 0 {
		return nil, fmt.Errorf("%w: confidence divisor must be positive, got %v", common.ErrInvalidConfig, c.divisor)
	}

	patterns := make([]ProductPattern, 0, len(c.patterns))
	for i, p := range c.patterns {
		if p.Category == "" {
			return nil, fmt.Errorf("%w: pattern %d has no category", common.ErrInvalidConfig, i)
		}
		if p.RequiresPermit && len(p.Authorities) == 0 {
			return nil, fmt.Errorf("%w: pattern %s/%s requires a permit but names no authority",
				common.ErrInvalidConfig, p.Category, p.Subcategory)
		}
		p = p.clone()
		p.Keywords = normalizeKeywords(p.Keywords)
		patterns = append(patterns, p)
	}
	c.patterns = patterns
	c.prohibited = normalizeKeywords(c.prohibited)
	c.documents = normalizeKeywords(c.documents)

	return c, nil
}

// PatternCount returns the number of loaded patterns.
func (c *ProductClassifier) PatternCount() int {
	return len(c.patterns)
}

// KeywordCount returns the number of keywords across all patterns.
func (c *ProductClassifier) KeywordCount() int {
	n := 0
	for _, p := range c.patterns {
		n += len(p.Keywords)
	}
	return n
}

// Classify scores the description against every pattern in table order.
// A later pattern replaces the current best only on a strictly greater score.
func (c *ProductClassifier) Classify(description string, value float64) model.ClassificationResult {
	normalized := Normalize(description)

	result := model.ClassificationResult{
		ProductCategory: model.CategoryGeneral,
		Authorities:     []string{},
		Restrictions:    []string{},
		Advisories:      []string{},
		MatchedKeywords: []string{},
	}

	if normalized == "" {
		result.CustomsValueBracket = c.thresholds.Bracket(value, false)
		result.Advisories = append(result.Advisories, AdvisoryManual)
		return result
	}

	result.IsProhibited = containsAny(normalized, c.prohibited)
	result.IsDocument = containsAny(normalized, c.documents)
	result.CustomsValueBracket = c.thresholds.Bracket(value, result.IsDocument)

	bestIdx, bestScore := -1, 0
	var bestMatched []string
	for i, p := range c.patterns {
		score := 0
		var matched []string
		for _, kw := range p.Keywords {
			if strings.Contains(normalized, kw) {
				score += len(kw)
				matched = append(matched, kw)
			}
		}
		if score > bestScore {
			bestIdx, bestScore, bestMatched = i, score, matched
		}
	}

	if result.IsProhibited {
		result.Advisories = append(result.Advisories, AdvisoryProhibited)
	}

	if bestIdx < 0 {
		result.Advisories = append(result.Advisories, AdvisoryManual)
		if c.thresholds.RequiresBroker(value) {
			result.Advisories = append(result.Advisories, c.brokerAdvisory(value))
		}
		c.logger.Debug("No product pattern matched", "description", normalized)
		return result
	}

	best := c.patterns[bestIdx]
	result.ProductCategory = best.Category
	result.Subcategory = best.Subcategory
	result.Confidence = c.confidence(bestScore)
	result.MatchedKeywords = bestMatched
	result.RequiresPermit = best.RequiresPermit
	result.Authorities = append(result.Authorities, best.Authorities...)
	result.Restrictions = append(result.Restrictions, best.Restrictions...)

	if best.RequiresPermit {
		result.Advisories = append(result.Advisories,
			fmt.Sprintf(advisoryPermitFmt, strings.Join(best.Authorities, ", ")))
	}
	if c.thresholds.RequiresBroker(value) {
		result.Advisories = append(result.Advisories, c.brokerAdvisory(value))
	}
	result.Advisories = append(result.Advisories, best.Restrictions...)

	c.logger.Debug("Classified product",
		"category", result.ProductCategory,
		"subcategory", result.Subcategory,
		"score", bestScore,
		"confidence", result.Confidence)

	return result
}

func (c *ProductClassifier) confidence(score int) int {
	if score <= 0 {
		return 0
	}
	conf := int(math.Round(float64(score) / c.divisor * 100))
	if conf > 100 {
		return 100
	}
	return conf
}

func (c *ProductClassifier) brokerAdvisory(value float64) string {
	return fmt.Sprintf(advisoryBrokerFmt, value, c.thresholds.Broker)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if n := Normalize(kw); n != "" {
			out = append(out, n)
		}
	}
	return out
}
