// Package classification detects the type and jurisdiction of trade documents.
package classification

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

// MaxConfidence caps document type confidence; a keyword vote is never certain.
const MaxConfidence = 99

// Identifier is a weighted keyword set that votes for one document type.
type Identifier struct {
	Type     model.DocumentType
	Keywords []string
	Regions  []model.Region // Empty means the type is used everywhere
	Weight   int
}

// RegionMarker is a weighted keyword set that votes for one jurisdiction.
type RegionMarker struct {
	Region   model.Region
	Keywords []string
	Weight   int
}

// Detection is the outcome of classifying a document.
type Detection struct {
	Scores       map[model.DocumentType]int `json:"scores"`
	Type         model.DocumentType         `json:"type"`
	Region       model.Region               `json:"region"`
	Confidence   int                        `json:"confidence"`
	RegionByText bool                       `json:"region_by_text"`
}

// DocumentDetector scores raw text against the identifier table.
type DocumentDetector struct {
	logger        *slog.Logger
	defaultRegion model.Region
	identifiers   []Identifier
	markers       []RegionMarker
	mu            sync.RWMutex
}

// Option configures a DocumentDetector.
type Option func(*DocumentDetector)

// WithDefaultRegion sets the region used when the text carries no regional marker.
func WithDefaultRegion(r model.Region) Option {
	return func(d *DocumentDetector) { d.defaultRegion = r }
}

// WithRegionMarkers replaces the built-in regional markers.
func WithRegionMarkers(markers []RegionMarker) Option {
	return func(d *DocumentDetector) { d.markers = markers }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(d *DocumentDetector) { d.logger = l }
}

// NewDocumentDetector creates a detector with the given identifiers in table order.
func NewDocumentDetector(identifiers []Identifier, opts ...Option) (*DocumentDetector, error) {
	d := &DocumentDetector{
		defaultRegion: model.RegionPanama,
		markers:       DefaultRegionMarkers(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = common.LoggerOrDefault(d.logger)

	prepared, err := prepareIdentifiers(identifiers)
	if err != nil {
		return nil, err
	}
	d.identifiers = prepared
	d.markers = prepareMarkers(d.markers)

	return d, nil
}

// Classify picks the document type with the highest weighted keyword score.
// Ties keep the identifier declared first; all-zero scores yield UNKNOWN.
func (d *DocumentDetector) Classify(text string) Detection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	folded := common.FoldText(text)
	scores := make(map[model.DocumentType]int, len(d.identifiers))

	for _, id := range d.identifiers {
		for _, kw := range id.Keywords {
			if strings.Contains(folded, kw) {
				scores[id.Type] += id.Weight
			}
		}
	}

	best := model.DocUnknown
	bestScore, total := 0, 0
	for _, id := range d.identifiers {
		score := scores[id.Type]
		if score > bestScore {
			best, bestScore = id.Type, score
		}
	}
	for _, s := range scores {
		total += s
	}

	confidence := 0
	if bestScore > 0 && total > 0 {
		confidence = int(math.Round(float64(bestScore) / float64(total) * 100))
		if confidence > MaxConfidence {
			confidence = MaxConfidence
		}
	}

	region, byText := d.detectRegion(folded, best)

	d.logger.Debug("Classified document",
		"type", best,
		"score", bestScore,
		"total", total,
		"region", region)

	return Detection{
		Type:         best,
		Region:       region,
		Confidence:   confidence,
		Scores:       scores,
		RegionByText: byText,
	}
}

// DetectRegion scores regional markers in text; see Classify for the fallback order.
func (d *DocumentDetector) DetectRegion(text string, docType model.DocumentType) model.Region {
	d.mu.RLock()
	defer d.mu.RUnlock()

	region, _ := d.detectRegion(common.FoldText(text), docType)
	return region
}

// detectRegion prefers textual markers, then a type that exists in a single
// jurisdiction, then the configured default.
func (d *DocumentDetector) detectRegion(folded string, docType model.DocumentType) (model.Region, bool) {
	best := model.RegionUnassigned
	bestScore := 0
	for _, m := range d.markers {
		score := 0
		for _, kw := range m.Keywords {
			if strings.Contains(folded, kw) {
				score += m.Weight
			}
		}
		if score > bestScore {
			best, bestScore = m.Region, score
		}
	}
	if bestScore > 0 {
		return best, true
	}

	for _, id := range d.identifiers {
		if id.Type == docType && len(id.Regions) == 1 {
			return id.Regions[0], false
		}
	}
	return d.defaultRegion, false
}

// Applicable reports whether a document type is used in the given region.
func (d *DocumentDetector) Applicable(docType model.DocumentType, region model.Region) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.identifiers {
		if id.Type != docType {
			continue
		}
		if len(id.Regions) == 0 {
			return true
		}
		for _, r := range id.Regions {
			if r == region {
				return true
			}
		}
		return false
	}
	return docType == model.DocUnknown
}

// UpdateIdentifiers swaps the identifier table.
func (d *DocumentDetector) UpdateIdentifiers(identifiers []Identifier) error {
	prepared, err := prepareIdentifiers(identifiers)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.identifiers = prepared
	d.mu.Unlock()

	return nil
}

// IdentifierCount returns the number of loaded identifiers.
func (d *DocumentDetector) IdentifierCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.identifiers)
}

func prepareIdentifiers(identifiers []Identifier) ([]Identifier, error) {
	prepared := make([]Identifier, 0, len(identifiers))
	for _, id := range identifiers {
		if id.Type == "" || id.Type == model.DocUnknown {
			return nil, fmt.Errorf("identifier has invalid document type %q", id.Type)
		}
		if id.Weight <= 0 {
			return nil, fmt.Errorf("identifier %s has non-positive weight %d", id.Type, id.Weight)
		}
		keywords := make([]string, 0, len(id.Keywords))
		for _, kw := range id.Keywords {
			kw = common.FoldText(kw)
			if strings.TrimSpace(kw) == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		id.Keywords = keywords
		prepared = append(prepared, id)
	}
	return prepared, nil
}

func prepareMarkers(markers []RegionMarker) []RegionMarker {
	out := make([]RegionMarker, 0, len(markers))
	for _, m := range markers {
		keywords := make([]string, 0, len(m.Keywords))
		for _, kw := range m.Keywords {
			keywords = append(keywords, common.FoldText(kw))
		}
		m.Keywords = keywords
		if m.Weight <= 0 {
			m.Weight = 1
		}
		out = append(out, m)
	}
	return out
}
