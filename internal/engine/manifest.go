package engine

import (
	"context"

	"github.com/Veraticus/aduana/internal/model"
)

// Queue is the processing lane a manifest row is routed to.
type Queue string

// Queues, most restrictive first.
const (
	QueueProhibited Queue = "prohibited"
	QueuePermit     Queue = "permit"
	QueueBroker     Queue = "broker"
	QueueDocuments  Queue = "documents"
	QueueManual     Queue = "manual"
	QueueStandard   Queue = "standard"
)

// ManifestLine is one classified manifest row.
type ManifestLine struct {
	Row            model.ManifestRow          `json:"row"`
	Classification model.ClassificationResult `json:"classification"`
	Queue          Queue                      `json:"queue"`
}

// ManifestSummary is the routing of a whole manifest.
type ManifestSummary struct {
	Queues      map[Queue]int  `json:"queues"`
	Lines       []ManifestLine `json:"lines"`
	TotalValue  float64        `json:"total_value"`
	TotalWeight float64        `json:"total_weight"`
}

// ClassifyManifest classifies importer rows and routes each one to a queue.
// It stops early when ctx is canceled.
func (e *Engine) ClassifyManifest(ctx context.Context, rows []model.ManifestRow) (*ManifestSummary, error) {
	summary := &ManifestSummary{
		Queues: make(map[Queue]int),
		Lines:  make([]ManifestLine, 0, len(rows)),
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := e.products.Classify(row.Description, row.Value)
		queue := e.route(row, result)

		summary.Lines = append(summary.Lines, ManifestLine{Row: row, Classification: result, Queue: queue})
		summary.Queues[queue]++
		summary.TotalValue += row.Value
		summary.TotalWeight += row.Weight
	}

	e.logger.Info("Classified manifest",
		"rows", len(rows),
		"permit", summary.Queues[QueuePermit],
		"prohibited", summary.Queues[QueueProhibited])

	return summary, nil
}

func (e *Engine) route(row model.ManifestRow, c model.ClassificationResult) Queue {
	switch {
	case c.IsProhibited:
		return QueueProhibited
	case c.RequiresPermit:
		return QueuePermit
	case e.thresholds.RequiresBroker(row.Value):
		return QueueBroker
	case c.IsDocument:
		return QueueDocuments
	case c.ProductCategory == model.CategoryGeneral:
		return QueueManual
	default:
		return QueueStandard
	}
}
