package region

import "github.com/Veraticus/aduana/internal/model"

// Default value thresholds in USD.
const (
	DefaultDeMinimis       = 100.0
	DefaultBrokerThreshold = 2000.0
)

// Thresholds is the value table shared by every jurisdiction.
type Thresholds struct {
	DeMinimis float64
	Broker    float64
}

// DefaultThresholds returns the standard value table.
func DefaultThresholds() Thresholds {
	return Thresholds{DeMinimis: DefaultDeMinimis, Broker: DefaultBrokerThreshold}
}

// Bracket returns the customs value bracket for a declared value.
func (t Thresholds) Bracket(value float64, isDocument bool) model.ValueBracket {
	switch {
	case isDocument:
		return model.BracketA
	case value <= t.DeMinimis:
		return model.BracketB
	case value < t.Broker:
		return model.BracketC
	default:
		return model.BracketD
	}
}

// RequiresBroker reports whether a licensed customs broker is mandatory.
func (t Thresholds) RequiresBroker(value float64) bool {
	return value >= t.Broker
}
