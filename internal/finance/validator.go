// Package finance enforces the CIF identity, the DAI, ISC and VAT tax cascade
// and taxpayer identifier formats for each supported jurisdiction.
package finance

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/region"
)

// DefaultTolerance absorbs rounding differences between declared and computed amounts.
const DefaultTolerance = 0.02

// Rule codes emitted by this package.
const (
	RuleCIFInsuranceDerived    = "CIF_INSURANCE_DERIVED"
	RuleCIFMismatch            = "CIF_MISMATCH"
	RuleNegativeAmount         = "NEGATIVE_AMOUNT"
	RulePossibleUndervaluation = "POSSIBLE_UNDERVALUATION"
	RuleDAIMismatch            = "DAI_MISMATCH"
	RuleISCMismatch            = "ISC_MISMATCH"
	RuleVATMismatch            = "VAT_MISMATCH"
	RuleTotalMismatch          = "TOTAL_MISMATCH"
	RuleFiscalIDEmpty          = "FISCAL_ID_EMPTY"
	RuleFiscalIDInvalid        = "FISCAL_ID_INVALID"
)

// Validator checks monetary declarations against a region's tax profile.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	logger    *slog.Logger
	regions   *region.Store
	newID     func() string
	tolerance decimal.Decimal
}

// Option configures a Validator.
type Option func(*Validator)

// WithTolerance overrides the comparison tolerance in USD.
func WithTolerance(t float64) Option {
	return func(v *Validator) { v.tolerance = decimal.NewFromFloat(t) }
}

// WithIDGenerator sets the function used to assign finding IDs.
func WithIDGenerator(fn func() string) Option {
	return func(v *Validator) { v.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator creates a validator reading rates from the given store.
func NewValidator(regions *region.Store, opts ...Option) (*Validator, error) {
	if regions == nil {
		return nil, fmt.Errorf("%w: region store is required", common.ErrMissingConfig)
	}
	v := &Validator{
		regions:   regions,
		newID:     uuid.NewString,
		tolerance: decimal.NewFromFloat(DefaultTolerance),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.tolerance.IsNegative() {
		return nil, fmt.Errorf("%w: tolerance must not be negative", common.ErrInvalidConfig)
	}
	v.logger = common.LoggerOrDefault(v.logger)
	return v, nil
}

// Tolerance returns the configured comparison tolerance.
func (v *Validator) Tolerance() float64 {
	return v.tolerance.InexactFloat64()
}

func (v *Validator) finding(code string, sev model.Severity, r model.Region, msg string) model.Finding {
	return model.Finding{
		ID:       v.newID(),
		RuleCode: code,
		Severity: sev,
		Message:  msg,
		Region:   r,
	}
}

func (v *Validator) exceeds(computed, declared decimal.Decimal) bool {
	return computed.Sub(declared).Abs().GreaterThan(v.tolerance)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func ptr(f float64) *float64 {
	return &f
}
