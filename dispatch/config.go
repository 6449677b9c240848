package dispatch

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Default confidence constants. These are hand-tuned values inherited from
// the rule table, preserved as overridable defaults rather than derived
// optima.
const (
	// DefaultSquareConfidence ranks squaring of numbers ending in five.
	DefaultSquareConfidence = 0.95

	// DefaultComplementaryConfidence ranks the complementary-digit rule.
	DefaultComplementaryConfidence = 0.88

	// DefaultNearBaseMaxConfidence caps the proximity-weighted near-base
	// rule; the actual confidence scales with how close the operands sit
	// to their shared base.
	DefaultNearBaseMaxConfidence = 0.85

	// DefaultCrosswiseBaseConfidence is the crosswise confidence at three
	// digits; DefaultCrosswisePerDigit is added per extra digit up to
	// DefaultCrosswiseMaxConfidence.
	DefaultCrosswiseBaseConfidence = 0.60
	DefaultCrosswisePerDigit       = 0.05
	DefaultCrosswiseMaxConfidence  = 0.80

	// DefaultMinConfidence is the selection threshold: a winner below it
	// is overridden by the direct fallback.
	DefaultMinConfidence = 0.30
)

// Tuning carries the confidence constants of the multiplication rule
// table. All values live in [0, 1]. The YAML tags allow loading a tuning
// profile from configuration.
type Tuning struct {
	SquareConfidence        float64 `yaml:"square_confidence"`
	ComplementaryConfidence float64 `yaml:"complementary_confidence"`
	NearBaseMaxConfidence   float64 `yaml:"near_base_max_confidence"`
	CrosswiseBaseConfidence float64 `yaml:"crosswise_base_confidence"`
	CrosswisePerDigit       float64 `yaml:"crosswise_per_digit"`
	CrosswiseMaxConfidence  float64 `yaml:"crosswise_max_confidence"`
	MinConfidence           float64 `yaml:"min_confidence"`
}

// DefaultTuning returns the stock confidence profile.
func DefaultTuning() Tuning {
	return Tuning{
		SquareConfidence:        DefaultSquareConfidence,
		ComplementaryConfidence: DefaultComplementaryConfidence,
		NearBaseMaxConfidence:   DefaultNearBaseMaxConfidence,
		CrosswiseBaseConfidence: DefaultCrosswiseBaseConfidence,
		CrosswisePerDigit:       DefaultCrosswisePerDigit,
		CrosswiseMaxConfidence:  DefaultCrosswiseMaxConfidence,
		MinConfidence:           DefaultMinConfidence,
	}
}

// TuningFromYAML decodes a tuning profile from YAML. Fields absent from
// the document keep their defaults.
//
// Example document:
//
//	square_confidence: 0.95
//	min_confidence: 0.5
func TuningFromYAML(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("dispatch: decode tuning: %w", err)
	}

	return t, nil
}

// Option configures a Dispatcher at construction.
type Option func(*Dispatcher)

// WithTuning replaces the default confidence profile.
func WithTuning(t Tuning) Option {
	return func(d *Dispatcher) { d.tuning = t }
}

// WithLogger attaches a logger for correction and fallback events.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}
