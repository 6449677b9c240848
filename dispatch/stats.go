package dispatch

import "sync/atomic"

// Stats accumulates dispatch counters. All fields are updated atomically,
// so a single Stats value may be shared by concurrent dispatch calls.
// Callers read it through Snapshot; the zero value is ready to use.
type Stats struct {
	evaluations atomic.Uint64
	shortcuts   atomic.Uint64
	fallbacks   atomic.Uint64
	corrections atomic.Uint64
}

// Snapshot is a point-in-time copy of dispatch counters.
type Snapshot struct {
	// Evaluations counts every dispatched operation.
	Evaluations uint64

	// Shortcuts counts operations resolved by a shortcut formula.
	Shortcuts uint64

	// Fallbacks counts operations resolved by the direct baseline because
	// no rule applied or the winner missed the confidence threshold.
	Fallbacks uint64

	// Corrections counts division results recomputed after a failed
	// reconstruction check.
	Corrections uint64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Evaluations: s.evaluations.Load(),
		Shortcuts:   s.shortcuts.Load(),
		Fallbacks:   s.fallbacks.Load(),
		Corrections: s.corrections.Load(),
	}
}

func (s *Stats) recordRule(rule string) {
	s.evaluations.Add(1)
	if rule == RuleStandard {
		s.fallbacks.Add(1)
	} else {
		s.shortcuts.Add(1)
	}
}
