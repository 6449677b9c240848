package engine

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/numeric"
)

// DefaultCacheCapacity is the expression cache size used by New unless
// WithCacheCapacity overrides it.
const DefaultCacheCapacity = 128

// ErrInvalidOperand indicates an operand carrying the Invalid kind, such
// as the zero numeric.Value.
var ErrInvalidOperand = errors.New("engine: invalid operand")

// handlerKey indexes the lookup table by operation and operand kinds.
type handlerKey struct {
	op   dispatch.Op
	a, b numeric.Kind
}

// handlerFunc resolves one (operation, kinds) combination.
type handlerFunc func(a, b numeric.Value) (dispatch.Outcome, error)

// Engine evaluates operations, expressions and batches. It is safe for
// concurrent use: the handler table never changes after New, the
// expression cache locks internally, and all counters are atomic.
type Engine struct {
	dispatcher *dispatch.Dispatcher
	handlers   map[handlerKey]handlerFunc
	cache      *exprCache
	log        *zap.Logger

	fastPathHits atomic.Uint64
	batchWorkers int
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

type engineConfig struct {
	cacheCapacity int
	tuning        dispatch.Tuning
	log           *zap.Logger
	batchWorkers  int
}

// WithCacheCapacity sets the expression cache size. Values below one
// disable caching semantics by keeping a single slot.
func WithCacheCapacity(n int) Option {
	return func(c *engineConfig) {
		if n >= 1 {
			c.cacheCapacity = n
		} else {
			c.cacheCapacity = 1
		}
	}
}

// WithTuning overrides the dispatcher's confidence profile.
func WithTuning(t dispatch.Tuning) Option {
	return func(c *engineConfig) { c.tuning = t }
}

// WithLogger attaches a logger for dispatch corrections and fallbacks.
func WithLogger(log *zap.Logger) Option {
	return func(c *engineConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBatchWorkers caps the number of concurrent workers used by
// EvaluateBatch. The default scales with GOMAXPROCS.
func WithBatchWorkers(n int) Option {
	return func(c *engineConfig) {
		if n >= 1 {
			c.batchWorkers = n
		}
	}
}

// New constructs an Engine and pre-populates the handler table for every
// operation and operand-kind combination.
func New(opts ...Option) *Engine {
	cfg := engineConfig{
		cacheCapacity: DefaultCacheCapacity,
		tuning:        dispatch.DefaultTuning(),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		dispatcher:   dispatch.New(dispatch.WithTuning(cfg.tuning), dispatch.WithLogger(cfg.log)),
		cache:        newExprCache(cfg.cacheCapacity),
		log:          cfg.log,
		batchWorkers: cfg.batchWorkers,
	}
	e.handlers = buildHandlerTable(e.dispatcher)

	return e
}

// buildHandlerTable maps every (op, kindA, kindB) combination to the
// dispatcher. The table is complete over valid kinds, so a lookup miss
// can only mean an Invalid operand.
func buildHandlerTable(d *dispatch.Dispatcher) map[handlerKey]handlerFunc {
	ops := []dispatch.Op{
		dispatch.OpAdd, dispatch.OpSubtract, dispatch.OpMultiply,
		dispatch.OpDivide, dispatch.OpModulo, dispatch.OpPower,
	}
	kinds := []numeric.Kind{numeric.Int32, numeric.Int64, numeric.Float32, numeric.Float64}

	table := make(map[handlerKey]handlerFunc, len(ops)*len(kinds)*len(kinds))
	for _, op := range ops {
		op := op
		for _, ka := range kinds {
			for _, kb := range kinds {
				table[handlerKey{op: op, a: ka, b: kb}] = func(a, b numeric.Value) (dispatch.Outcome, error) {
					return d.Evaluate(op, a, b)
				}
			}
		}
	}

	return table
}

// Evaluate dispatches one operation over two values.
//
// Int32 addition and subtraction resolve inline without consulting the
// handler table; every other combination resolves through it.
//
// Errors: ErrInvalidOperand for Invalid operands, ErrUnknownOp for an
// undefined operation, numeric.ErrDivisionByZero for a zero divisor.
func (e *Engine) Evaluate(op dispatch.Op, a, b numeric.Value) (dispatch.Outcome, error) {
	if out, ok := e.fastPath(op, a, b); ok {
		e.fastPathHits.Add(1)

		return out, nil
	}

	h, ok := e.handlers[handlerKey{op: op, a: a.Kind(), b: b.Kind()}]
	if !ok {
		if !a.IsValid() || !b.IsValid() {
			return dispatch.Outcome{}, ErrInvalidOperand
		}

		return dispatch.Outcome{}, dispatch.ErrUnknownOp
	}

	return h(a, b)
}

// fastPath handles Int32 add/subtract inline: the int64 intermediate
// cannot overflow, so no promotion logic or rule selection is needed.
func (e *Engine) fastPath(op dispatch.Op, a, b numeric.Value) (dispatch.Outcome, bool) {
	if a.Kind() != numeric.Int32 || b.Kind() != numeric.Int32 {
		return dispatch.Outcome{}, false
	}

	var r int64
	switch op {
	case dispatch.OpAdd:
		r = a.Int64() + b.Int64()
	case dispatch.OpSubtract:
		r = a.Int64() - b.Int64()
	default:
		return dispatch.Outcome{}, false
	}

	return dispatch.Outcome{
		Result:     numeric.FromInt64(r),
		Rule:       dispatch.RuleStandard,
		Confidence: 1.0,
		Verified:   true,
	}, true
}

// EvaluateExpression parses and dispatches "<number> <operator> <number>",
// consulting the expression cache first. The cache key is the trimmed
// expression text, so equal strings short-circuit the whole pipeline.
//
// Errors: ErrExpression for malformed structure, numeric.ErrParse for
// malformed numbers, plus the Evaluate errors.
func (e *Engine) EvaluateExpression(text string) (dispatch.Outcome, error) {
	key := trimmedKey(text)
	if out, ok := e.cache.get(key); ok {
		return out, nil
	}

	a, op, b, err := parseExpression(key)
	if err != nil {
		return dispatch.Outcome{}, err
	}

	out, err := e.Evaluate(op, a, b)
	if err != nil {
		return dispatch.Outcome{}, err
	}
	e.cache.put(key, out)

	return out, nil
}

// trimmedKey normalizes expression text into its cache key.
func trimmedKey(text string) string {
	// Only outer whitespace is stripped: "102 * 32" and "102*32" evaluate
	// identically but occupy separate cache slots, matching the exact-text
	// key contract.
	start := 0
	end := len(text)
	for start < end && isSpaceByte(text[start]) {
		start++
	}
	for end > start && isSpaceByte(text[end-1]) {
		end--
	}

	return text[start:end]
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Stats is a point-in-time view of engine and dispatch counters.
type Stats struct {
	// Dispatch carries the rule-selection counters.
	Dispatch dispatch.Snapshot

	// FastPathHits counts operations resolved by the inline Int32 paths.
	FastPathHits uint64

	// CacheHits and CacheMisses count expression cache probes;
	// CacheHitRate is hits over total probes (0 when unused).
	CacheHits    uint64
	CacheMisses  uint64
	CacheHitRate float64

	// CacheEntries is the current number of cached expressions.
	CacheEntries int
}

// Stats returns the current counters.
func (e *Engine) Stats() Stats {
	hits, misses := e.cache.counters()
	s := Stats{
		Dispatch:     e.dispatcher.Stats(),
		FastPathHits: e.fastPathHits.Load(),
		CacheHits:    hits,
		CacheMisses:  misses,
		CacheEntries: e.cache.len(),
	}
	if total := hits + misses; total > 0 {
		s.CacheHitRate = float64(hits) / float64(total)
	}

	return s
}
