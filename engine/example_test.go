// Package engine_test provides runnable examples for the evaluation engine.
package engine_test

import (
	"fmt"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/engine"
	"github.com/katalvlaran/vedicmath/numeric"
)

// ExampleEngine_EvaluateExpression evaluates a textual expression twice;
// the second call is served from the expression cache.
func ExampleEngine_EvaluateExpression() {
	eng := engine.New()

	out, err := eng.EvaluateExpression("102 * 32")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("result:", out.Result)

	// The identical string skips parsing and dispatch entirely.
	out, _ = eng.EvaluateExpression("102 * 32")
	fmt.Println("again:", out.Result)
	fmt.Println("cache hits:", eng.Stats().CacheHits)

	// Output:
	// result: 3264
	// again: 3264
	// cache hits: 1
}

// ExampleEngine_Evaluate shows a division resolved by a shortcut method
// with its remainder and rule attribution.
func ExampleEngine_Evaluate() {
	eng := engine.New()

	out, err := eng.Evaluate(dispatch.OpDivide, numeric.FromInt64(1234), numeric.FromInt64(99))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s R %s via %s\n", out.Result, out.Remainder, out.Rule)

	// Output:
	// 12 R 46 via nikhilam
}

// ExampleEngine_EvaluateBatch multiplies two operand slices element-wise.
func ExampleEngine_EvaluateBatch() {
	eng := engine.New()

	as := []numeric.Value{numeric.FromInt64(25), numeric.FromInt64(98), numeric.FromInt64(46)}
	bs := []numeric.Value{numeric.FromInt64(25), numeric.FromInt64(97), numeric.FromInt64(44)}

	results, err := eng.EvaluateBatch(dispatch.OpMultiply, as, bs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Println(r)
	}

	// Output:
	// 625
	// 9506
	// 2024
}
