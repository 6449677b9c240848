// Package dispatch_test provides runnable examples for rule selection.
package dispatch_test

import (
	"fmt"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/numeric"
)

// ExampleDispatcher_Multiply shows three operand shapes landing on three
// different rules.
func ExampleDispatcher_Multiply() {
	d := dispatch.New()

	for _, pair := range [][2]int64{{25, 25}, {98, 97}, {46, 44}} {
		out := d.Multiply(numeric.FromInt64(pair[0]), numeric.FromInt64(pair[1]))
		fmt.Printf("%d x %d = %s via %s\n", pair[0], pair[1], out.Result, out.Rule)
	}

	// Output:
	// 25 x 25 = 625 via ekadhikena-purvena
	// 98 x 97 = 9506 via nikhilam
	// 46 x 44 = 2024 via antyayordasake
}

// ExampleDispatcher_Divide shows a verified near-base division.
func ExampleDispatcher_Divide() {
	d := dispatch.New()

	out, err := d.Divide(numeric.FromInt64(1234), numeric.FromInt64(99))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("q=%s r=%s rule=%s corrected=%v\n", out.Result, out.Remainder, out.Rule, out.Corrected)

	// Output:
	// q=12 r=46 rule=nikhilam corrected=false
}
