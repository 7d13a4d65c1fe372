package substring

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/cmp"
)

// selectWindow derives the per-position window indicator from the declared
// start offset and length:
//
//	indicator[i] = (start <= i) AND (i < start+length)
//
// Both comparisons are bounded bit-decomposition comparisons, valid because
// start and length are range-constrained first. The sum invariant
// sum(indicator) = length rules out any non-contiguous indicator set a
// malicious witness could otherwise slip past the per-position implications.
//
// A window that does not fit (start+length > maxStrLen) leaves the system
// unsatisfiable; rejection, not a runtime error.
//
// Returns the indicator array and the boolean sum-invariant facet, which is
// hard-asserted to 1 and feeds the circuit's exposed result.
func selectWindow(api frontend.API, start, length frontend.Variable, maxStrLen, maxSubstrLen int) ([]frontend.Variable, frontend.Variable) {
	api.AssertIsLessOrEqual(start, maxStrLen)
	api.AssertIsLessOrEqual(length, maxSubstrLen)
	end := api.Add(start, length)
	api.AssertIsLessOrEqual(end, maxStrLen)

	// All compared values now live in [0, 2*maxStrLen].
	bc := cmp.NewBoundedComparator(api, big.NewInt(int64(2*maxStrLen)), false)

	indicator := make([]frontend.Variable, maxStrLen)
	sum := frontend.Variable(0)
	for i := 0; i < maxStrLen; i++ {
		afterStart := bc.IsLessEq(start, i)
		beforeEnd := bc.IsLess(i, end)
		indicator[i] = And(api, afterStart, beforeEnd)
		AssertBoolean(api, indicator[i])
		sum = api.Add(sum, indicator[i])
	}
	windowOK := IsEqual(api, sum, length)
	api.AssertIsEqual(windowOK, 1)

	return indicator, windowOK
}
