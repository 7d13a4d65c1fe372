package substring

import (
	"github.com/consensys/gnark/frontend"
)

// startIndicator returns eq[k] = 1 iff start = k, for k in [0, maxStrLen).
// An empty window starting at maxStrLen sets no slot, which is fine: nothing
// is looked up through it.
func startIndicator(api frontend.API, start frontend.Variable, maxStrLen int) []frontend.Variable {
	eq := make([]frontend.Variable, maxStrLen)
	for k := 0; k < maxStrLen; k++ {
		eq[k] = IsEqual(api, start, k)
	}
	return eq
}

// alignedSymbols computes, for every position i of the string,
//
//	aligned[i] = substr[i - start]
//
// as the weighted sum sum_j eqStart[i-j] * substr[j]. The offset is a
// prover-supplied value, so a native array index cannot express the lookup;
// the multiplexer keeps the relation a fixed-degree polynomial. For positions
// with i - start outside [0, len(substr)) the sum is 0, which is harmless:
// those positions are only ever multiplied by a zero indicator.
func alignedSymbols(api frontend.API, eqStart, substr []frontend.Variable, maxStrLen int) []frontend.Variable {
	aligned := make([]frontend.Variable, maxStrLen)
	for i := 0; i < maxStrLen; i++ {
		acc := frontend.Variable(0)
		for j := 0; j < len(substr) && j <= i; j++ {
			acc = api.Add(acc, api.Mul(eqStart[i-j], substr[j]))
		}
		aligned[i] = acc
	}
	return aligned
}
