// Package substring implements a constraint-system gadget proving that a
// claimed substring occurs at a claimed offset inside a bounded-length
// string, while binding the string to a published polynomial-hash commitment.
//
// The string stays private; the commitment, the substring, and the window are
// public. Every failure mode (wrong commitment, content mismatch, malformed
// window, inconsistent indicator) collapses into unsatisfiability of the
// constraint system, so the only external signal is proof accept/reject.
package substring

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Params are the construction-time capacities of the relation. Each distinct
// pair is a distinct circuit with its own keys.
type Params struct {
	MaxStrLen    int
	MaxSubstrLen int
}

// Validate checks the capacities are usable.
func (p Params) Validate() error {
	if p.MaxStrLen <= 0 {
		return fmt.Errorf("maxStrLen must be positive, have %d", p.MaxStrLen)
	}
	if p.MaxSubstrLen <= 0 {
		return fmt.Errorf("maxSubstrLen must be positive, have %d", p.MaxSubstrLen)
	}
	if p.MaxSubstrLen > p.MaxStrLen {
		return fmt.Errorf("maxSubstrLen %d exceeds maxStrLen %d", p.MaxSubstrLen, p.MaxStrLen)
	}
	return nil
}

// Circuit is the substring-inclusion relation.
//
// It asserts that Str hashes to StrHash under the fixed evaluation point,
// that Str[StartIndex+j] = Substr[j] for every j < SubstrLen, and that the
// window [StartIndex, StartIndex+SubstrLen) fits inside the string. Result
// is the exposed boolean; in any satisfiable assignment it equals 1 and the
// caller-committed Expected value must agree with it.
type Circuit struct {
	// Public inputs
	StrHash    frontend.Variable   `gnark:",public"`
	Substr     []frontend.Variable `gnark:",public"`
	SubstrLen  frontend.Variable   `gnark:",public"`
	StartIndex frontend.Variable   `gnark:",public"`
	Expected   frontend.Variable   `gnark:",public"`

	// Secret witness: the full string, zero-padded to capacity.
	Str []frontend.Variable `gnark:",secret"`
}

// NewCircuit allocates a circuit template for the given capacities.
func NewCircuit(p Params) *Circuit {
	return &Circuit{
		Substr: make([]frontend.Variable, p.MaxSubstrLen),
		Str:    make([]frontend.Variable, p.MaxStrLen),
	}
}

func (c *Circuit) Define(api frontend.API) error {
	maxStrLen := len(c.Str)
	maxSubstrLen := len(c.Substr)
	if maxSubstrLen > maxStrLen {
		return fmt.Errorf("substr capacity %d exceeds str capacity %d", maxSubstrLen, maxStrLen)
	}

	// 1. Commitment check: the string polynomial evaluated at the fixed
	// point must equal the published hash.
	commitOK := IsEqual(api, Commit(api, c.Str), c.StrHash)
	api.AssertIsEqual(commitOK, 1)

	// 2. Window indicator, range-constrained and contiguous.
	indicator, windowOK := selectWindow(api, c.StartIndex, c.SubstrLen, maxStrLen, maxSubstrLen)

	// 3. Wherever the indicator is set, the string symbol must equal the
	// aligned substring symbol. Out-of-window positions stay unconstrained.
	eqStart := startIndicator(api, c.StartIndex, maxStrLen)
	aligned := alignedSymbols(api, eqStart, c.Substr, maxStrLen)
	for i := 0; i < maxStrLen; i++ {
		api.AssertIsEqual(api.Mul(indicator[i], api.Sub(c.Str[i], aligned[i])), 0)
	}

	// 4. The exposed result: forced to 1 whenever the constraints above are
	// satisfiable, and bound to the caller's expectation.
	result := And(api, commitOK, windowOK)
	api.AssertIsEqual(c.Expected, result)

	return nil
}
