package substring

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// evaluationPointDec is the fixed public point the string polynomial is
// evaluated at. Derived from SHA256("CLAIMPROOF_COMMIT_V1") reduced into the
// BN254 scalar field, so neither prover nor verifier picked it.
const evaluationPointDec = "5073665440344228260907654933470168915801009486225671715872978120401029198767"

// EvaluationPoint returns the fixed evaluation point as a big.Int.
func EvaluationPoint() *big.Int {
	x, ok := new(big.Int).SetString(evaluationPointDec, 10)
	if !ok {
		panic("invalid evaluation point constant")
	}
	return x
}

// Commit evaluates commit = sum_i symbols[i] * x^i at the fixed point x,
// Horner-style from the top coefficient down. Padding symbols past the
// logical length participate in the sum; prover and verifier must agree on
// zero-fill padding for the commitment to mean anything.
func Commit(api frontend.API, symbols []frontend.Variable) frontend.Variable {
	x := EvaluationPoint()
	acc := frontend.Variable(0)
	for i := len(symbols) - 1; i >= 0; i-- {
		acc = api.Add(api.Mul(acc, x), symbols[i])
	}
	return acc
}
