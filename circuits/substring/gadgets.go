package substring

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

func init() {
	solver.RegisterHint(inverseOrZeroHint)
}

// inverseOrZeroHint computes the auxiliary witness for IsZero:
// the field inverse of the input, or 0 when the input is 0.
func inverseOrZeroHint(mod *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 1 {
		return errors.New("inverseOrZeroHint expects one input and one output")
	}
	v := new(big.Int).Mod(inputs[0], mod)
	if v.Sign() == 0 {
		outputs[0].SetUint64(0)
		return nil
	}
	outputs[0].ModInverse(v, mod)
	return nil
}

// IsZero returns a boolean r with r = 1 iff v = 0.
//
// The hint supplies m = v^-1 (or 0 when v = 0) and the relation
//
//	r = 1 - v*m
//	v * r = 0
//
// pins r: for v != 0 the second constraint forces r = 0 and hence m = v^-1,
// for v = 0 the first constraint forces r = 1 whatever m the prover supplies.
func IsZero(api frontend.API, v frontend.Variable) frontend.Variable {
	res, err := api.Compiler().NewHint(inverseOrZeroHint, 1, v)
	if err != nil {
		panic(err)
	}
	m := res[0]
	r := api.Sub(1, api.Mul(v, m))
	api.AssertIsEqual(api.Mul(v, r), 0)
	return r
}

// IsEqual returns a boolean r with r = 1 iff a = b.
func IsEqual(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return IsZero(api, api.Sub(a, b))
}

// AssertBoolean constrains b to {0, 1} via b*(1-b) = 0.
func AssertBoolean(api frontend.API, b frontend.Variable) {
	api.AssertIsEqual(api.Mul(b, api.Sub(1, b)), 0)
}

// And returns a*b. Boolean when both inputs are.
func And(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return api.Mul(a, b)
}

// Or returns a + b - a*b. Boolean when both inputs are.
func Or(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return api.Sub(api.Add(a, b), api.Mul(a, b))
}

// Not returns 1 - a.
func Not(api frontend.API, a frontend.Variable) frontend.Variable {
	return api.Sub(1, a)
}
