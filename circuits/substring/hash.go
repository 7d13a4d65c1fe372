package substring

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ComputeCommitment evaluates the string polynomial natively, mirroring the
// in-circuit Commit. Witness construction and tests use this to produce the
// public StrHash input.
func ComputeCommitment(symbols []fr.Element) fr.Element {
	var x, acc fr.Element
	x.SetBigInt(EvaluationPoint())
	for i := len(symbols) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &symbols[i])
	}
	return acc
}

// CommitBytes zero-pads data to maxStrLen symbols (one symbol per byte) and
// returns the 32-byte big-endian commitment. The zero padding is part of the
// committed value; producer and verifier must use the same convention.
func CommitBytes(data []byte, maxStrLen int) ([]byte, error) {
	if len(data) > maxStrLen {
		return nil, fmt.Errorf("string length %d exceeds capacity %d", len(data), maxStrLen)
	}
	symbols := make([]fr.Element, maxStrLen)
	for i, b := range data {
		symbols[i].SetUint64(uint64(b))
	}
	h := ComputeCommitment(symbols)
	out := h.Bytes()
	return out[:], nil
}
