package claimproof

import (
	"fmt"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"claimproof/circuits/substring"
)

var log = logger.Logger().With().Str("package", "claimproof").Logger()

// SetLogger replaces the package logger. The default writes wherever gnark's
// own logger does.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Prove generates a proof bundle for one claim statement. The heavy work on
// first use is the per-capacity Groth16 setup; subsequent proofs with the
// same capacities reuse the cached keys.
func Prove(stmt *ClaimStatement) (*Bundle, error) {
	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	// Fail fast natively: an impossible claim would only surface later as an
	// unsatisfiable constraint system deep inside proof generation.
	if !stmt.occurs() {
		return nil, fmt.Errorf("%w: no %d-byte match at offset %d",
			ErrClaimMismatch, len(stmt.Claim), stmt.StartIndex)
	}

	keys, err := substring.Setup(stmt.Params)
	if err != nil {
		return nil, err
	}

	input, err := stmt.witnessInput()
	if err != nil {
		return nil, err
	}

	result, err := substring.Prove(keys, input)
	if err != nil {
		return nil, fmt.Errorf("proving failed: %w", err)
	}

	vkBytes, err := keys.VerifyingKeyBytes()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("claimLen", len(stmt.Claim)).
		Int("startIndex", stmt.StartIndex).
		Dur("provingTime", result.ProvingTime).
		Int("constraints", result.Constraints).
		Msg("claim proved")

	return &Bundle{
		Version:      BundleVersion,
		MaxStrLen:    stmt.Params.MaxStrLen,
		MaxSubstrLen: stmt.Params.MaxSubstrLen,
		StrHash:      input.StrHash,
		Claim:        input.Substr,
		StartIndex:   stmt.StartIndex,
		CircuitID:    substring.CircuitID(vkBytes),
		Proof:        result.Proof,
	}, nil
}
