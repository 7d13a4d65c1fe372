package claimproof

import (
	"fmt"

	"claimproof/circuits/substring"
)

// Verify checks a proof bundle against a pinned verifying key, structural
// checks first, cryptographic check last:
//
//  1. Version and capacity sanity
//  2. Circuit identity against the pinned key
//  3. The Groth16 proof over the bundle's public inputs
//
// The verifier learns only that the committed document contains the claim at
// the stated offset; a failed proof carries no reason beyond rejection.
func Verify(bundle *Bundle, pinnedVK []byte) error {
	if bundle.Version != BundleVersion {
		return fmt.Errorf("%w: have %q, want %q", ErrVersionMismatch, bundle.Version, BundleVersion)
	}

	p := bundle.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	if len(bundle.Claim) > p.MaxSubstrLen {
		return fmt.Errorf("%w: claim length %d, capacity %d", ErrCapacity, len(bundle.Claim), p.MaxSubstrLen)
	}
	if bundle.StartIndex < 0 || bundle.StartIndex+len(bundle.Claim) > p.MaxStrLen {
		return fmt.Errorf("%w: [%d, %d) in capacity %d", ErrWindowOutOfRange,
			bundle.StartIndex, bundle.StartIndex+len(bundle.Claim), p.MaxStrLen)
	}

	if len(bundle.Proof) == 0 {
		return ErrMissingProof
	}

	if id := substring.CircuitID(pinnedVK); bundle.CircuitID != id {
		return fmt.Errorf("%w: have %s, want %s", ErrCircuitIDMismatch, bundle.CircuitID, id)
	}

	input := &substring.WitnessInput{
		StrHash:    bundle.StrHash,
		Substr:     bundle.Claim,
		StartIndex: bundle.StartIndex,
	}
	if err := substring.VerifyWithPinnedVK(pinnedVK, bundle.Proof, p, input); err != nil {
		return fmt.Errorf("bundle verification failed: %w", err)
	}

	return nil
}
