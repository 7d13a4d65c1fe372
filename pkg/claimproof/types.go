// Package claimproof orchestrates substring-inclusion proofs: it turns
// application-level claim statements into circuit witnesses, wraps proofs in
// transferrable bundles, and verifies bundles against a pinned circuit key.
//
// The document never leaves the prover; a bundle carries only the commitment,
// the claimed substring, the window, and the proof.
package claimproof

import (
	"bytes"
	"errors"
	"fmt"

	"claimproof/circuits/substring"
)

// Validation errors
var (
	ErrCapacity          = errors.New("capacity exceeded")
	ErrWindowOutOfRange  = errors.New("claim window out of range")
	ErrClaimMismatch     = errors.New("claim does not match document")
	ErrVersionMismatch   = errors.New("bundle version mismatch")
	ErrCircuitIDMismatch = errors.New("circuit ID mismatch")
	ErrMissingProof      = errors.New("missing proof")
)

// ClaimStatement is one claim to be proved: the Claim bytes occur in Document
// at StartIndex. Document stays private; everything else becomes public.
type ClaimStatement struct {
	Params     substring.Params
	Document   []byte
	Claim      []byte
	StartIndex int
}

// Validate checks the statement against the capacities and window invariants.
// It does not check that the claim actually occurs; that is the proof's job.
func (s *ClaimStatement) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if len(s.Document) > s.Params.MaxStrLen {
		return fmt.Errorf("%w: document length %d, capacity %d", ErrCapacity, len(s.Document), s.Params.MaxStrLen)
	}
	if len(s.Claim) > s.Params.MaxSubstrLen {
		return fmt.Errorf("%w: claim length %d, capacity %d", ErrCapacity, len(s.Claim), s.Params.MaxSubstrLen)
	}
	if s.StartIndex < 0 || s.StartIndex+len(s.Claim) > s.Params.MaxStrLen {
		return fmt.Errorf("%w: [%d, %d) in capacity %d", ErrWindowOutOfRange,
			s.StartIndex, s.StartIndex+len(s.Claim), s.Params.MaxStrLen)
	}
	return nil
}

// Commitment returns the polynomial-hash commitment to the zero-padded
// document.
func (s *ClaimStatement) Commitment() ([]byte, error) {
	return substring.CommitBytes(s.Document, s.Params.MaxStrLen)
}

// occurs reports whether the claim holds natively. Positions past the
// document's logical length count as zero, matching the padding convention
// the commitment is defined over.
func (s *ClaimStatement) occurs() bool {
	for j, c := range s.Claim {
		i := s.StartIndex + j
		var have byte
		if i < len(s.Document) {
			have = s.Document[i]
		}
		if have != c {
			return false
		}
	}
	return true
}

// witnessInput assembles the circuit-facing input for this statement.
func (s *ClaimStatement) witnessInput() (*substring.WitnessInput, error) {
	strHash, err := s.Commitment()
	if err != nil {
		return nil, err
	}
	return &substring.WitnessInput{
		Str:        bytes.Clone(s.Document),
		StrHash:    strHash,
		Substr:     bytes.Clone(s.Claim),
		StartIndex: s.StartIndex,
	}, nil
}
