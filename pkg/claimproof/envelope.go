package claimproof

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"claimproof/circuits/substring"
)

// BundleVersion tags the bundle wire format.
const BundleVersion = "claimproof/1"

// Bundle is the transferrable proof artifact. It carries the public inputs,
// the circuit identity, and the serialized Groth16 proof; never the document.
type Bundle struct {
	Version      string `cbor:"version"`
	MaxStrLen    int    `cbor:"max_str_len"`
	MaxSubstrLen int    `cbor:"max_substr_len"`
	StrHash      []byte `cbor:"str_hash"`
	Claim        []byte `cbor:"claim"`
	StartIndex   int    `cbor:"start_index"`
	CircuitID    string `cbor:"circuit_id"`
	Proof        []byte `cbor:"proof"`
}

var (
	bundleEncMode cbor.EncMode
	bundleDecMode cbor.DecMode
)

func init() {
	var err error
	bundleEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	bundleDecMode, err = cbor.DecOptions{
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Params returns the circuit capacities the bundle was proved under.
func (b *Bundle) Params() substring.Params {
	return substring.Params{MaxStrLen: b.MaxStrLen, MaxSubstrLen: b.MaxSubstrLen}
}

// Encode serializes the bundle as canonical CBOR.
func (b *Bundle) Encode() ([]byte, error) {
	return bundleEncMode.Marshal(b)
}

// DecodeBundle parses a bundle, rejecting unknown fields and indefinite
// lengths, and checks the version tag.
func DecodeBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := bundleDecMode.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("bundle decoding failed: %w", err)
	}
	if b.Version != BundleVersion {
		return nil, fmt.Errorf("%w: have %q, want %q", ErrVersionMismatch, b.Version, BundleVersion)
	}
	return &b, nil
}
