package substring

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
)

// VerifyingKeyBytes returns the serialized verifying key, suitable for
// pinning on the verifier side.
func (keys *ProvingKeys) VerifyingKeyBytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := keys.VK.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CircuitID identifies a circuit by the SHA256 of its serialized verifying
// key. Verifiers compare it against the ID of their pinned key before
// checking any proof.
func CircuitID(vkBytes []byte) string {
	sum := sha256.Sum256(vkBytes)
	return hex.EncodeToString(sum[:])
}

// VerifyWithPinnedVK verifies an inclusion proof using only the caller's
// pinned verifying key. The prover never supplies the key, so a proof for a
// different circuit (or a forged key) cannot pass.
func VerifyWithPinnedVK(vkBytes, proofBytes []byte, p Params, input *WitnessInput) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid circuit parameters: %w", err)
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return fmt.Errorf("verifying key deserialization failed: %w", err)
	}

	publicWitness, err := input.publicAssignment(p)
	if err != nil {
		return err
	}

	pubWitness, err := frontend.NewWitness(publicWitness, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("proof deserialization failed: %w", err)
	}

	if err := groth16.Verify(proof, vk, pubWitness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}

	return nil
}
