package substring

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
)

// ProverResult contains proving metrics and the proof artifact
type ProverResult struct {
	Proof       []byte
	ProvingTime time.Duration
	Constraints int
	Success     bool
	ErrorMsg    string
}

// ProvingKeys holds the compiled circuit and Groth16 keys for one capacity pair
type ProvingKeys struct {
	Params Params
	PK     groth16.ProvingKey
	VK     groth16.VerifyingKey
	CCS    constraint.ConstraintSystem
}

var (
	keyCache   = make(map[Params]*ProvingKeys)
	keyCacheMu sync.Mutex
)

// Setup compiles the circuit for the given capacities and runs the Groth16
// trusted setup. Results are cached per capacity pair.
func Setup(p Params) (*ProvingKeys, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit parameters: %w", err)
	}

	keyCacheMu.Lock()
	defer keyCacheMu.Unlock()

	if keys, ok := keyCache[p]; ok {
		return keys, nil
	}

	log := logger.Logger().With().Str("circuit", "substring").
		Int("maxStrLen", p.MaxStrLen).Int("maxSubstrLen", p.MaxSubstrLen).Logger()

	start := time.Now()
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewCircuit(p))
	if err != nil {
		return nil, fmt.Errorf("substring circuit compilation failed: %w", err)
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Dur("took", time.Since(start)).
		Msg("circuit compiled")

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}

	keys := &ProvingKeys{Params: p, PK: pk, VK: vk, CCS: ccs}
	keyCache[p] = keys
	return keys, nil
}

// WitnessInput contains the values for proof generation. Str and Substr hold
// the logical bytes; both are zero-padded to capacity internally, and the
// declared substring length is len(Substr).
type WitnessInput struct {
	// Secret witness: the full string
	Str []byte

	// Public inputs
	StrHash    []byte // 32 bytes, commitment to the padded string
	Substr     []byte
	StartIndex int
}

// assignment builds the full witness assignment for the given capacities.
func (in *WitnessInput) assignment(p Params) (*Circuit, error) {
	a, err := in.publicAssignment(p)
	if err != nil {
		return nil, err
	}
	if len(in.Str) > p.MaxStrLen {
		return nil, fmt.Errorf("string length %d exceeds capacity %d", len(in.Str), p.MaxStrLen)
	}
	for i := range a.Str {
		a.Str[i] = 0
	}
	for i, b := range in.Str {
		a.Str[i] = b
	}
	return a, nil
}

// publicAssignment builds an assignment carrying only the public inputs.
func (in *WitnessInput) publicAssignment(p Params) (*Circuit, error) {
	if len(in.Substr) > p.MaxSubstrLen {
		return nil, fmt.Errorf("substring length %d exceeds capacity %d", len(in.Substr), p.MaxSubstrLen)
	}
	if in.StartIndex < 0 {
		return nil, fmt.Errorf("negative start index %d", in.StartIndex)
	}
	a := NewCircuit(p)
	a.StrHash = new(big.Int).SetBytes(in.StrHash)
	for i := range a.Substr {
		a.Substr[i] = 0
	}
	for i, b := range in.Substr {
		a.Substr[i] = b
	}
	a.SubstrLen = len(in.Substr)
	a.StartIndex = in.StartIndex
	a.Expected = 1
	return a, nil
}

// Prove generates an inclusion proof for the given input.
func Prove(keys *ProvingKeys, input *WitnessInput) (*ProverResult, error) {
	startTime := time.Now()
	result := &ProverResult{}

	result.Constraints = keys.CCS.GetNbConstraints()

	witness, err := input.assignment(keys.Params)
	if err != nil {
		result.ErrorMsg = err.Error()
		return result, err
	}

	fullWitness, err := frontend.NewWitness(witness, ecc.BN254.ScalarField())
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("witness creation failed: %v", err)
		return result, err
	}

	proof, err := groth16.Prove(keys.CCS, keys.PK, fullWitness)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("proof generation failed: %v", err)
		return result, err
	}

	var proofBuf bytes.Buffer
	if _, err = proof.WriteTo(&proofBuf); err != nil {
		result.ErrorMsg = fmt.Sprintf("proof serialization failed: %v", err)
		return result, err
	}

	result.Proof = proofBuf.Bytes()
	result.ProvingTime = time.Since(startTime)
	result.Success = true

	return result, nil
}

// Verify checks an inclusion proof against the public inputs.
func Verify(keys *ProvingKeys, proofBytes []byte, input *WitnessInput) error {
	publicWitness, err := input.publicAssignment(keys.Params)
	if err != nil {
		return err
	}

	pubWitness, err := frontend.NewWitness(publicWitness, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err = proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("proof deserialization failed: %w", err)
	}

	if err := groth16.Verify(proof, keys.VK, pubWitness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}

	return nil
}
