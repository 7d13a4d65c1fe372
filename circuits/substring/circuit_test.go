package substring

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"
)

func testParams() Params {
	return Params{MaxStrLen: 8, MaxSubstrLen: 4}
}

// makeAssignment builds a raw circuit assignment, bypassing WitnessInput so
// tests can claim inconsistent lengths, offsets, and hashes.
func makeAssignment(t *testing.T, p Params, str, substr string, substrLen, startIndex int, strHash *big.Int, expected int) *Circuit {
	t.Helper()

	if strHash == nil {
		hb, err := CommitBytes([]byte(str), p.MaxStrLen)
		if err != nil {
			t.Fatal(err)
		}
		strHash = new(big.Int).SetBytes(hb)
	}

	a := NewCircuit(p)
	a.StrHash = strHash
	for i := range a.Str {
		a.Str[i] = 0
	}
	for i, b := range []byte(str) {
		a.Str[i] = b
	}
	for i := range a.Substr {
		a.Substr[i] = 0
	}
	for i, b := range []byte(substr) {
		a.Substr[i] = b
	}
	a.SubstrLen = substrLen
	a.StartIndex = startIndex
	a.Expected = expected
	return a
}

func TestInclusionHappyPath(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	assert.CheckCircuit(NewCircuit(p),
		// "cdef" really occurs at offset 2 of "abcdefgh"
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 4, 2, nil, 1)),
		// window flush against the start
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "abcd", 4, 0, nil, 1)),
		// window exactly fills the tail: start+len = maxStrLen
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "efgh", 4, 4, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionContentMismatch(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	assert.CheckCircuit(NewCircuit(p),
		// last symbol differs: "cdeg" vs "cdef" at offset 2
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdeg", 4, 2, nil, 1)),
		// right substring, wrong offset
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 4, 3, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionMalformedWindow(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	assert.CheckCircuit(NewCircuit(p),
		// 6+4 = 10 > 8: window hangs past the end of the string
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 4, 6, nil, 1)),
		// declared length above capacity
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 5, 2, nil, 1)),
		// start index past the string, even with an empty window at +1
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "", 0, 9, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionCommitmentMismatch(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	wrongHash := big.NewInt(123456789)

	assert.CheckCircuit(NewCircuit(p),
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 4, 2, wrongHash, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionEmptyWindow(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	assert.CheckCircuit(NewCircuit(p),
		// len 0 accepts regardless of substring content
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "zzzz", 0, 0, nil, 1)),
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "zzzz", 0, 5, nil, 1)),
		// empty window may sit just past the last symbol
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "", 0, 8, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionPaddingIgnored(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	assert.CheckCircuit(NewCircuit(p),
		// only the logical prefix of the substring is constrained: the 'z'
		// past substrLen=3 never touches the string
		test.WithValidAssignment(makeAssignment(t, p, "abcdefgh", "cdez", 3, 2, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionExpectedMustMatch(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	// a true claim with Expected = 0 contradicts the forced result wire
	assert.CheckCircuit(NewCircuit(p),
		test.WithInvalidAssignment(makeAssignment(t, p, "abcdefgh", "cdef", 4, 2, nil, 0)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestInclusionShortString(t *testing.T) {
	assert := test.NewAssert(t)
	p := testParams()

	// logical string shorter than capacity: padding is part of the
	// commitment and matchable like any other symbol region
	assert.CheckCircuit(NewCircuit(p),
		test.WithValidAssignment(makeAssignment(t, p, "abc", "bc", 2, 1, nil, 1)),
		test.WithInvalidAssignment(makeAssignment(t, p, "abc", "bcd", 3, 1, nil, 1)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"ok", Params{MaxStrLen: 8, MaxSubstrLen: 4}, false},
		{"equal capacities", Params{MaxStrLen: 4, MaxSubstrLen: 4}, false},
		{"zero str capacity", Params{MaxStrLen: 0, MaxSubstrLen: 4}, true},
		{"zero substr capacity", Params{MaxStrLen: 8, MaxSubstrLen: 0}, true},
		{"substr larger than str", Params{MaxStrLen: 4, MaxSubstrLen: 8}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
