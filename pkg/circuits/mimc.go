package circuits

import (
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// MiMCHasher computes commitments locally with MiMC over the bn254 scalar
// field. Each input is reduced into one field element before hashing.
type MiMCHasher struct{}

// NewMiMCHasher creates a local hasher.
func NewMiMCHasher() *MiMCHasher {
	return &MiMCHasher{}
}

// Hash returns the MiMC digest of inputs.
func (MiMCHasher) Hash(_ context.Context, inputs ...[]byte) ([32]byte, error) {
	h := mimc.NewMiMC()
	for i, in := range inputs {
		var e fr.Element
		e.SetBytes(in)
		b := e.Bytes()
		if _, err := h.Write(b[:]); err != nil {
			return [32]byte{}, fmt.Errorf("mimc input %d: %w", i, err)
		}
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}
