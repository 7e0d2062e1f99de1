package sampling

import (
	"encoding/binary"
	"math"

	"github.com/orelab/drinfeld/ffield"
)

// UniformSampler reads uniformly distributed finite-field elements from
// a PRNG. Sampling each power-basis digit uses rejection, so the output
// distribution is uniform over the field.
type UniformSampler struct {
	prng  PRNG
	field *ffield.Field
	buf   [8]byte
}

// NewUniformSampler creates a UniformSampler for the given field, reading
// its randomness from prng.
func NewUniformSampler(prng PRNG, field *ffield.Field) *UniformSampler {
	return &UniformSampler{prng: prng, field: field}
}

// ReadNew samples a new uniform field element.
func (s *UniformSampler) ReadNew() ffield.Elem {
	p := s.field.Characteristic()
	bound := p * (math.MaxUint64 / p)
	coeffs := make([]uint64, s.field.Degree())
	for i := range coeffs {
		for {
			if _, err := s.prng.Read(s.buf[:]); err != nil {
				panic(err)
			}
			v := binary.LittleEndian.Uint64(s.buf[:])
			if v < bound {
				coeffs[i] = v % p
				break
			}
		}
	}
	return s.field.NewElem(coeffs)
}

// ReadNewNonZero samples a new uniform non-zero field element.
func (s *UniformSampler) ReadNewNonZero() ffield.Elem {
	for {
		if x := s.ReadNew(); !x.IsZero() {
			return x
		}
	}
}
