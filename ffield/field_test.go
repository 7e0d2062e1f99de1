package ffield_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/utils/sampling"
)

func testField(t *testing.T, p uint64, n int) *ffield.Field {
	t.Helper()
	f, err := ffield.NewField(p, n)
	require.NoError(t, err)
	return f
}

func testSampler(t *testing.T, f *ffield.Field) *sampling.UniformSampler {
	t.Helper()
	prng, err := sampling.NewSeededPRNG([]byte(t.Name()))
	require.NoError(t, err)
	return sampling.NewUniformSampler(prng, f)
}

func TestNewField(t *testing.T) {
	t.Run("RejectsComposite", func(t *testing.T) {
		_, err := ffield.NewField(6, 2)
		require.Error(t, err)
	})

	t.Run("RejectsMissingTableEntry", func(t *testing.T) {
		_, err := ffield.NewField(7, 5)
		require.Error(t, err)
		_, err = ffield.NewField(11, 1)
		require.Error(t, err)
	})

	t.Run("Descriptors", func(t *testing.T) {
		L := testField(t, 7, 6)
		assert.Equal(t, uint64(7), L.Characteristic())
		assert.Equal(t, 6, L.Degree())
		assert.Equal(t, big.NewInt(117649), L.Order())
		assert.Equal(t, "Finite Field in z6 of size 7^6", L.String())

		F7 := testField(t, 7, 1)
		assert.Equal(t, "Finite Field of size 7", F7.String())
	})

	t.Run("Extension", func(t *testing.T) {
		Fq := testField(t, 7, 2)
		L, err := Fq.Extension(3)
		require.NoError(t, err)
		assert.Equal(t, 6, L.Degree())
		_, err = Fq.Extension(5)
		require.Error(t, err)
	})
}

func TestSubfieldRelation(t *testing.T) {
	F7 := testField(t, 7, 1)
	Fq := testField(t, 7, 2)
	L := testField(t, 7, 6)
	F33 := testField(t, 3, 3)

	assert.True(t, Fq.IsSubfieldOf(Fq), "reflexive")
	assert.True(t, F7.IsSubfieldOf(Fq))
	assert.True(t, Fq.IsSubfieldOf(L))
	assert.True(t, F7.IsSubfieldOf(L), "transitive")
	assert.False(t, L.IsSubfieldOf(Fq))
	assert.False(t, F33.IsSubfieldOf(L), "wrong characteristic")
}

func TestElemArithmetic(t *testing.T) {
	for _, params := range [][2]int{{2, 6}, {3, 4}, {7, 6}, {13, 2}} {
		p, n := uint64(params[0]), params[1]
		t.Run(fmt.Sprintf("GF(%d^%d)", p, n), func(t *testing.T) {
			f := testField(t, p, n)
			s := testSampler(t, f)

			for i := 0; i < 16; i++ {
				x, y, z := s.ReadNew(), s.ReadNew(), s.ReadNew()

				assert.True(t, x.Add(y).Equal(y.Add(x)))
				assert.True(t, x.Mul(y).Equal(y.Mul(x)))
				assert.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
				assert.True(t, x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z))))
				assert.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))))
				assert.True(t, x.Sub(y).Add(y).Equal(x))
				assert.True(t, x.Add(x.Neg()).IsZero())
				assert.True(t, x.Mul(f.One()).Equal(x))
				assert.True(t, x.Add(f.Zero()).Equal(x))

				if !x.IsZero() {
					assert.True(t, x.Mul(x.Inv()).Equal(f.One()))
				}
			}
		})
	}
}

func TestFrobenius(t *testing.T) {
	f := testField(t, 7, 6)
	s := testSampler(t, f)

	t.Run("Additive", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			x, y := s.ReadNew(), s.ReadNew()
			assert.True(t, x.Add(y).Frobenius(2).Equal(x.Frobenius(2).Add(y.Frobenius(2))))
		}
	})

	t.Run("FullOrbitIsIdentity", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			x := s.ReadNew()
			assert.True(t, x.Frobenius(f.Degree()).Equal(x))
		}
	})

	t.Run("FixesPrimeField", func(t *testing.T) {
		x := f.FromUint64(5)
		assert.True(t, x.Frobenius(1).Equal(x))
	})
}

func TestElemString(t *testing.T) {
	M := testField(t, 7, 12)
	x := M.NewElem([]uint64{4, 5, 3, 2, 6, 1, 6, 2, 5, 5, 0, 6})
	assert.Equal(t, "6*z12^11 + 5*z12^9 + 5*z12^8 + 2*z12^7 + 6*z12^6 + z12^5 + 6*z12^4 + 2*z12^3 + 3*z12^2 + 5*z12 + 4", x.String())

	assert.Equal(t, "0", M.Zero().String())
	assert.Equal(t, "1", M.One().String())
	assert.Equal(t, "z12", M.Gen().String())

	F7 := testField(t, 7, 1)
	assert.Equal(t, "5", F7.FromUint64(5).String())
}

func TestNewElemReduces(t *testing.T) {
	Fq := testField(t, 7, 2)
	// z2^2 = z2 + 4 modulo the Conway polynomial z2^2 + 6*z2 + 3
	x := Fq.NewElem([]uint64{0, 0, 1})
	assert.True(t, x.Equal(Fq.Gen().Mul(Fq.Gen())))
	assert.Equal(t, []uint64{4, 1}, x.Coeffs())
}
