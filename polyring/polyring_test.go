package polyring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/polyring"
	"github.com/orelab/drinfeld/utils/sampling"
)

func testRing(t *testing.T, p uint64, n int) *polyring.Ring {
	t.Helper()
	f, err := ffield.NewField(p, n)
	require.NoError(t, err)
	return polyring.NewRing(f)
}

func testPolySampler(t *testing.T, r *polyring.Ring) func(maxDeg int) *polyring.Poly {
	t.Helper()
	prng, err := sampling.NewSeededPRNG([]byte(t.Name()))
	require.NoError(t, err)
	s := sampling.NewUniformSampler(prng, r.BaseField())
	return func(maxDeg int) *polyring.Poly {
		coeffs := make([]ffield.Elem, maxDeg+1)
		for i := range coeffs {
			coeffs[i] = s.ReadNew()
		}
		return r.New(coeffs)
	}
}

func TestRingDescriptors(t *testing.T) {
	r := testRing(t, 7, 2)
	assert.Equal(t, "Univariate Polynomial Ring in X over Finite Field in z2 of size 7^2", r.String())
	assert.Equal(t, 1, r.Gen().Degree())
	assert.Equal(t, 0, r.One().Degree())
	assert.Equal(t, -1, r.Zero().Degree())
}

func TestNormalization(t *testing.T) {
	r := testRing(t, 7, 2)
	f := r.BaseField()

	p := r.New([]ffield.Elem{f.FromUint64(3), f.Zero(), f.Zero()})
	assert.Equal(t, 0, p.Degree())
	assert.True(t, p.IsConstant())

	zero := r.New([]ffield.Elem{f.Zero(), f.Zero()})
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, zero.Degree())
}

func TestRingLaws(t *testing.T) {
	r := testRing(t, 7, 2)
	sample := testPolySampler(t, r)

	for i := 0; i < 8; i++ {
		a, b, c := sample(4), sample(3), sample(2)

		assert.True(t, a.Add(b).Equal(b.Add(a)))
		assert.True(t, a.Mul(b).Equal(b.Mul(a)))
		assert.True(t, a.Mul(b.Mul(c)).Equal(a.Mul(b).Mul(c)))
		assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))))
		assert.True(t, a.Sub(b).Add(b).Equal(a))
		assert.True(t, a.Mul(r.One()).Equal(a))
		assert.True(t, a.Mul(r.Zero()).IsZero())
	}
}

func TestDegree(t *testing.T) {
	r := testRing(t, 7, 2)
	sample := testPolySampler(t, r)

	for i := 0; i < 8; i++ {
		a, b := sample(4), sample(3)
		if a.IsZero() || b.IsZero() {
			continue
		}
		// no zero divisors over a field
		assert.Equal(t, a.Degree()+b.Degree(), a.Mul(b).Degree())
	}
}

func TestEval(t *testing.T) {
	r := testRing(t, 7, 1)
	f := r.BaseField()

	// X^3 + X + 5 at 2 is 8 + 2 + 5 = 1 mod 7
	p := r.NewFromUint64([]uint64{5, 1, 0, 1})
	assert.True(t, p.Eval(f.FromUint64(2)).Equal(f.FromUint64(1)))

	t.Run("EvalIsRingMorphism", func(t *testing.T) {
		sample := testPolySampler(t, r)
		x := f.FromUint64(3)
		for i := 0; i < 8; i++ {
			a, b := sample(4), sample(3)
			assert.True(t, a.Add(b).Eval(x).Equal(a.Eval(x).Add(b.Eval(x))))
			assert.True(t, a.Mul(b).Eval(x).Equal(a.Eval(x).Mul(b.Eval(x))))
		}
	})
}

func TestPolyString(t *testing.T) {
	r := testRing(t, 7, 2)
	f := r.BaseField()

	p := r.NewFromUint64([]uint64{5, 1, 0, 1})
	assert.Equal(t, "X^3 + X + 5", p.String())

	assert.Equal(t, "0", r.Zero().String())
	assert.Equal(t, "X", r.Gen().String())

	q := r.New([]ffield.Elem{f.Zero(), f.Gen().Add(f.One())})
	assert.Equal(t, "(z2 + 1)*X", q.String())
}
