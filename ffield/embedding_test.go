package ffield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orelab/drinfeld/ffield"
)

func TestNewEmbedding(t *testing.T) {
	Fq := testField(t, 7, 2)
	L := testField(t, 7, 6)
	F73 := testField(t, 7, 3)

	_, err := ffield.NewEmbedding(Fq, L)
	require.NoError(t, err)

	_, err = ffield.NewEmbedding(Fq, F73)
	require.ErrorIs(t, err, ffield.ErrNotSubfield)
}

func TestEmbeddingIsFieldMorphism(t *testing.T) {
	Fq := testField(t, 7, 2)
	L := testField(t, 7, 6)
	emb, err := ffield.NewEmbedding(Fq, L)
	require.NoError(t, err)

	assert.True(t, emb.Apply(Fq.One()).Equal(L.One()))
	assert.True(t, emb.Apply(Fq.Zero()).IsZero())

	s := testSampler(t, Fq)
	for i := 0; i < 16; i++ {
		x, y := s.ReadNew(), s.ReadNew()
		assert.True(t, emb.Apply(x.Add(y)).Equal(emb.Apply(x).Add(emb.Apply(y))))
		assert.True(t, emb.Apply(x.Mul(y)).Equal(emb.Apply(x).Mul(emb.Apply(y))))
	}
}

func TestEmbeddingPreimage(t *testing.T) {
	Fq := testField(t, 7, 2)
	L := testField(t, 7, 6)
	emb, err := ffield.NewEmbedding(Fq, L)
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		s := testSampler(t, Fq)
		for i := 0; i < 16; i++ {
			x := s.ReadNew()
			y, err := emb.Preimage(emb.Apply(x))
			require.NoError(t, err)
			assert.True(t, y.Equal(x))
		}
	})

	t.Run("OutsideSubfield", func(t *testing.T) {
		// z6 generates the degree-6 field, so it cannot lie in the image
		// of the quadratic subfield.
		_, err := emb.Preimage(L.Gen())
		require.Error(t, err)
	})
}

func TestEmbeddingTowerConsistency(t *testing.T) {
	Fq := testField(t, 7, 2)
	L := testField(t, 7, 6)
	M := testField(t, 7, 12)

	embQL, err := ffield.NewEmbedding(Fq, L)
	require.NoError(t, err)
	embLM, err := ffield.NewEmbedding(L, M)
	require.NoError(t, err)
	embQM, err := ffield.NewEmbedding(Fq, M)
	require.NoError(t, err)

	s := testSampler(t, Fq)
	for i := 0; i < 16; i++ {
		x := s.ReadNew()
		assert.True(t, embQM.Apply(x).Equal(embLM.Apply(embQL.Apply(x))))
	}
}

func TestEmbeddingIdentity(t *testing.T) {
	L := testField(t, 7, 6)
	emb, err := ffield.NewEmbedding(L, L)
	require.NoError(t, err)

	s := testSampler(t, L)
	for i := 0; i < 8; i++ {
		x := s.ReadNew()
		assert.True(t, emb.Apply(x).Equal(x))
	}
}
