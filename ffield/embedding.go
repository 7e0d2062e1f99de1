package ffield

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/orelab/drinfeld/utils"
)

// ErrNotSubfield is returned when attempting to embed a field into one
// that does not contain it.
var ErrNotSubfield = errors.New("not a subfield")

// Embedding is the canonical embedding of a subfield into an extension.
// With both fields presented on Conway polynomials it maps the subfield
// generator z_m to z_n^((p^n-1)/(p^m-1)), which is a root of C_{p,m} in
// the larger field, so the map is a well defined field morphism and
// composes consistently across towers.
type Embedding struct {
	sub, super *Field
	image      Elem // image of the subfield generator
}

// NewEmbedding returns the canonical embedding of sub into super.
func NewEmbedding(sub, super *Field) (*Embedding, error) {
	if !sub.IsSubfieldOf(super) {
		return nil, fmt.Errorf("cannot embed %s into %s: %w", sub, super, ErrNotSubfield)
	}
	e := new(big.Int).Sub(super.Order(), big.NewInt(1))
	e.Div(e, new(big.Int).Sub(sub.Order(), big.NewInt(1)))
	return &Embedding{
		sub:   sub,
		super: super,
		image: super.Gen().Exp(e),
	}, nil
}

// Domain returns the subfield.
func (emb *Embedding) Domain() *Field {
	return emb.sub
}

// Codomain returns the extension field.
func (emb *Embedding) Codomain() *Field {
	return emb.super
}

// Apply maps an element of the subfield to its image in the extension.
func (emb *Embedding) Apply(x Elem) Elem {
	if !x.Field().Equal(emb.sub) {
		panic(fmt.Errorf("element of %s is not in the embedding domain %s", x.Field(), emb.sub))
	}
	// Horner evaluation of the coordinate vector at the generator image.
	acc := emb.super.Zero()
	coeffs := x.Coeffs()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(emb.image).Add(emb.super.FromUint64(coeffs[i]))
	}
	return acc
}

// Preimage maps an element of the extension back to the subfield. It
// errors if the element does not lie in the image of the embedding.
func (emb *Embedding) Preimage(y Elem) (Elem, error) {
	if !y.Field().Equal(emb.super) {
		return Elem{}, fmt.Errorf("element of %s is not in the embedding codomain %s", y.Field(), emb.super)
	}

	// Solve the F_p-linear system M*c = y, where the columns of M are the
	// power-basis coordinates of image^j, j = 0, ..., m-1.
	p := emb.sub.p
	n := emb.super.n
	m := emb.sub.n

	rows := make([][]uint64, n)
	for i := range rows {
		rows[i] = make([]uint64, m+1)
	}
	pow := emb.super.One()
	for j := 0; j < m; j++ {
		for i, c := range pow.coeffs {
			rows[i][j] = c
		}
		pow = pow.Mul(emb.image)
	}
	for i, c := range y.coeffs {
		rows[i][m] = c
	}

	// Gaussian elimination modulo p.
	var rank int
	for col := 0; col < m; col++ {
		pivot := -1
		for r := rank; r < n; r++ {
			if rows[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			// The columns of M are linearly independent, since the image
			// of the generator has degree m over the prime field.
			panic(fmt.Errorf("degenerate embedding of %s into %s", emb.sub, emb.super))
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		inv := utils.ModExp(rows[rank][col], p-2, p)
		for k := col; k <= m; k++ {
			rows[rank][k] = (rows[rank][k] * inv) % p
		}
		for r := 0; r < n; r++ {
			if r == rank || rows[r][col] == 0 {
				continue
			}
			f := rows[r][col]
			for k := col; k <= m; k++ {
				rows[r][k] = (rows[r][k] + (p-f)*rows[rank][k]%p) % p
			}
		}
		rank++
	}
	for r := rank; r < n; r++ {
		if rows[r][m] != 0 {
			return Elem{}, fmt.Errorf("%s is not in the image of %s", y, emb.sub)
		}
	}

	coeffs := make([]uint64, m)
	for j := 0; j < m; j++ {
		coeffs[j] = rows[j][m]
	}
	return Elem{field: emb.sub, coeffs: coeffs}, nil
}
