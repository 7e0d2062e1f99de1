// Package polyring implements univariate polynomial rings over a finite
// field, with the commutative arithmetic of the dense coefficient
// representation.
package polyring

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
)

// Ring is an immutable descriptor of the polynomial ring K[X] over a
// finite field K.
type Ring struct {
	base    *ffield.Field
	varName string
}

// NewRing returns the univariate polynomial ring in X over the field.
func NewRing(base *ffield.Field) *Ring {
	return &Ring{base: base, varName: "X"}
}

// BaseField returns the coefficient field.
func (r *Ring) BaseField() *ffield.Field {
	return r.base
}

// VarName returns the print name of the indeterminate.
func (r *Ring) VarName() string {
	return r.varName
}

// Equal returns true if both descriptors present the same ring.
func (r *Ring) Equal(other *Ring) bool {
	if other == nil {
		return false
	}
	return r.base.Equal(other.base) && r.varName == other.varName
}

// String returns a description of the ring, e.g.
// "Univariate Polynomial Ring in X over Finite Field in z2 of size 7^2".
func (r *Ring) String() string {
	return fmt.Sprintf("Univariate Polynomial Ring in %s over %s", r.varName, r.base)
}

// New builds the polynomial with the given coefficients, constant term
// first. Coefficients must belong to the base field; leading zeros are
// trimmed.
func (r *Ring) New(coeffs []ffield.Elem) *Poly {
	for _, c := range coeffs {
		if !c.Field().Equal(r.base) {
			panic(fmt.Errorf("coefficient of %s does not belong to %s", c.Field(), r.base))
		}
	}
	d := len(coeffs) - 1
	for d >= 0 && coeffs[d].IsZero() {
		d--
	}
	out := make([]ffield.Elem, d+1)
	copy(out, coeffs[:d+1])
	return &Poly{ring: r, coeffs: out}
}

// NewFromUint64 builds the polynomial whose coefficients are the images
// of the given integers in the base field, constant term first.
func (r *Ring) NewFromUint64(coeffs []uint64) *Poly {
	elems := make([]ffield.Elem, len(coeffs))
	for i, c := range coeffs {
		elems[i] = r.base.FromUint64(c)
	}
	return r.New(elems)
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r}
}

// One returns the unit polynomial.
func (r *Ring) One() *Poly {
	return r.New([]ffield.Elem{r.base.One()})
}

// Gen returns the indeterminate X.
func (r *Ring) Gen() *Poly {
	return r.Monomial(r.base.One(), 1)
}

// Monomial returns the polynomial c*X^k.
func (r *Ring) Monomial(c ffield.Elem, k int) *Poly {
	if k < 0 {
		panic(fmt.Errorf("negative monomial degree: %d", k))
	}
	coeffs := make([]ffield.Elem, k+1)
	for i := 0; i < k; i++ {
		coeffs[i] = r.base.Zero()
	}
	coeffs[k] = c
	return r.New(coeffs)
}
