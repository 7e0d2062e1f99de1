package orering

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
)

// Ring is an immutable descriptor of the skew polynomial ring L{t} over
// a finite field L, with multiplication twisted by a Frobenius power:
// t*c = frob(c)*t for constants c. When a derivation d is present the
// commutation rule becomes t*c = frob(c)*t + d(c).
type Ring struct {
	base    *ffield.Field
	frob    *Frobenius
	deriv   *Derivation
	varName string
}

// NewRing returns the skew polynomial ring in t over the field, twisted
// by the given Frobenius power, without derivation.
func NewRing(base *ffield.Field, frob *Frobenius) (*Ring, error) {
	if !frob.Field().Equal(base) {
		return nil, fmt.Errorf("twisting morphism of %s cannot twist %s", frob.Field(), base)
	}
	return &Ring{base: base, frob: frob, varName: "t"}, nil
}

// NewRingWithDerivation returns the skew polynomial ring twisted by the
// given Frobenius power and carrying the inner derivation
// a |--> c*(frob(a) - a).
func NewRingWithDerivation(base *ffield.Field, frob *Frobenius, c ffield.Elem) (*Ring, error) {
	if !frob.Field().Equal(base) {
		return nil, fmt.Errorf("twisting morphism of %s cannot twist %s", frob.Field(), base)
	}
	if !c.Field().Equal(base) {
		return nil, fmt.Errorf("derivation constant of %s is not in %s", c.Field(), base)
	}
	return &Ring{
		base:    base,
		frob:    frob,
		deriv:   &Derivation{c: c, frob: frob},
		varName: "t",
	}, nil
}

// BaseField returns the coefficient field.
func (r *Ring) BaseField() *ffield.Field {
	return r.base
}

// TwistingMorphism returns the Frobenius power twisting the
// multiplication.
func (r *Ring) TwistingMorphism() *Frobenius {
	return r.frob
}

// TwistingDerivation returns the derivation component, nil for a pure
// twist.
func (r *Ring) TwistingDerivation() *Derivation {
	return r.deriv
}

// VarName returns the print name of the skew indeterminate.
func (r *Ring) VarName() string {
	return r.varName
}

// Equal returns true if both descriptors present the same ring.
func (r *Ring) Equal(other *Ring) bool {
	if other == nil {
		return false
	}
	if (r.deriv == nil) != (other.deriv == nil) {
		return false
	}
	if r.deriv != nil && !r.deriv.c.Equal(other.deriv.c) {
		return false
	}
	return r.base.Equal(other.base) && r.frob.Equal(other.frob) && r.varName == other.varName
}

// String returns a description of the ring, e.g.
// "Ore Polynomial Ring in t over Finite Field in z6 of size 7^6 twisted
// by z6 |--> z6^(7^2)".
func (r *Ring) String() string {
	s := fmt.Sprintf("Ore Polynomial Ring in %s over %s twisted by %s", r.varName, r.base, r.frob)
	if r.deriv != nil {
		s += " and an inner derivation"
	}
	return s
}

// New builds the skew polynomial with the given coefficients, constant
// term first. Coefficients must belong to the base field; leading zeros
// are trimmed.
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

// NewFromUint64 builds the skew polynomial whose coefficients are the
// images of the given integers in the base field, constant term first.
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

// Gen returns the skew indeterminate t.
func (r *Ring) Gen() *Poly {
	return r.Monomial(r.base.One(), 1)
}

// Monomial returns the skew polynomial c*t^k.
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
