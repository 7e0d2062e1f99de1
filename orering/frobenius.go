// Package orering implements skew (Ore) polynomial rings over a finite
// field, with multiplication twisted by a power of the Frobenius
// endomorphism and, optionally, an inner derivation.
package orering

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/utils"
)

// Frobenius is the endomorphism x |--> x^(p^power) of a finite field of
// characteristic p. The power counts iterations of the absolute
// Frobenius, so the power of the Frobenius of GF(q) relative to a
// subfield GF(p^d) is d.
type Frobenius struct {
	field *ffield.Field
	power int
}

// NewFrobenius returns the endomorphism x |--> x^(p^power) of the field.
func NewFrobenius(field *ffield.Field, power int) (*Frobenius, error) {
	if power < 0 {
		return nil, fmt.Errorf("invalid Frobenius power: %d", power)
	}
	return &Frobenius{field: field, power: power}, nil
}

// Field returns the field the endomorphism acts on.
func (f *Frobenius) Field() *ffield.Field {
	return f.field
}

// Power returns the number of absolute-Frobenius iterations.
func (f *Frobenius) Power() int {
	return f.power
}

// Order returns the order of the endomorphism in the automorphism group
// of the field, i.e. the smallest k >= 1 with frob^k the identity.
func (f *Frobenius) Order() int {
	n := f.field.Degree()
	return n / utils.GCD(f.power, n)
}

// Apply returns x^(p^power).
func (f *Frobenius) Apply(x ffield.Elem) ffield.Elem {
	if !x.Field().Equal(f.field) {
		panic(fmt.Errorf("element of %s is not in %s", x.Field(), f.field))
	}
	return x.Frobenius(f.power)
}

// IterApply returns the k-th iterate of the endomorphism at x.
func (f *Frobenius) IterApply(k int, x ffield.Elem) ffield.Elem {
	if k < 0 {
		panic(fmt.Errorf("negative iterate: %d", k))
	}
	return x.Frobenius(f.power * k)
}

// Equal returns true if both descriptors present the same endomorphism.
func (f *Frobenius) Equal(other *Frobenius) bool {
	if other == nil {
		return false
	}
	return f.field.Equal(other.field) && f.power == other.power
}

// String returns a description of the map, e.g. "z6 |--> z6^(7^2)".
func (f *Frobenius) String() string {
	name := f.field.GenName()
	return fmt.Sprintf("%s |--> %s^(%d^%d)", name, name, f.field.Characteristic(), f.power)
}

// Derivation is an inner frob-derivation of a finite field: the map
// a |--> c*(frob(a) - a), which satisfies the twisted Leibniz rule
// d(a*b) = frob(a)*d(b) + d(a)*b.
type Derivation struct {
	c    ffield.Elem
	frob *Frobenius
}

// Apply evaluates the derivation.
func (d *Derivation) Apply(a ffield.Elem) ffield.Elem {
	return d.c.Mul(d.frob.Apply(a).Sub(a))
}
