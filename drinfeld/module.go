// Package drinfeld implements finite Drinfeld modules: ring morphisms
// phi from a polynomial ring Fq[X] into a skew polynomial ring L{t}
// twisted by the relative Frobenius of Fq, determined by the image of X,
// together with the Fq[X]-module action they induce on finite extensions
// of L.
package drinfeld

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/orering"
	"github.com/orelab/drinfeld/polyring"
)

// DrinfeldModule is a finite Drinfeld module. It is immutable once
// constructed; all validation happens in New and no accessor can fail.
type DrinfeldModule struct {
	phi  RingMap
	rank int
}

// checkBaseFields verifies that L is a finite field containing Fq as a
// subfield.
func checkBaseFields(Fq, L *ffield.Field) error {
	if L == nil {
		return fmt.Errorf("cannot check base fields: %w", ErrNotFiniteField)
	}
	if !Fq.IsSubfieldOf(L) {
		return ErrIncompatibleFields
	}
	return nil
}

// New constructs the finite Drinfeld module sending the generator X of
// polring to gen. The arguments are validated eagerly, in order: gen is
// a skew polynomial, the coefficient field of its ring is a finite
// extension of the base field of polring, the skew ring carries no
// derivation, its twist is the Frobenius x |--> x^(#Fq), and gen is not
// constant. The first violation is reported and no partial module
// escapes.
func New(polring *polyring.Ring, gen *orering.Poly) (*DrinfeldModule, error) {
	if polring == nil {
		return nil, ErrNotPolynomialRing
	}
	if gen == nil {
		return nil, ErrNotSkewPolynomial
	}

	Fq := polring.BaseField()
	oreRing := gen.Ring()
	L := oreRing.BaseField()

	if err := checkBaseFields(Fq, L); err != nil {
		return nil, err
	}
	if oreRing.TwistingDerivation() != nil {
		return nil, ErrUnsupportedDerivation
	}
	if oreRing.TwistingMorphism().Power() != Fq.Degree() {
		return nil, ErrWrongTwist
	}
	if gen.IsConstant() {
		return nil, ErrConstantGenerator
	}

	return &DrinfeldModule{
		phi:  newRingMap(polring, gen),
		rank: gen.Degree(),
	}, nil
}

// Rank returns the degree of the generator image in the skew variable.
func (phi *DrinfeldModule) Rank() int {
	return phi.rank
}

// Gen returns the image of X.
func (phi *DrinfeldModule) Gen() *orering.Poly {
	return phi.phi.Image()
}

// PolRing returns the domain of the module.
func (phi *DrinfeldModule) PolRing() *polyring.Ring {
	return phi.phi.Domain()
}

// OrePolRing returns the codomain of the module.
func (phi *DrinfeldModule) OrePolRing() *orering.Ring {
	return phi.phi.Codomain()
}

// Frobenius returns the twisting morphism of the codomain.
func (phi *DrinfeldModule) Frobenius() *orering.Frobenius {
	return phi.phi.Codomain().TwistingMorphism()
}

// Map returns the underlying ring morphism.
func (phi *DrinfeldModule) Map() RingMap {
	return phi.phi
}

// ChangeRing returns a new Drinfeld module with the same function ring
// and rank, whose codomain is the skew polynomial ring over R twisted by
// the same Frobenius power, the generator coefficients being re-embedded
// through the canonical embedding. R must be a finite extension of the
// current coefficient field. The receiver is left untouched.
func (phi *DrinfeldModule) ChangeRing(R *ffield.Field) (*DrinfeldModule, error) {
	if R == nil {
		return nil, ErrNotFiniteField
	}
	L := phi.OrePolRing().BaseField()
	if !L.IsSubfieldOf(R) {
		return nil, ErrNotAnExtension
	}
	if err := checkBaseFields(phi.PolRing().BaseField(), R); err != nil {
		return nil, err
	}

	frob, err := orering.NewFrobenius(R, phi.Frobenius().Power())
	if err != nil {
		return nil, err
	}
	oreRing, err := orering.NewRing(R, frob)
	if err != nil {
		return nil, err
	}

	emb, err := ffield.NewEmbedding(L, R)
	if err != nil {
		return nil, err
	}
	gen := phi.Gen()
	coeffs := make([]ffield.Elem, gen.Degree()+1)
	for i := range coeffs {
		coeffs[i] = emb.Apply(gen.Coeff(i))
	}

	return New(phi.PolRing(), oreRing.New(coeffs))
}

// Characteristic returns the Fq[X]-characteristic of the module: the
// minimal polynomial over Fq of the constant coefficient of the
// generator image, a monic prime polynomial of the function ring.
func (phi *DrinfeldModule) Characteristic() *polyring.Poly {
	Fq := phi.PolRing().BaseField()
	L := phi.OrePolRing().BaseField()
	q := Fq.Order()
	omega := phi.Gen().Coeff(0)

	// Orbit of omega under the relative Frobenius x |--> x^q.
	conjugates := []ffield.Elem{omega}
	for c := omega.Exp(q); !c.Equal(omega); c = c.Exp(q) {
		conjugates = append(conjugates, c)
	}

	// Minimal polynomial as the product of (Y - conjugate) over L[Y].
	LY := polyring.NewRing(L)
	minpoly := LY.One()
	for _, c := range conjugates {
		minpoly = minpoly.Mul(LY.New([]ffield.Elem{c.Neg(), L.One()}))
	}

	// The coefficients are Galois-invariant, hence in the image of Fq.
	emb, err := ffield.NewEmbedding(Fq, L)
	if err != nil {
		panic(err)
	}
	coeffs := make([]ffield.Elem, minpoly.Degree()+1)
	for i := range coeffs {
		c, err := emb.Preimage(minpoly.Coeff(i))
		if err != nil {
			panic(err)
		}
		coeffs[i] = c
	}
	return phi.PolRing().New(coeffs)
}

// String returns the textual summary of the module, e.g.
// "Finite Drinfeld module from Univariate Polynomial Ring in X over
// Finite Field in z2 of size 7^2 over Finite Field in z6 of size 7^6
// generated by t^2 + 1."
func (phi *DrinfeldModule) String() string {
	return fmt.Sprintf("Finite Drinfeld module from %s over %s generated by %s.",
		phi.PolRing(), phi.OrePolRing().BaseField(), phi.Gen())
}

// Latex returns a mathematical-typesetting form of the module: the map
// between the two rings, the image of X, and the characteristic.
func (phi *DrinfeldModule) Latex() string {
	return fmt.Sprintf("\\text{Finite Drinfeld module defined by}\n"+
		"\\begin{align}\n"+
		"  \\text{%s}\n"+
		"  &\\to \\text{%s} \\\\\n"+
		"  %s\n"+
		"  &\\mapsto %s\n"+
		"\\end{align}\n"+
		"\\text{with characteristic } %s",
		phi.PolRing(), phi.OrePolRing(), phi.PolRing().VarName(), phi.Gen(), phi.Characteristic())
}
