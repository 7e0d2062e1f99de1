package drinfeld

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/orering"
	"github.com/orelab/drinfeld/polyring"
)

// RingMap is the ring morphism Fq[X] -> L{t} underlying a Drinfeld
// module. It is entirely determined by the image of X: a polynomial
// sum c_i X^i is sent to sum c_i * image^i, computed with the twisted
// arithmetic of the codomain. The value is immutable.
type RingMap struct {
	domain   *polyring.Ring
	codomain *orering.Ring
	image    *orering.Poly
	emb      *ffield.Embedding // coefficient embedding Fq -> L
}

// newRingMap is called after the Drinfeld validation: the coefficient
// field of the codomain is known to contain the domain base field.
func newRingMap(domain *polyring.Ring, image *orering.Poly) RingMap {
	codomain := image.Ring()
	emb, err := ffield.NewEmbedding(domain.BaseField(), codomain.BaseField())
	if err != nil {
		panic(err)
	}
	return RingMap{domain: domain, codomain: codomain, image: image, emb: emb}
}

// Domain returns the polynomial ring the map is defined on.
func (m RingMap) Domain() *polyring.Ring {
	return m.domain
}

// Codomain returns the skew polynomial ring the map lands in.
func (m RingMap) Codomain() *orering.Ring {
	return m.codomain
}

// Image returns the image of the domain generator X.
func (m RingMap) Image() *orering.Poly {
	return m.image
}

// Apply computes the image of a polynomial of the domain: for
// a = sum c_i X^i it returns sum c_i * image^i, evaluated by Horner's
// rule with right multiplications so the twisted products associate the
// right way.
func (m RingMap) Apply(a *polyring.Poly) *orering.Poly {
	if !a.Ring().Equal(m.domain) {
		panic(fmt.Errorf("polynomial of %s is not in the domain %s", a.Ring(), m.domain))
	}
	res := m.codomain.Zero()
	for i := a.Degree(); i >= 0; i-- {
		res = res.Mul(m.image)
		if c := a.Coeff(i); !c.IsZero() {
			res = res.Add(m.codomain.New([]ffield.Elem{m.emb.Apply(c)}))
		}
	}
	return res
}
