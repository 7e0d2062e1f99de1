package orering

import (
	"fmt"
	"strings"

	"github.com/orelab/drinfeld/ffield"
)

// Poly is an immutable skew polynomial, stored as a dense normalized
// coefficient vector, constant term first. The zero polynomial has an
// empty vector and degree -1.
type Poly struct {
	ring   *Ring
	coeffs []ffield.Elem
}

// Ring returns the ring the skew polynomial belongs to.
func (p *Poly) Ring() *Ring {
	return p.ring
}

// Degree returns the degree in t, -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant returns true if p has degree at most 0.
func (p *Poly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// Coeff returns the coefficient of t^i, the zero element above the degree.
func (p *Poly) Coeff(i int) ffield.Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.base.Zero()
	}
	return p.coeffs[i]
}

// Equal returns true if p and q are the same element of the same ring.
func (p *Poly) Equal(q *Poly) bool {
	if q == nil || !p.ring.Equal(q.ring) || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

func (p *Poly) checkRing(q *Poly) {
	if !p.ring.Equal(q.ring) {
		panic(fmt.Errorf("mismatched rings: %s != %s", p.ring, q.ring))
	}
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.checkRing(q)
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]ffield.Elem, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return p.ring.New(coeffs)
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	p.checkRing(q)
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]ffield.Elem, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i).Sub(q.Coeff(i))
	}
	return p.ring.New(coeffs)
}

// ScalarMul returns c*p, the left multiplication by a constant.
func (p *Poly) ScalarMul(c ffield.Elem) *Poly {
	coeffs := make([]ffield.Elem, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = c.Mul(p.coeffs[i])
	}
	return p.ring.New(coeffs)
}

// mulByGen returns t*p, using the commutation rule
// t*c = frob(c)*t (+ deriv(c) when the ring carries a derivation).
func (p *Poly) mulByGen() *Poly {
	r := p.ring
	coeffs := make([]ffield.Elem, len(p.coeffs)+1)
	for i := range coeffs {
		coeffs[i] = r.base.Zero()
	}
	for j, c := range p.coeffs {
		coeffs[j+1] = coeffs[j+1].Add(r.frob.Apply(c))
		if r.deriv != nil {
			coeffs[j] = coeffs[j].Add(r.deriv.Apply(c))
		}
	}
	return r.New(coeffs)
}

// Mul returns the twisted product p * q. The product is computed as
// sum_i p_i * (t^i * q), so it respects the non-commutative ring law.
func (p *Poly) Mul(q *Poly) *Poly {
	p.checkRing(q)
	r := p.ring
	if p.IsZero() || q.IsZero() {
		return r.Zero()
	}
	res := r.Zero()
	cur := q
	for i := 0; i < len(p.coeffs); i++ {
		if !p.coeffs[i].IsZero() {
			res = res.Add(cur.ScalarMul(p.coeffs[i]))
		}
		if i < len(p.coeffs)-1 {
			cur = cur.mulByGen()
		}
	}
	return res
}

// Exp returns p^k for a non-negative exponent.
func (p *Poly) Exp(k int) *Poly {
	if k < 0 {
		panic(fmt.Errorf("negative exponent: %d", k))
	}
	res := p.ring.One()
	for i := 0; i < k; i++ {
		res = res.Mul(p)
	}
	return res
}

// Operate evaluates the skew polynomial as the additive map it defines
// on a finite extension of its coefficient field: sum a_i*t^i sends x to
// sum emb(a_i) * x^(q^i), with q the size of the subfield fixed by the
// twist and emb the canonical embedding into the field of x. This is the
// operator evaluation of Ore polynomials, not the evaluation of the
// coefficient vector at a point.
func (p *Poly) Operate(x ffield.Elem) (ffield.Elem, error) {
	r := p.ring
	if r.deriv != nil {
		return ffield.Elem{}, fmt.Errorf("cannot operate with a derivation twist")
	}
	codomain := x.Field()
	emb, err := ffield.NewEmbedding(r.base, codomain)
	if err != nil {
		return ffield.Elem{}, fmt.Errorf("cannot operate on %s: %w", codomain, err)
	}
	power := r.frob.Power()
	res := codomain.Zero()
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		res = res.Add(emb.Apply(c).Mul(x.Frobenius(power * i)))
	}
	return res, nil
}

// String writes p with descending degrees, e.g. "t^2 + 1". Multi-term
// coefficients are parenthesized.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		terms = append(terms, termString(c, p.ring.varName, i))
	}
	return strings.Join(terms, " + ")
}

func termString(c ffield.Elem, varName string, deg int) string {
	cs := c.String()
	if deg == 0 {
		return cs
	}
	v := varName
	if deg > 1 {
		v = fmt.Sprintf("%s^%d", varName, deg)
	}
	if cs == "1" {
		return v
	}
	if strings.Contains(cs, " ") {
		cs = "(" + cs + ")"
	}
	return cs + "*" + v
}
