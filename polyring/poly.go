package polyring

import (
	"fmt"
	"strings"

	"github.com/orelab/drinfeld/ffield"
)

// Poly is an immutable polynomial over a finite field, stored as a dense
// normalized coefficient vector, constant term first. The zero polynomial
// has an empty vector and degree -1.
type Poly struct {
	ring   *Ring
	coeffs []ffield.Elem
}

// Ring returns the ring the polynomial belongs to.
func (p *Poly) Ring() *Ring {
	return p.ring
}

// Degree returns the degree of the polynomial, -1 for the zero polynomial.
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

// Coeff returns the coefficient of X^i, the zero element above the degree.
func (p *Poly) Coeff(i int) ffield.Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.base.Zero()
	}
	return p.coeffs[i]
}

// Equal returns true if p and q are the same polynomial of the same ring.
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

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	p.checkRing(q)
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	coeffs := make([]ffield.Elem, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = p.ring.base.Zero()
	}
	for i, pi := range p.coeffs {
		if pi.IsZero() {
			continue
		}
		for j, qj := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(pi.Mul(qj))
		}
	}
	return p.ring.New(coeffs)
}

// Eval evaluates p at a point of the base field by Horner's rule.
func (p *Poly) Eval(x ffield.Elem) ffield.Elem {
	if !x.Field().Equal(p.ring.base) {
		panic(fmt.Errorf("point of %s is not in %s", x.Field(), p.ring.base))
	}
	acc := p.ring.base.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// String writes p with descending degrees, e.g. "X^3 + X + 5".
// Multi-term coefficients are parenthesized.
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
