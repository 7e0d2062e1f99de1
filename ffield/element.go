package ffield

import (
	"fmt"
	"math/big"
	"strings"
)

// Elem is an immutable element of a Field, stored as its coordinate
// vector in the power basis of the field generator, constant term first.
// All operations return new elements and never mutate their operands.
type Elem struct {
	field  *Field
	coeffs []uint64
}

// NewElem builds the element with the given coordinates, interpreted as a
// polynomial in the field generator. Coordinates are reduced modulo p and
// the vector is reduced modulo the defining polynomial, so its length may
// exceed the field degree.
func (f *Field) NewElem(coeffs []uint64) Elem {
	c := make([]uint64, len(coeffs))
	for i := range coeffs {
		c[i] = coeffs[i] % f.p
	}
	return Elem{field: f, coeffs: f.reduce(c)}
}

// Zero returns the zero element.
func (f *Field) Zero() Elem {
	return Elem{field: f, coeffs: make([]uint64, f.n)}
}

// One returns the unit element.
func (f *Field) One() Elem {
	return f.FromUint64(1)
}

// FromUint64 returns the image of v under the canonical map Z -> GF(p^n).
func (f *Field) FromUint64(v uint64) Elem {
	coeffs := make([]uint64, f.n)
	coeffs[0] = v % f.p
	return Elem{field: f, coeffs: coeffs}
}

// Gen returns the canonical generator of the field: the class of x in
// F_p[x]/(C_{p,n}) for n > 1, and the distinguished primitive root for
// the prime field.
func (f *Field) Gen() Elem {
	coeffs := make([]uint64, f.n)
	if f.n == 1 {
		coeffs[0] = (f.p - f.modulus[0]) % f.p
	} else {
		coeffs[1] = 1
	}
	return Elem{field: f, coeffs: coeffs}
}

// reduce brings a coefficient vector of arbitrary length back to length n
// by dividing out the monic defining polynomial.
func (f *Field) reduce(c []uint64) []uint64 {
	n := f.n
	for k := len(c) - 1; k >= n; k-- {
		if q := c[k]; q != 0 {
			c[k] = 0
			for i := 0; i < n; i++ {
				c[k-n+i] = (c[k-n+i] + (f.p-f.modulus[i])*q) % f.p
			}
		}
	}
	out := make([]uint64, n)
	copy(out, c)
	return out
}

// Field returns the field the element belongs to.
func (x Elem) Field() *Field {
	return x.field
}

// Coeffs returns a copy of the coordinate vector of x in the power basis
// of the field generator, constant term first.
func (x Elem) Coeffs() []uint64 {
	c := make([]uint64, len(x.coeffs))
	copy(c, x.coeffs)
	return c
}

// IsZero returns true if x is the zero element.
func (x Elem) IsZero() bool {
	for _, c := range x.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal returns true if x and y are the same element of the same field.
func (x Elem) Equal(y Elem) bool {
	if !x.field.Equal(y.field) {
		return false
	}
	for i := range x.coeffs {
		if x.coeffs[i] != y.coeffs[i] {
			return false
		}
	}
	return true
}

func (x Elem) checkField(y Elem) {
	if !x.field.Equal(y.field) {
		panic(fmt.Errorf("mismatched fields: %s != %s", x.field, y.field))
	}
}

// Add returns x + y.
func (x Elem) Add(y Elem) Elem {
	x.checkField(y)
	p := x.field.p
	coeffs := make([]uint64, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = (x.coeffs[i] + y.coeffs[i]) % p
	}
	return Elem{field: x.field, coeffs: coeffs}
}

// Sub returns x - y.
func (x Elem) Sub(y Elem) Elem {
	x.checkField(y)
	p := x.field.p
	coeffs := make([]uint64, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = (x.coeffs[i] + p - y.coeffs[i]) % p
	}
	return Elem{field: x.field, coeffs: coeffs}
}

// Neg returns -x.
func (x Elem) Neg() Elem {
	p := x.field.p
	coeffs := make([]uint64, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = (p - x.coeffs[i]) % p
	}
	return Elem{field: x.field, coeffs: coeffs}
}

// Mul returns x * y.
func (x Elem) Mul(y Elem) Elem {
	x.checkField(y)
	f := x.field
	prod := make([]uint64, 2*f.n-1)
	for i, xi := range x.coeffs {
		if xi == 0 {
			continue
		}
		for j, yj := range y.coeffs {
			prod[i+j] = (prod[i+j] + xi*yj) % f.p
		}
	}
	return Elem{field: f, coeffs: f.reduce(prod)}
}

// Exp returns x^e for a non-negative exponent.
func (x Elem) Exp(e *big.Int) Elem {
	if e.Sign() < 0 {
		panic(fmt.Errorf("negative exponent: %s", e))
	}
	r := x.field.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = r.Mul(r)
		if e.Bit(i) == 1 {
			r = r.Mul(x)
		}
	}
	return r
}

// ExpUint64 returns x^e.
func (x Elem) ExpUint64(e uint64) Elem {
	return x.Exp(new(big.Int).SetUint64(e))
}

// Inv returns the multiplicative inverse of x. It panics on zero.
func (x Elem) Inv() Elem {
	if x.IsZero() {
		panic(fmt.Errorf("division by zero in %s", x.field))
	}
	// x^(p^n - 2)
	e := x.field.Order()
	e.Sub(e, big.NewInt(2))
	return x.Exp(e)
}

// Frobenius returns x^(p^k), the k-th iterate of the absolute Frobenius.
func (x Elem) Frobenius(k int) Elem {
	if k < 0 {
		panic(fmt.Errorf("negative Frobenius iterate: %d", k))
	}
	e := new(big.Int).Exp(big.NewInt(int64(x.field.p)), big.NewInt(int64(k)), nil)
	return x.Exp(e)
}

// String writes x as a polynomial in the field generator with descending
// degrees, e.g. "6*z12^11 + 5*z12^9 + 4". Prime-field elements are
// written as plain integers.
func (x Elem) String() string {
	if x.field.n == 1 {
		return fmt.Sprintf("%d", x.coeffs[0])
	}
	var terms []string
	for i := len(x.coeffs) - 1; i >= 0; i-- {
		c := x.coeffs[i]
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case i == 1 && c == 1:
			terms = append(terms, x.field.name)
		case i == 1:
			terms = append(terms, fmt.Sprintf("%d*%s", c, x.field.name))
		case c == 1:
			terms = append(terms, fmt.Sprintf("%s^%d", x.field.name, i))
		default:
			terms = append(terms, fmt.Sprintf("%d*%s^%d", c, x.field.name, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
