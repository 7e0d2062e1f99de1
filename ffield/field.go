// Package ffield implements finite fields GF(p^n) presented on Conway
// polynomials, together with the canonical embeddings between them.
package ffield

import (
	"fmt"
	"math/big"

	"github.com/orelab/drinfeld/utils"
)

// Field is an immutable descriptor of the finite field GF(p^n), presented
// as F_p[x]/(C_{p,n}) with C_{p,n} the Conway polynomial. Elements are
// coordinate vectors in the power basis of the class of x, written z<n>.
type Field struct {
	p       uint64   // characteristic
	n       int      // degree over the prime field
	modulus []uint64 // monic, length n+1, constant term first
	name    string   // print name of the generator
}

// NewField returns the field GF(p^n). It errors if p is not prime or if
// the Conway polynomial C_{p,n} is not in the built-in table.
func NewField(p uint64, n int) (*Field, error) {
	if !utils.IsPrime(p) {
		return nil, fmt.Errorf("invalid characteristic: %d is not prime", p)
	}
	if n < 1 {
		return nil, fmt.Errorf("invalid degree: %d", n)
	}
	degrees, ok := conwayPolys[p]
	if !ok {
		return nil, fmt.Errorf("no Conway polynomials for characteristic %d in the table (supported: %v)", p, utils.GetSortedKeys(conwayPolys))
	}
	modulus, ok := degrees[n]
	if !ok {
		return nil, fmt.Errorf("no Conway polynomial for p=%d, n=%d in the table (supported degrees: %v)", p, n, utils.GetSortedKeys(degrees))
	}
	name := fmt.Sprintf("z%d", n)
	return &Field{p: p, n: n, modulus: modulus, name: name}, nil
}

// Characteristic returns the characteristic p of the field.
func (f *Field) Characteristic() uint64 {
	return f.p
}

// Degree returns the degree of the field over its prime field.
func (f *Field) Degree() int {
	return f.n
}

// Order returns the number of elements p^n of the field.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(f.p)), big.NewInt(int64(f.n)), nil)
}

// Modulus returns a copy of the defining polynomial, constant term first.
func (f *Field) Modulus() []uint64 {
	mod := make([]uint64, len(f.modulus))
	copy(mod, f.modulus)
	return mod
}

// Extension returns the field GF(p^(n*k)), provided it is in the table.
func (f *Field) Extension(k int) (*Field, error) {
	if k < 1 {
		return nil, fmt.Errorf("invalid extension degree: %d", k)
	}
	return NewField(f.p, f.n*k)
}

// IsSubfieldOf returns true if f is (isomorphic to) a subfield of other,
// that is if both share the characteristic and the degree of f divides
// the degree of other. The relation is reflexive and transitive.
func (f *Field) IsSubfieldOf(other *Field) bool {
	if other == nil {
		return false
	}
	return f.p == other.p && other.n%f.n == 0
}

// Equal returns true if the two descriptors present the same field.
func (f *Field) Equal(other *Field) bool {
	if other == nil {
		return false
	}
	return f.p == other.p && f.n == other.n
}

// String returns a description of the field, e.g.
// "Finite Field in z6 of size 7^6".
func (f *Field) String() string {
	if f.n == 1 {
		return fmt.Sprintf("Finite Field of size %d", f.p)
	}
	return fmt.Sprintf("Finite Field in %s of size %d^%d", f.name, f.p, f.n)
}

// GenName returns the print name of the field generator.
func (f *Field) GenName() string {
	return f.name
}
