package ffield

// conwayPolys stores, per characteristic and degree, the monic modulus
// used to present GF(p^n): the Conway polynomial C_{p,n}, with the
// constant term first and the leading coefficient included.
//
// Conway polynomials are primitive and norm-compatible along the divisor
// lattice of the degrees, which makes the embedding
// z_m |--> z_n^((p^n-1)/(p^m-1)) between any two fields of the table a
// well defined field morphism. This is what makes base changes and
// subfield preimages canonical.
var conwayPolys = map[uint64]map[int][]uint64{
	2: {
		1:  {1, 1},
		2:  {1, 1, 1},
		3:  {1, 1, 0, 1},
		4:  {1, 1, 0, 0, 1},
		6:  {1, 1, 0, 1, 1, 0, 1},
		12: {1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1},
	},
	3: {
		1: {1, 1},
		2: {2, 2, 1},
		3: {1, 2, 0, 1},
		4: {2, 0, 0, 2, 1},
		6: {2, 2, 1, 0, 2, 0, 1},
	},
	5: {
		1: {3, 1},
		2: {2, 4, 1},
		3: {3, 3, 0, 1},
		4: {2, 4, 4, 0, 1},
		6: {2, 0, 1, 4, 1, 0, 1},
	},
	7: {
		1:  {4, 1},
		2:  {3, 6, 1},
		3:  {4, 0, 6, 1},
		4:  {3, 4, 5, 0, 1},
		6:  {3, 6, 4, 5, 1, 0, 1},
		12: {3, 0, 5, 0, 4, 2, 3, 5, 2, 0, 0, 0, 1},
	},
	13: {
		1: {11, 1},
		2: {2, 12, 1},
		3: {11, 2, 0, 1},
	},
}
