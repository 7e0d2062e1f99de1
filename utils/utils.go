// Package utils implements small helpers shared by the algebra packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GCD computes the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModExp performs the modular exponentiation x^e mod q.
func ModExp(x, e, q uint64) (result uint64) {
	x %= q
	result = 1
	for e > 0 {
		if e&1 == 1 {
			result = (result * x) % q
		}
		x = (x * x) % q
		e >>= 1
	}
	return result
}

// IsPrime returns true if n is prime. Intended for the small moduli used
// as field characteristics, so trial division is enough.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return
}
