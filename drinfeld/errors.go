package drinfeld

import (
	"errors"
	"fmt"
)

// Errors come in two kinds, both reported eagerly at construction or
// base-change time. Type errors flag arguments of the wrong shape, domain
// errors flag well-typed arguments that are algebraically invalid. Use
// errors.Is against the kind sentinels to discriminate, or against the
// specific errors below.
var (
	ErrType   = errors.New("type error")
	ErrDomain = errors.New("domain error")
)

var (
	// ErrNotPolynomialRing is returned when the function ring argument is
	// missing.
	ErrNotPolynomialRing = kind(ErrType, "the function ring must be a univariate polynomial ring over a finite field")

	// ErrNotSkewPolynomial is returned when the generator argument is not
	// an element of a skew polynomial ring.
	ErrNotSkewPolynomial = kind(ErrType, "the generator must be an Ore polynomial")

	// ErrNotDrinfeldModule is returned when building an action from
	// something that is not a Drinfeld module.
	ErrNotDrinfeldModule = kind(ErrType, "first argument must be a finite Drinfeld module")

	// ErrNotFiniteField is returned when a base-change or action target is
	// not a finite field.
	ErrNotFiniteField = kind(ErrType, "argument must be a finite field")

	// ErrWrongRing is returned when an action argument does not belong to
	// the expected ring or field.
	ErrWrongRing = kind(ErrType, "argument does not belong to the expected ring")

	// ErrIncompatibleFields is returned when the coefficient field of the
	// skew ring does not contain the base field of the polynomial ring.
	ErrIncompatibleFields = kind(ErrDomain, "the base field of the Ore polynomial ring must be a finite field extension of the base field of the polynomial ring")

	// ErrUnsupportedDerivation is returned when the skew ring carries a
	// derivation component.
	ErrUnsupportedDerivation = kind(ErrDomain, "the Ore polynomial ring should have no derivation")

	// ErrWrongTwist is returned when the twist of the skew ring is not the
	// relative Frobenius of the base field of the polynomial ring.
	ErrWrongTwist = kind(ErrDomain, "the twisting morphism of the Ore polynomial ring must be the Frobenius endomorphism of the base field of the polynomial ring")

	// ErrConstantGenerator is returned when the generator image has degree
	// zero in the skew variable.
	ErrConstantGenerator = kind(ErrDomain, "the generator must not be constant")

	// ErrNotAnExtension is returned when a base-change or action target
	// does not contain the current coefficient field.
	ErrNotAnExtension = kind(ErrDomain, "the new field must be a finite field extension of the base field of the Ore polynomial ring")
)

func kind(k error, msg string) error {
	return fmt.Errorf("%w: %s", k, msg)
}
