package drinfeld

import (
	"fmt"

	"github.com/orelab/drinfeld/ffield"
	"github.com/orelab/drinfeld/polyring"
)

// ModuleAction realizes the Fq[X]-module structure a Drinfeld module
// induces on a finite extension of its coefficient field: the scalar
// multiplication (g, x) |--> phi(g)(x), where the image skew polynomial
// operates on x as an Fq-linear map. The action borrows its module and
// is otherwise stateless.
type ModuleAction struct {
	module   *DrinfeldModule
	codomain *ffield.Field
}

// NewAction returns the action of the module on its own coefficient
// field.
func NewAction(phi *DrinfeldModule) (*ModuleAction, error) {
	if phi == nil {
		return nil, ErrNotDrinfeldModule
	}
	return &ModuleAction{module: phi, codomain: phi.OrePolRing().BaseField()}, nil
}

// Action returns the action of the module on its own coefficient field.
func (phi *DrinfeldModule) Action() (*ModuleAction, error) {
	return NewAction(phi)
}

// ActionOn returns the action of the module on a finite extension M of
// its coefficient field.
func (phi *DrinfeldModule) ActionOn(M *ffield.Field) (*ModuleAction, error) {
	if M == nil {
		return nil, ErrNotFiniteField
	}
	if !phi.OrePolRing().BaseField().IsSubfieldOf(M) {
		return nil, ErrNotAnExtension
	}
	return &ModuleAction{module: phi, codomain: M}, nil
}

// Module returns the Drinfeld module inducing the action.
func (a *ModuleAction) Module() *DrinfeldModule {
	return a.module
}

// Codomain returns the field acted on.
func (a *ModuleAction) Codomain() *ffield.Field {
	return a.codomain
}

// Act computes the scalar multiplication phi(g)(x): the image of g under
// the module morphism, evaluated at x as an additive map by iterated
// Frobenius. The action laws
//
//	Act(g1*g2, x) == Act(g1, Act(g2, x))
//	Act(g1+g2, x) == Act(g1, x) + Act(g2, x)
//	Act(1, x)     == x
//
// hold because the module morphism is a ring morphism and skew
// multiplication corresponds to composition of the induced additive
// maps.
func (a *ModuleAction) Act(g *polyring.Poly, x ffield.Elem) (ffield.Elem, error) {
	if g == nil || !g.Ring().Equal(a.module.PolRing()) {
		return ffield.Elem{}, fmt.Errorf("cannot act: the scalar must be in %s: %w", a.module.PolRing(), ErrWrongRing)
	}
	if !x.Field().Equal(a.codomain) {
		return ffield.Elem{}, fmt.Errorf("cannot act: the point must be in %s: %w", a.codomain, ErrWrongRing)
	}
	return a.module.Map().Apply(g).Operate(x)
}

// String returns the textual summary of the action, e.g.
// "Action on Finite Field in z12 of size 7^12 induced by Finite Drinfeld
// module from ... generated by t^2 + 1."
func (a *ModuleAction) String() string {
	return fmt.Sprintf("Action on %s induced by %s", a.codomain, a.module)
}
