package reduct

import (
	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the set of variables occurring free in the term. A
// variable is free if it is not bound by an enclosing abstraction.
func FreeVars(t Term) *set.Set[Variable] {
	bound := set.New[Variable](8)
	free := set.New[Variable](8)
	t.freeVars(bound, free)
	return free
}

// IsFreeIn returns a predicate reporting whether a variable occurs free
// in the term. The free-variable set is computed once.
func IsFreeIn(t Term) func(Variable) bool {
	free := FreeVars(t)
	return free.Contains
}

func (v Var) freeVars(bound, free *set.Set[Variable]) {
	if !bound.Contains(v.Variable) {
		free.Insert(v.Variable)
	}
}

func (a Abstraction) freeVars(bound, free *set.Set[Variable]) {
	// Only revert the scope entry if this binder added it, so shadowed
	// bindings stay bound for the rest of the enclosing body.
	inserted := bound.Insert(a.Param)
	a.Body.freeVars(bound, free)
	if inserted {
		bound.Remove(a.Param)
	}
}

func (a Application) freeVars(bound, free *set.Set[Variable]) {
	a.Func.freeVars(bound, free)
	a.Arg.freeVars(bound, free)
}
