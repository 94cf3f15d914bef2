package reduct

import (
	"fmt"
	"math"
)

// renameLimit bounds the disambiguator search. Production keeps it
// effectively unbounded; tests may lower it to force exhaustion.
var renameLimit = math.MaxInt

// RenameBound rewrites the term so that every binder's bound variable
// satisfies keep. The second return value reports whether anything was
// renamed; callers use it to distinguish an α-step from a no-op.
func RenameBound(t Term, keep func(Variable) bool) (Term, bool) {
	return t.renameBound(keep)
}

func (v Var) renameBound(keep func(Variable) bool) (Term, bool) {
	return v, false
}

func (a Abstraction) renameBound(keep func(Variable) bool) (Term, bool) {
	if keep(a.Param) {
		body, modified := a.Body.renameBound(keep)
		return Abstraction{Param: a.Param, Body: body}, modified
	}
	fresh := freshVariable(a.Param, a.Body, keep)
	body := a.Body.renameFree(a.Param, fresh)
	body, _ = body.renameBound(keep)
	return Abstraction{Param: fresh, Body: body}, true
}

func (a Application) renameBound(keep func(Variable) bool) (Term, bool) {
	left, lm := a.Func.renameBound(keep)
	right, rm := a.Arg.renameBound(keep)
	return Application{Func: left, Arg: right}, lm || rm
}

// freshVariable picks a replacement for v: same name, smallest
// disambiguator >= 1 that differs from v's, satisfies keep and is not
// free in body. Exhaustion is a programmer error.
func freshVariable(v Variable, body Term, keep func(Variable) bool) Variable {
	isFree := IsFreeIn(body)
	for d := 1; d <= renameLimit; d++ {
		if d == v.Disambiguator {
			continue
		}
		candidate := v.WithDisambiguator(d)
		if keep(candidate) && !isFree(candidate) {
			return candidate
		}
	}
	panic(fmt.Sprintf("reduct: no disambiguators left for %q", v.Name))
}

func (v Var) renameFree(old, new Variable) Term {
	if v.Variable == old {
		return Var{new}
	}
	return v
}

func (a Abstraction) renameFree(old, new Variable) Term {
	// A binder equal to old shadows it; occurrences below are bound.
	if a.Param == old {
		return a
	}
	return Abstraction{Param: a.Param, Body: a.Body.renameFree(old, new)}
}

func (a Application) renameFree(old, new Variable) Term {
	return Application{
		Func: a.Func.renameFree(old, new),
		Arg:  a.Arg.renameFree(old, new),
	}
}
