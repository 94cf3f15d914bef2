package reduct

// Reduce performs one small-step, normal-order (leftmost-outermost)
// rewrite and returns exactly one step of kind Identity, Alpha or Beta.
//
// When the outermost redex needs renaming before its argument can be
// substituted safely, the renaming is surfaced as a separate Alpha step:
// the abstraction is rewritten in place and no β fires yet. The next
// Reduce call on the result then yields the Beta step.
func Reduce(t Term) Step {
	return t.reduce()
}

func (v Var) reduce() Step {
	return Step{Kind: Identity, Term: v}
}

func (a Abstraction) reduce() Step {
	s := a.Body.reduce()
	return Step{Kind: s.Kind, Term: Abstraction{Param: a.Param, Body: s.Term}}
}

func (a Application) reduce() Step {
	if abs, ok := a.Func.(Abstraction); ok {
		return renameAndSubstitute(abs, a.Arg)
	}

	// Leftmost first: the function side must be fully examined before
	// the argument side is considered.
	if left := a.Func.reduce(); left.Kind != Identity {
		return Step{Kind: left.Kind, Term: Application{Func: left.Term, Arg: a.Arg}}
	}

	right := a.Arg.reduce()
	return Step{Kind: right.Kind, Term: Application{Func: a.Func, Arg: right.Term}}
}

// renameAndSubstitute handles the outermost redex (λv.body) arg. Binders
// in body that would capture a variable free in arg are renamed first;
// only when the body needs no renaming does the β-step fire.
func renameAndSubstitute(abs Abstraction, arg Term) Step {
	isFree := IsFreeIn(arg)
	body, modified := abs.Body.renameBound(func(v Variable) bool { return !isFree(v) })
	if modified {
		return Step{
			Kind: Alpha,
			Term: Application{Func: Abstraction{Param: abs.Param, Body: body}, Arg: arg},
		}
	}
	return Step{Kind: Beta, Term: abs.Body.substitute(abs.Param, arg)}
}
