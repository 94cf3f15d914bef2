package reduct

// Substitute rewrites every free occurrence of needle in input to the
// replacement term. It is not capture-avoiding on its own: the caller
// must first rename input's binders (see RenameBound) so that none of
// them captures a variable free in the replacement.
func Substitute(needle Variable, replacement, input Term) Term {
	return input.substitute(needle, replacement)
}

func (v Var) substitute(needle Variable, replacement Term) Term {
	if v.Variable == needle {
		return replacement
	}
	return v
}

func (a Abstraction) substitute(needle Variable, replacement Term) Term {
	// A binder equal to the needle shadows it: substitution stops here.
	if a.Param == needle {
		return a
	}
	return Abstraction{Param: a.Param, Body: a.Body.substitute(needle, replacement)}
}

func (a Application) substitute(needle Variable, replacement Term) Term {
	return Application{
		Func: a.Func.substitute(needle, replacement),
		Arg:  a.Arg.substitute(needle, replacement),
	}
}
