package reduct

// ChurchNumeral builds the Church numeral for a non-negative integer:
// n := λf.λx.f^n x
// 0 := λf.λx.x
// 1 := λf.λx.f x
// 2 := λf.λx.f (f x)
func ChurchNumeral(n uint64) Term {
	f := Variable{Name: "f"}
	x := Variable{Name: "x"}

	var body Term = Var{x}
	for i := uint64(0); i < n; i++ {
		body = Application{Func: Var{f}, Arg: body}
	}

	return Abstraction{Param: f, Body: Abstraction{Param: x, Body: body}}
}

// DecodeNumeral matches λf.λx.f^n x and returns n. Ill-formed terms
// report false.
func DecodeNumeral(t Term) (uint64, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return 0, false
	}
	f, x := outer.Param, inner.Param

	var n uint64
	body := inner.Body
	for {
		if v, ok := body.(Var); ok && v.Variable == x {
			return n, true
		}
		app, ok := body.(Application)
		if !ok {
			return 0, false
		}
		// The spine head must be the outer binder, and an inner binder
		// equal to it shadows it.
		head, ok := app.Func.(Var)
		if !ok || head.Variable != f || f == x {
			return 0, false
		}
		n++
		body = app.Arg
	}
}

// ChurchBoolean builds True = λa.λb.a or False = λa.λb.b.
func ChurchBoolean(b bool) Term {
	a := Variable{Name: "a"}
	bb := Variable{Name: "b"}
	body := Var{bb}
	if b {
		body = Var{a}
	}
	return Abstraction{Param: a, Body: Abstraction{Param: bb, Body: body}}
}

// DecodeBoolean matches λa.λb.a (true) or λa.λb.b (false).
func DecodeBoolean(t Term) (bool, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return false, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return false, false
	}
	v, ok := inner.Body.(Var)
	if !ok {
		return false, false
	}
	// The inner binder shadows the outer one, so check it first.
	if v.Variable == inner.Param {
		return false, true
	}
	if v.Variable == outer.Param {
		return true, true
	}
	return false, false
}

// EncodePair encodes (a, b) as λs.s a b with s fresh in both components.
func EncodePair(a, b Term) Term {
	s := freshFor("s", a, b)
	return Abstraction{
		Param: s,
		Body:  Application{Func: Application{Func: Var{s}, Arg: a}, Arg: b},
	}
}

// DecodePair matches λs.s a b where the binder does not occur free in
// either component, and returns (a, b).
func DecodePair(t Term) (Term, Term, bool) {
	abs, ok := t.(Abstraction)
	if !ok {
		return nil, nil, false
	}
	outer, ok := abs.Body.(Application)
	if !ok {
		return nil, nil, false
	}
	inner, ok := outer.Func.(Application)
	if !ok {
		return nil, nil, false
	}
	head, ok := inner.Func.(Var)
	if !ok || head.Variable != abs.Param {
		return nil, nil, false
	}
	a, b := inner.Arg, outer.Arg
	isFree := func(t Term) bool { return FreeVars(t).Contains(abs.Param) }
	if isFree(a) || isFree(b) {
		return nil, nil, false
	}
	return a, b, true
}

// EncodeSome encodes a present optional as λj.λn.j v.
func EncodeSome(v Term) Term {
	j := freshFor("j", v)
	n := freshFor("n", v)
	return Abstraction{
		Param: j,
		Body: Abstraction{
			Param: n,
			Body:  Application{Func: Var{j}, Arg: v},
		},
	}
}

// EncodeNone encodes an absent optional as λj.λn.n.
func EncodeNone() Term {
	j := Variable{Name: "j"}
	n := Variable{Name: "n"}
	return Abstraction{Param: j, Body: Abstraction{Param: n, Body: Var{n}}}
}

// DecodeOption matches λj.λn.j v (some) or λj.λn.n (none). The boolean
// pair is (present, ok).
func DecodeOption(t Term) (Term, bool, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return nil, false, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return nil, false, false
	}
	j, n := outer.Param, inner.Param
	switch body := inner.Body.(type) {
	case Var:
		if body.Variable == n {
			return nil, false, true
		}
	case Application:
		head, ok := body.Func.(Var)
		if ok && head.Variable == j && j != n {
			return body.Arg, true, true
		}
	}
	return nil, false, false
}

// EncodeOk encodes a success as λo.λe.o v.
func EncodeOk(v Term) Term {
	return encodeResult(v, false)
}

// EncodeErr encodes a failure as λo.λe.e v.
func EncodeErr(v Term) Term {
	return encodeResult(v, true)
}

func encodeResult(v Term, isErr bool) Term {
	o := freshFor("o", v)
	e := freshFor("e", v)
	head := Var{o}
	if isErr {
		head = Var{e}
	}
	return Abstraction{
		Param: o,
		Body: Abstraction{
			Param: e,
			Body:  Application{Func: head, Arg: v},
		},
	}
}

// DecodeResult matches λo.λe.o v or λo.λe.e v. The boolean pair is
// (isErr, ok).
func DecodeResult(t Term) (Term, bool, bool) {
	outer, ok := t.(Abstraction)
	if !ok {
		return nil, false, false
	}
	inner, ok := outer.Body.(Abstraction)
	if !ok {
		return nil, false, false
	}
	o, e := outer.Param, inner.Param
	body, ok := inner.Body.(Application)
	if !ok {
		return nil, false, false
	}
	head, ok := body.Func.(Var)
	if !ok {
		return nil, false, false
	}
	// The inner binder shadows the outer one.
	if head.Variable == e {
		return body.Arg, true, true
	}
	if head.Variable == o && o != e {
		return body.Arg, false, true
	}
	return nil, false, false
}

// freshFor returns a variable with the given name whose disambiguator
// keeps it out of the free variables of every given term, so encoders
// never capture.
func freshFor(name string, terms ...Term) Variable {
	v := Variable{Name: name}
	for d := 0; ; d++ {
		candidate := v.WithDisambiguator(d)
		taken := false
		for _, t := range terms {
			if FreeVars(t).Contains(candidate) {
				taken = true
				break
			}
		}
		if !taken {
			return candidate
		}
	}
}
