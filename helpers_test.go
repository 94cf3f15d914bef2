package reduct

import (
	"testing"
)

// Terse term builders for tests.

func vr(name string) Term {
	return Var{Variable{Name: name}}
}

func vrd(name string, d int) Term {
	return Var{Variable{Name: name, Disambiguator: d}}
}

func bind(name string, body Term) Term {
	return Abstraction{Param: Variable{Name: name}, Body: body}
}

func bindd(name string, d int, body Term) Term {
	return Abstraction{Param: Variable{Name: name, Disambiguator: d}, Body: body}
}

func apply(terms ...Term) Term {
	t := terms[0]
	for _, next := range terms[1:] {
		t = Application{Func: t, Arg: next}
	}
	return t
}

func mustParse(t *testing.T, src string) Term {
	t.Helper()
	term, diags := ParseFormula("<test>", src)
	if diags.HasErrors() {
		t.Fatalf("parse %q: %s", src, diags.Error())
	}
	return term
}

// lastStep drains the step iterator up to limit steps and returns the
// final step along with the step count.
func lastStep(t *testing.T, term Term, defs *Definitions, limit int) (Step, int) {
	t.Helper()
	var last Step
	count := 0
	for step := range Evaluate(term, defs) {
		last = step
		count++
		if count >= limit {
			t.Fatalf("no normal form within %d steps, stuck at %s", limit, step.Term)
		}
	}
	return last, count
}
