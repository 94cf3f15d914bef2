package reduct

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

func collectSteps(term Term, defs *Definitions, limit int) []Step {
	var steps []Step
	for step := range Evaluate(term, defs) {
		steps = append(steps, step)
		if len(steps) >= limit {
			break
		}
	}
	return steps
}

func kinds(steps []Step) []StepKind {
	out := make([]StepKind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}
	return out
}

func TestEvaluateSimpleRedex(t *testing.T) {
	// (λx.x) y → y in exactly one step
	steps := collectSteps(mustParse(t, `(λx.x) y`), nil, 100)
	must.Eq(t, []StepKind{Beta}, kinds(steps))
	must.True(t, Equal(vr("y"), steps[0].Term))
}

func TestEvaluateNamingConflict(t *testing.T) {
	// (λy.λx.y) x needs an α-step, then a β-step
	steps := collectSteps(mustParse(t, `(λy.λx.y) x`), nil, 100)
	must.Eq(t, []StepKind{Alpha, Beta}, kinds(steps))
	must.True(t, Equal(bindd("x", 1, vr("x")), steps[1].Term), must.Sprintf(
		"unexpected normal form %s", steps[1].Term))
}

func TestEvaluateLeftmostFirst(t *testing.T) {
	// ((λx.x) X) ((λx.x) Y) → X ((λx.x) Y) → X Y
	steps := collectSteps(mustParse(t, `((λx.x) X) ((λx.x) Y)`), nil, 100)
	must.Eq(t, []StepKind{Beta, Beta}, kinds(steps))
	must.True(t, Equal(apply(vr("X"), vr("Y")), steps[1].Term))
}

func TestEvaluateNormalFormYieldsNoSteps(t *testing.T) {
	// λx.x x (x x) is already in normal form
	steps := collectSteps(mustParse(t, `λx.x x (x x)`), nil, 100)
	must.Len(t, 0, steps)
}

func TestEvaluateExpandsAfterReduction(t *testing.T) {
	// (λn.n) 2: β first, then δ on the numeral
	steps := collectSteps(mustParse(t, `(λn.n) 2`), NewDefinitions(), 100)
	must.Eq(t, []StepKind{Beta, Delta}, kinds(steps))
	must.True(t, Equal(ChurchNumeral(2), steps[1].Term))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	term := mustParse(t, `(λy.λx.y) ((λx.x) z)`)
	first := collectSteps(term, NewDefinitions(), 100)
	second := collectSteps(term, NewDefinitions(), 100)
	must.Eq(t, kinds(first), kinds(second))
	for i := range first {
		must.True(t, Equal(first[i].Term, second[i].Term))
	}
}

func TestEvaluateInfiniteTermStaysProductive(t *testing.T) {
	// Ω reduces to itself forever; the caller imposes the bound.
	steps := collectSteps(OMEGA, nil, 50)
	must.Len(t, 50, steps)
	for _, s := range steps {
		must.Eq(t, Beta, s.Kind)
	}
}

func collectEffectSteps(term Term, defs *Definitions, fx EffectHandler, limit int) []Step {
	var steps []Step
	for step := range EvaluateWithEffects(term, defs, fx) {
		steps = append(steps, step)
		if len(steps) >= limit {
			break
		}
	}
	return steps
}

func TestEffectBeep(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	steps := collectEffectSteps(mustParse(t, `beep x`), NewDefinitions(), fx, 100)
	must.Eq(t, []StepKind{SideEffect}, kinds(steps))
	must.True(t, Equal(vr("x"), steps[0].Term))
	must.Eq(t, "\a", out.String())
}

func TestEffectWrite(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	steps := collectEffectSteps(mustParse(t, `write 3`), NewDefinitions(), fx, 100)
	// δ expands the numeral, then the effect rewrites the site to λx.x.
	must.Eq(t, []StepKind{Delta, SideEffect}, kinds(steps))
	must.True(t, Equal(I, steps[1].Term))
	must.Eq(t, "3\n", out.String())
}

func TestEffectWriteRejectsNonNumeral(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	steps := collectEffectSteps(mustParse(t, `write (λx.x)`), NewDefinitions(), fx, 100)
	must.Eq(t, []StepKind{SideEffect}, kinds(steps))
	must.True(t, Equal(errorAtom(), steps[0].Term))
	must.Eq(t, "", out.String())
}

func TestEffectRead(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader("7\n"), &out)

	steps := collectEffectSteps(mustParse(t, `read k`), NewDefinitions(), fx, 100)
	// The effect builds (λf.f 7) k, which β-reduces to k 7.
	must.SliceContains(t, kinds(steps), SideEffect)
	last := steps[len(steps)-1]

	app, ok := last.Term.(Application)
	must.True(t, ok, must.Sprintf("expected an application, got %s", last.Term))
	must.True(t, Equal(vr("k"), app.Func))
	n, ok := DecodeNumeral(app.Arg)
	must.True(t, ok)
	must.Eq(t, 7, n)
}

func TestEffectRand(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)
	defs := NewDefinitions().Add(Prelude())

	steps := collectEffectSteps(mustParse(t, `rand (pair 3 5)`), defs, fx, 1000)
	must.SliceContains(t, kinds(steps), SideEffect)

	// The final term is λf.f n with n in [3, 5).
	last := steps[len(steps)-1].Term
	abs, ok := last.(Abstraction)
	must.True(t, ok, must.Sprintf("expected λf.f n, got %s", last))
	app, ok := abs.Body.(Application)
	must.True(t, ok)
	n, ok := DecodeNumeral(app.Arg)
	must.True(t, ok)
	must.True(t, n == 3 || n == 4, must.Sprintf("rand out of range: %d", n))
}

func TestEffectRandRejectsEmptyRange(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)
	defs := NewDefinitions().Add(Prelude())

	steps := collectEffectSteps(mustParse(t, `rand (pair 3 3)`), defs, fx, 1000)
	last := steps[len(steps)-1].Term
	abs, ok := last.(Abstraction)
	must.True(t, ok)
	app, ok := abs.Body.(Application)
	must.True(t, ok)
	must.True(t, Equal(errorAtom(), app.Arg), must.Sprintf(
		"expected the error atom, got %s", app.Arg))
}

func TestUnknownEffectTerminates(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	steps := collectEffectSteps(mustParse(t, `launch x`), NewDefinitions(), fx, 100)
	must.Len(t, 0, steps)
}

func TestEffectOnBareName(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	// A bare free name is offered with a placeholder argument; beep
	// returns the placeholder, which then terminates evaluation.
	steps := collectEffectSteps(vr("beep"), NewDefinitions(), fx, 100)
	must.Eq(t, []StepKind{SideEffect}, kinds(steps))
	must.True(t, Equal(Var{Variable{Name: "_"}}, steps[0].Term))
	must.Eq(t, "\a", out.String())
}

func TestEffectSiteOnApplicationSpine(t *testing.T) {
	var out bytes.Buffer
	fx := StandardEffects(strings.NewReader(""), &out)

	// write 2 k: the effect site is the left spine application.
	steps := collectEffectSteps(mustParse(t, `write 2 k`), NewDefinitions(), fx, 100)
	must.Eq(t, []StepKind{Delta, SideEffect, Beta}, kinds(steps))
	// write returns the identity, so (λx.x) k → k.
	must.True(t, Equal(vr("k"), steps[len(steps)-1].Term))
	must.Eq(t, "2\n", out.String())
}
