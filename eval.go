package reduct

import (
	"iter"
)

// EffectHandler is consulted by the step iterator when neither β nor δ
// applies. It observes the name and argument of an effect site and may
// return a replacement term to resume evaluation from. Returning false
// ends evaluation.
type EffectHandler func(name Variable, argument Term) (Term, bool)

// Evaluate returns the lazy sequence of reduction steps for a term:
// each successor first tries a β-step, then a δ-expansion against defs,
// and terminates when neither applies. The sequence is finite iff the
// term has a normal form under normal order; callers bound it otherwise.
func Evaluate(t Term, defs *Definitions) iter.Seq[Step] {
	return EvaluateWithEffects(t, defs, nil)
}

// EvaluateWithEffects is Evaluate with a side-effect escape hatch: when
// β and δ both stop, perform is consulted with the current term's
// effect site and may rewrite it to restart the loop. The current term
// is threaded through every step, so each emitted Step carries the whole
// program state after the step.
func EvaluateWithEffects(t Term, defs *Definitions, perform EffectHandler) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		current := t
		for {
			s := Reduce(current)
			if s.Kind == Identity {
				s = Expand(current, defs)
			}
			if s.Kind == Identity && perform != nil {
				if replaced, ok := tryPerform(current, perform); ok {
					s = Step{Kind: SideEffect, Term: replaced}
				}
			}
			if s.Kind == Identity {
				return
			}
			current = s.Term
			if !yield(s) {
				return
			}
		}
	}
}

// placeholder is handed to effect handlers invoked on a bare name with
// no argument.
var placeholder = Var{Variable{Name: "_"}}

// tryPerform scans the application spine for an effect site: a bare
// free name, or a free name applied to an argument. The replacement
// returned by the handler is spliced back at the site.
func tryPerform(t Term, perform EffectHandler) (Term, bool) {
	switch t := t.(type) {
	case Var:
		return perform(t.Variable, placeholder)
	case Application:
		if v, ok := t.Func.(Var); ok {
			return perform(v.Variable, t.Arg)
		}
		if _, ok := t.Func.(Application); ok {
			if left, ok := tryPerform(t.Func, perform); ok {
				return Application{Func: left, Arg: t.Arg}, true
			}
		}
	}
	return nil, false
}
