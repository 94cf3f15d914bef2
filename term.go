// Package reduct implements a small-step interpreter for the untyped
// lambda calculus: normal-order β-reduction with capture-avoiding
// α-renaming, δ-expansion of registered definitions (Church numerals,
// booleans, user definitions), and a lazy step iterator that streams
// every rewrite to the caller.
package reduct

import (
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Variable is a named variable with a disambiguator. Disambiguator zero
// is reserved for source-written names; the α-renamer only ever assigns
// positive disambiguators.
type Variable struct {
	Name          string
	Disambiguator int
}

// NewVariable returns a Variable with disambiguator zero.
func NewVariable(name string) Variable {
	return Variable{Name: name}
}

// WithDisambiguator returns a copy of v with the given disambiguator.
func (v Variable) WithDisambiguator(d int) Variable {
	return Variable{Name: v.Name, Disambiguator: d}
}

func (v Variable) String() string {
	if v.Disambiguator == 0 {
		return v.Name
	}
	return v.Name + subscript(v.Disambiguator)
}

var subscriptDigits = []rune("₀₁₂₃₄₅₆₇₈₉")

// subscript renders a non-negative number in Unicode subscript digits.
func subscript(n int) string {
	var sb strings.Builder
	if n == 0 {
		sb.WriteRune(subscriptDigits[0])
		return sb.String()
	}
	var digits []rune
	for n > 0 {
		digits = append(digits, subscriptDigits[n%10])
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}
	return sb.String()
}

// Term is the interface for all lambda calculus terms. Terms are
// immutable values; every rewrite produces a fresh term.
type Term interface {
	String() string
	// equal reports structural equality.
	equal(other Term) bool
	// freeVars accumulates free variables under a running bound scope.
	freeVars(bound, free *set.Set[Variable])
	// renameFree rewrites free occurrences of old to new.
	renameFree(old, new Variable) Term
	// renameBound renames binders until every bound variable satisfies keep.
	renameBound(keep func(Variable) bool) (Term, bool)
	// substitute replaces free occurrences of needle; not capture-avoiding.
	substitute(needle Variable, replacement Term) Term
	// reduce performs one normal-order β-step (or α-step preparing one).
	reduce() Step
	// expand performs one δ-expansion against defs, skipping bound variables.
	expand(defs *Definitions, bound *set.Set[Variable]) (Term, bool)
	// diagram support
	draw(d *Diagram, ctx *diagramContext, row int) int
	dimensions(depth int) (width, height int)
}

// Var represents a variable occurrence.
type Var struct {
	Variable
}

// Abstraction represents an abstraction (λx.t) binding Param in Body.
type Abstraction struct {
	Param Variable
	Body  Term
}

// Application represents an application (t s).
type Application struct {
	Func Term // The function
	Arg  Term // The argument
}

// String methods. Display uses minimal parentheses: an application wraps
// its function iff it is an abstraction and its argument iff it is an
// application or an abstraction, which keeps application display
// left-associative and round-trips through the parser.

func (a Abstraction) String() string {
	return "λ" + a.Param.String() + "." + a.Body.String()
}

func (a Application) String() string {
	funcStr := a.Func.String()
	if _, isAbs := a.Func.(Abstraction); isAbs {
		funcStr = "(" + funcStr + ")"
	}

	argStr := a.Arg.String()
	if _, isApp := a.Arg.(Application); isApp {
		argStr = "(" + argStr + ")"
	} else if _, isAbs := a.Arg.(Abstraction); isAbs {
		argStr = "(" + argStr + ")"
	}

	return funcStr + " " + argStr
}

// Equal reports whether two terms are structurally equal, including
// variable disambiguators.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equal(b)
}

func (v Var) equal(other Term) bool {
	o, ok := other.(Var)
	return ok && o.Variable == v.Variable
}

func (a Abstraction) equal(other Term) bool {
	o, ok := other.(Abstraction)
	return ok && o.Param == a.Param && a.Body.equal(o.Body)
}

func (a Application) equal(other Term) bool {
	o, ok := other.(Application)
	return ok && a.Func.equal(o.Func) && a.Arg.equal(o.Arg)
}
