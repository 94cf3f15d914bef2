package reduct

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-set/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver maps a free variable to its definition term.
type Resolver interface {
	Resolve(v Variable) (Term, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(Variable) (Term, bool)

func (f ResolverFunc) Resolve(v Variable) (Term, bool) {
	return f(v)
}

// Definitions is an ordered list of resolvers consulted by δ-expansion.
// Resolvers are tried in insertion order; the first that returns a term
// wins. A new registry starts with the Church numeral and Church boolean
// resolvers; user definitions are appended after them and therefore
// cannot shadow the built-ins.
type Definitions struct {
	resolvers []Resolver
	names     map[string]bool
}

// NewDefinitions returns a registry with the built-in Church numeral and
// Church boolean resolvers.
func NewDefinitions() *Definitions {
	d := &Definitions{names: make(map[string]bool)}
	return d.Add(newNumeralResolver()).Add(ResolverFunc(resolveChurchBoolean))
}

// Add appends a resolver and returns the registry for chaining.
func (d *Definitions) Add(r Resolver) *Definitions {
	d.resolvers = append(d.resolvers, r)
	return d
}

// Define registers a named definition. The name resolves only at
// disambiguator zero, like every source-written name.
func (d *Definitions) Define(name string, term Term) error {
	if d.names == nil {
		d.names = make(map[string]bool)
	}
	if d.names[name] {
		return fmt.Errorf("duplicate definition of %q", name)
	}
	d.names[name] = true
	d.Add(ResolverFunc(func(v Variable) (Term, bool) {
		if v.Name == name && v.Disambiguator == 0 {
			return term, true
		}
		return nil, false
	}))
	return nil
}

// DefineProgram registers every definition of a parsed program,
// collecting independent failures instead of stopping at the first.
func (d *Definitions) DefineProgram(p *Program) error {
	var errs *multierror.Error
	for _, def := range p.Definitions {
		if err := d.Define(def.Name, def.Term); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Resolve consults the resolvers in order.
func (d *Definitions) Resolve(v Variable) (Term, bool) {
	if d == nil {
		return nil, false
	}
	for _, r := range d.resolvers {
		if t, ok := r.Resolve(v); ok {
			return t, true
		}
	}
	return nil, false
}

// numeralResolver resolves names that parse as non-negative integers to
// Church numerals. Terms are immutable, so resolved numerals are shared
// through a small cache instead of being rebuilt per occurrence.
type numeralResolver struct {
	cache *lru.Cache[uint64, Term]
}

func newNumeralResolver() *numeralResolver {
	cache, err := lru.New[uint64, Term](256)
	if err != nil {
		panic(err)
	}
	return &numeralResolver{cache: cache}
}

func (r *numeralResolver) Resolve(v Variable) (Term, bool) {
	if v.Disambiguator != 0 {
		return nil, false
	}
	n, err := strconv.ParseUint(v.Name, 10, 64)
	if err != nil {
		return nil, false
	}
	if t, ok := r.cache.Get(n); ok {
		return t, true
	}
	t := ChurchNumeral(n)
	r.cache.Add(n, t)
	return t, true
}

func resolveChurchBoolean(v Variable) (Term, bool) {
	if v.Disambiguator != 0 {
		return nil, false
	}
	switch v.Name {
	case "True":
		return ChurchBoolean(true), true
	case "False":
		return ChurchBoolean(false), true
	}
	return nil, false
}

// Expand performs one leftmost-outermost δ-expansion: the first free
// occurrence of a resolvable name is replaced by its definition term.
// Variables bound by an enclosing abstraction are never expanded;
// shadowing beats definition.
func Expand(t Term, defs *Definitions) Step {
	bound := set.New[Variable](8)
	if out, ok := t.expand(defs, bound); ok {
		return Step{Kind: Delta, Term: out}
	}
	return Step{Kind: Identity, Term: t}
}

func (v Var) expand(defs *Definitions, bound *set.Set[Variable]) (Term, bool) {
	if bound.Contains(v.Variable) {
		return v, false
	}
	if t, ok := defs.Resolve(v.Variable); ok {
		return t, true
	}
	return v, false
}

func (a Abstraction) expand(defs *Definitions, bound *set.Set[Variable]) (Term, bool) {
	inserted := bound.Insert(a.Param)
	body, ok := a.Body.expand(defs, bound)
	if inserted {
		bound.Remove(a.Param)
	}
	if !ok {
		return a, false
	}
	return Abstraction{Param: a.Param, Body: body}, true
}

func (a Application) expand(defs *Definitions, bound *set.Set[Variable]) (Term, bool) {
	if left, ok := a.Func.expand(defs, bound); ok {
		return Application{Func: left, Arg: a.Arg}, true
	}
	if right, ok := a.Arg.expand(defs, bound); ok {
		return Application{Func: a.Func, Arg: right}, true
	}
	return a, false
}
