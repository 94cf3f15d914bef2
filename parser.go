package reduct

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Program is a parsed source file: zero or more named definitions
// followed by a single formula.
type Program struct {
	Definitions []Definition
	Formula     Term
}

// Definition is one `name = formula` entry of a program.
type Definition struct {
	Name  string
	Term  Term
	Range hcl.Range
}

// ParseFormula parses a single formula.
//
// Supported syntax:
//   - Variables: x, y, foo, bar123, 0, _
//   - Abstraction: λx.body, \x.body or &x.body; λx y z.body is sugar
//     for λx.λy.λz.body
//   - Application: f x or (f x), left-associative
//   - Comments: # to end of line
//
// The returned diagnostics may contain warnings even on success; a nil
// term means the input did not match the grammar.
func ParseFormula(filename, src string) (Term, hcl.Diagnostics) {
	p := newParser(filename, src)
	t := p.formula()
	t = p.finish(t)
	return t, p.diags
}

// ParseProgram parses zero or more `name = formula` definitions followed
// by a single formula. A definition ends at the first line break that is
// not inside parentheses, or before a following `name =` on the same line.
func ParseProgram(filename, src string) (*Program, hcl.Diagnostics) {
	p := newParser(filename, src)
	prog := &Program{}
	for {
		p.skipTrivia()
		if !p.atDefinition() {
			break
		}
		start := p.pos
		name, _, _ := p.identifier()
		p.skipTrivia()
		p.next() // '='
		end, depth := p.pos.Byte, 0
		for ; end < len(p.src) && (p.src[end] != '\n' || depth > 0); end++ {
			switch p.src[end] {
			case '(':
				depth++
			case ')':
				depth--
			case '#':
				for end+1 < len(p.src) && p.src[end+1] != '\n' {
					end++
				}
			}
		}
		sub := &parser{src: p.src[:end], filename: p.filename, pos: p.pos, diags: p.diags}
		t := sub.formula()
		p.pos, p.diags = sub.pos, sub.diags
		if t == nil {
			return nil, p.diags
		}
		prog.Definitions = append(prog.Definitions, Definition{
			Name:  name,
			Term:  t,
			Range: p.rangeFrom(start),
		})
	}
	t := p.formula()
	prog.Formula = p.finish(t)
	if prog.Formula == nil {
		return nil, p.diags
	}
	return prog, p.diags
}

type parser struct {
	src      string
	filename string
	pos      hcl.Pos
	diags    hcl.Diagnostics
}

func newParser(filename, src string) *parser {
	return &parser{
		src:      src,
		filename: filename,
		pos:      hcl.Pos{Line: 1, Column: 1},
	}
}

// finish checks that the whole input was consumed.
func (p *parser) finish(t Term) Term {
	if t == nil {
		return nil
	}
	p.skipTrivia()
	if !p.eof() {
		p.errorf("unexpected characters after formula")
		return nil
	}
	return t
}

// formula parses a non-empty, left-associative sequence of atoms.
func (p *parser) formula() Term {
	p.skipTrivia()
	left := p.atom()
	if left == nil {
		return nil
	}
	for {
		p.skipTrivia()
		if !p.startsAtom() || p.atDefinition() {
			break
		}
		right := p.atom()
		if right == nil {
			return nil
		}
		left = Application{Func: left, Arg: right}
	}
	return left
}

// atom parses a parenthesized formula, an abstraction or a variable.
func (p *parser) atom() Term {
	switch r := p.peek(); {
	case r == '(':
		p.next()
		t := p.formula()
		if t == nil {
			return nil
		}
		p.skipTrivia()
		if p.peek() != ')' {
			p.errorf("expected ')'")
			return nil
		}
		p.next()
		return t
	case isLambda(r):
		return p.abstraction()
	default:
		name, _, ok := p.identifier()
		if !ok {
			p.errorf("expected a formula")
			return nil
		}
		return Var{lowerIdentifier(name)}
	}
}

// abstraction parses `lambda identifier_list '.' formula`. A list of
// several identifiers is sugar for nested abstractions; every generated
// abstraction shares the source span of the original.
func (p *parser) abstraction() Term {
	start := p.pos
	p.next() // lambda character
	p.skipTrivia()

	var params []Variable
	for {
		name, _, ok := p.identifier()
		if !ok {
			if len(params) == 0 {
				p.errorf("expected a parameter name after the lambda")
				return nil
			}
			break
		}
		params = append(params, lowerIdentifier(name))
		p.skipTrivia()
		if p.peek() == '.' {
			break
		}
	}
	if p.peek() != '.' {
		p.errorf("expected '.' after abstraction parameters")
		return nil
	}
	p.next()

	body := p.formula()
	if body == nil {
		return nil
	}

	rng := p.rangeFrom(start)
	t := body
	for i := len(params) - 1; i >= 0; i-- {
		abs := Abstraction{Param: params[i], Body: t}
		p.checkUnnecessaryAbstraction(abs, rng)
		t = abs
	}
	return t
}

// checkUnnecessaryAbstraction warns about η-reducible abstractions of
// the shape λx.(M x) where x does not occur free in M.
func (p *parser) checkUnnecessaryAbstraction(a Abstraction, rng hcl.Range) {
	app, ok := a.Body.(Application)
	if !ok {
		return
	}
	v, ok := app.Arg.(Var)
	if !ok || v.Variable != a.Param {
		return
	}
	if IsFreeIn(app.Func)(a.Param) {
		return
	}
	subject := rng
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  "unnecessary abstraction",
		Detail: fmt.Sprintf("%s only applies its argument to %s and can be replaced by it.",
			a.String(), app.Func.String()),
		Subject: &subject,
	})
}

// atDefinition reports whether the input continues with `name '='`,
// which starts a program definition rather than a formula atom.
func (p *parser) atDefinition() bool {
	if !isIdentStart(p.peek()) {
		return false
	}
	save := p.pos
	p.identifier()
	p.skipTrivia()
	eq := p.peek() == '='
	p.pos = save
	return eq
}

// identifier consumes one identifier, or reports false without
// consuming anything.
func (p *parser) identifier() (string, hcl.Range, bool) {
	start := p.pos
	if !isIdentStart(p.peek()) {
		return "", p.rangeFrom(start), false
	}
	p.next()
	for isIdentContinue(p.peek()) {
		p.next()
	}
	return p.src[start.Byte:p.pos.Byte], p.rangeFrom(start), true
}

func (p *parser) startsAtom() bool {
	r := p.peek()
	return r == '(' || isLambda(r) || isIdentStart(r)
}

// skipTrivia consumes whitespace and '#' line comments.
func (p *parser) skipTrivia() {
	for !p.eof() {
		r := p.peek()
		switch {
		case unicode.IsSpace(r):
			p.next()
		case r == '#':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		default:
			return
		}
	}
}

func (p *parser) eof() bool {
	return p.pos.Byte >= len(p.src)
}

// peek returns the rune at the current position, or 0 at end of input.
func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos.Byte:])
	return r
}

// next consumes one rune, tracking line and column.
func (p *parser) next() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos.Byte:])
	p.pos.Byte += size
	if r == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
	return r
}

func (p *parser) rangeFrom(start hcl.Pos) hcl.Range {
	return hcl.Range{Filename: p.filename, Start: start, End: p.pos}
}

// errorf records a parse error at the current position. The parser
// reports a single error, at the earliest failing offset.
func (p *parser) errorf(format string, args ...any) {
	subject := hcl.Range{Filename: p.filename, Start: p.pos, End: p.pos}
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf(format, args...),
		Subject:  &subject,
	})
}

const lambdaRune = 'λ'

func isLambda(r rune) bool {
	return r == '&' || r == lambdaRune || r == '\\'
}

// Identifiers start with a letter, an ASCII digit or an underscore and
// continue with letters, digits, underscores or subscript digits; the
// lambda character is excluded everywhere.
func isIdentStart(r rune) bool {
	if r == lambdaRune {
		return false
	}
	return r == '_' || (r >= '0' && r <= '9') || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	if r == lambdaRune {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || isSubscriptDigit(r)
}

func isSubscriptDigit(r rune) bool {
	return r >= '₀' && r <= '₉'
}

// lowerIdentifier converts an identifier to a Variable. A trailing run
// of subscript digits becomes the disambiguator, so terms printed by
// the engine parse back to syntactically equal terms.
func lowerIdentifier(name string) Variable {
	i := len(name)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(name[:i])
		if !isSubscriptDigit(r) {
			break
		}
		i -= size
	}
	if i == len(name) || i == 0 {
		return Variable{Name: name}
	}
	d := 0
	for _, r := range name[i:] {
		d = d*10 + int(r-'₀')
	}
	return Variable{Name: name[:i], Disambiguator: d}
}
