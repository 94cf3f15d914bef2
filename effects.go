package reduct

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// StandardEffects returns the reference side-effect handler with four
// effects:
//
//   - beep: emits a terminal BEL and returns its argument unchanged
//   - rand: expects a pair of Church numerals (lo, hi) and returns a
//     Church numeral uniformly in [lo, hi), wrapped as λf.f n
//   - read: reads one line from in, parses it as a non-negative integer
//     n and applies λf.f n to the original argument
//   - write: expects a Church numeral, prints it to out and returns the
//     identity
//
// A malformed argument yields the `error` atom in place of the result
// (for rand and read it stands where the numeral would, inside λf.f);
// an unrecognized name yields no term, ending evaluation.
func StandardEffects(in io.Reader, out io.Writer) EffectHandler {
	reader := bufio.NewReader(in)
	return func(name Variable, arg Term) (Term, bool) {
		if name.Disambiguator != 0 {
			return nil, false
		}
		switch name.Name {
		case "beep":
			fmt.Fprint(out, "\a")
			return arg, true
		case "rand":
			return wrapNumeral(randNumeral(arg)), true
		case "read":
			return Application{Func: wrapNumeral(readNumeral(reader)), Arg: arg}, true
		case "write":
			return writeNumeral(out, arg), true
		}
		return nil, false
	}
}

// errorAtom marks a failed effect. It is a free name no resolver or
// effect recognizes, so evaluation stops at it.
func errorAtom() Term {
	return Var{Variable{Name: "error"}}
}

// wrapNumeral wraps a term as λf.f t.
func wrapNumeral(t Term) Term {
	f := Variable{Name: "f"}
	return Abstraction{Param: f, Body: Application{Func: Var{f}, Arg: t}}
}

func randNumeral(arg Term) Term {
	loTerm, hiTerm, ok := DecodePair(arg)
	if !ok {
		return errorAtom()
	}
	lo, okLo := DecodeNumeral(loTerm)
	hi, okHi := DecodeNumeral(hiTerm)
	if !okLo || !okHi || lo >= hi {
		return errorAtom()
	}
	return ChurchNumeral(lo + rand.Uint64N(hi-lo))
}

func readNumeral(r *bufio.Reader) Term {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return errorAtom()
	}
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return errorAtom()
	}
	return ChurchNumeral(n)
}

func writeNumeral(out io.Writer, arg Term) Term {
	n, ok := DecodeNumeral(arg)
	if !ok {
		return errorAtom()
	}
	fmt.Fprintln(out, n)
	return I
}
