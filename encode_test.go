package reduct

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestChurchNumeral(t *testing.T) {
	if got := ChurchNumeral(0).String(); got != "λf.λx.x" {
		t.Errorf("Expected 'λf.λx.x', got '%s'", got)
	}
	if got := ChurchNumeral(1).String(); got != "λf.λx.f x" {
		t.Errorf("Expected 'λf.λx.f x', got '%s'", got)
	}
	if got := ChurchNumeral(3).String(); got != "λf.λx.f (f (f x))" {
		t.Errorf("Expected 'λf.λx.f (f (f x))', got '%s'", got)
	}
}

func TestNumeralRoundTrip(t *testing.T) {
	for n := uint64(0); n <= 64; n++ {
		got, ok := DecodeNumeral(ChurchNumeral(n))
		must.True(t, ok)
		must.Eq(t, n, got)
	}
}

func TestDecodeNumeralRejectsIllFormed(t *testing.T) {
	bad := []Term{
		vr("x"),
		bind("f", vr("f")),
		// λf.λx.g x: wrong spine head
		bind("f", bind("x", apply(vr("g"), vr("x")))),
		// λf.λx.f f: wrong spine end
		bind("f", bind("x", apply(vr("f"), vr("f")))),
		// λf.λx.x y: not a spine at all
		bind("f", bind("x", apply(vr("x"), vr("y")))),
	}
	for _, term := range bad {
		if _, ok := DecodeNumeral(term); ok {
			t.Errorf("Expected %s not to decode as a numeral", term)
		}
	}
}

func TestDecodeNumeralShadowedBinder(t *testing.T) {
	// λf.λf.f is zero: the body refers to the inner binder.
	n, ok := DecodeNumeral(bind("f", bind("f", vr("f"))))
	must.True(t, ok)
	must.Eq(t, 0, n)

	// λf.λf.f f cannot be a numeral: the spine head is shadowed.
	_, ok = DecodeNumeral(bind("f", bind("f", apply(vr("f"), vr("f")))))
	must.False(t, ok)
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		got, ok := DecodeBoolean(ChurchBoolean(b))
		must.True(t, ok)
		must.Eq(t, b, got)
	}
}

func TestDecodeBooleanMatchesByBinder(t *testing.T) {
	// Binder names are irrelevant; matching is by variable identity.
	b, ok := DecodeBoolean(bind("t", bind("f", vr("t"))))
	must.True(t, ok)
	must.True(t, b)

	// λa.λa.a selects the inner binder: false.
	b, ok = DecodeBoolean(bind("a", bind("a", vr("a"))))
	must.True(t, ok)
	must.False(t, b)

	// A body free of both binders is not a boolean.
	_, ok = DecodeBoolean(bind("a", bind("b", vr("c"))))
	must.False(t, ok)
}

func TestPairRoundTrip(t *testing.T) {
	a, b := ChurchNumeral(2), ChurchBoolean(true)
	pair := EncodePair(a, b)

	gotA, gotB, ok := DecodePair(pair)
	must.True(t, ok)
	must.True(t, Equal(a, gotA))
	must.True(t, Equal(b, gotB))
}

func TestEncodePairAvoidsCapture(t *testing.T) {
	// The pair selector must not capture a free s in a component.
	pair := EncodePair(vr("s"), vr("y"))
	gotA, gotB, ok := DecodePair(pair)
	must.True(t, ok, must.Sprintf("pair with free s failed to decode: %s", pair))
	must.True(t, Equal(vr("s"), gotA))
	must.True(t, Equal(vr("y"), gotB))
}

func TestDecodePairRejectsCapturedComponents(t *testing.T) {
	// λs.s s y: the first component mentions the binder.
	term := bind("s", apply(vr("s"), vr("s"), vr("y")))
	_, _, ok := DecodePair(term)
	must.False(t, ok)
}

func TestOptionRoundTrip(t *testing.T) {
	value, present, ok := DecodeOption(EncodeSome(ChurchNumeral(5)))
	must.True(t, ok)
	must.True(t, present)
	must.True(t, Equal(ChurchNumeral(5), value))

	_, present, ok = DecodeOption(EncodeNone())
	must.True(t, ok)
	must.False(t, present)

	_, _, ok = DecodeOption(vr("x"))
	must.False(t, ok)
}

func TestResultRoundTrip(t *testing.T) {
	value, isErr, ok := DecodeResult(EncodeOk(ChurchNumeral(1)))
	must.True(t, ok)
	must.False(t, isErr)
	must.True(t, Equal(ChurchNumeral(1), value))

	value, isErr, ok = DecodeResult(EncodeErr(vr("boom")))
	must.True(t, ok)
	must.True(t, isErr)
	must.True(t, Equal(vr("boom"), value))

	_, _, ok = DecodeResult(bind("o", vr("o")))
	must.False(t, ok)
}
