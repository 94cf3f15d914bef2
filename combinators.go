package reduct

// Standard combinators
//
// I is the identity function.
//
// SK and BCKW form complete combinator calculus systems that can express
// any lambda term.
//
// Ω is UU (or ω ω), the smallest term that has no normal form - it
// reduces to itself infinitely. Y I is another such term.
var (
	// I := λx.x (Identity function)
	I = Abstraction{
		Param: Variable{Name: "x"},
		Body:  Var{Variable{Name: "x"}},
	}

	// K := λx.λy.x (Constant/Cancel)
	// Together with S, forms a complete combinator calculus basis (SK calculus)
	K = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body:  Var{Variable{Name: "x"}},
		},
	}

	// S := λx.λy.λz.x z (y z) (Substitution)
	// Together with K, forms a complete combinator calculus basis (SK calculus)
	S = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body: Abstraction{
				Param: Variable{Name: "z"},
				Body: Application{
					Func: Application{
						Func: Var{Variable{Name: "x"}},
						Arg:  Var{Variable{Name: "z"}},
					},
					Arg: Application{
						Func: Var{Variable{Name: "y"}},
						Arg:  Var{Variable{Name: "z"}},
					},
				},
			},
		},
	}

	// B := λx.λy.λz.x (y z) (Composition)
	B = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body: Abstraction{
				Param: Variable{Name: "z"},
				Body: Application{
					Func: Var{Variable{Name: "x"}},
					Arg: Application{
						Func: Var{Variable{Name: "y"}},
						Arg:  Var{Variable{Name: "z"}},
					},
				},
			},
		},
	}

	// C := λx.λy.λz.x z y (Flip)
	C = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body: Abstraction{
				Param: Variable{Name: "z"},
				Body: Application{
					Func: Application{
						Func: Var{Variable{Name: "x"}},
						Arg:  Var{Variable{Name: "z"}},
					},
					Arg: Var{Variable{Name: "y"}},
				},
			},
		},
	}

	// W := λx.λy.x y y (Warbler/Duplication)
	W = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body: Application{
				Func: Application{
					Func: Var{Variable{Name: "x"}},
					Arg:  Var{Variable{Name: "y"}},
				},
				Arg: Var{Variable{Name: "y"}},
			},
		},
	}

	// U := λx.x x (Self-application)
	U = Abstraction{
		Param: Variable{Name: "x"},
		Body: Application{
			Func: Var{Variable{Name: "x"}},
			Arg:  Var{Variable{Name: "x"}},
		},
	}

	// Ω (Omega) := U U
	// The smallest term that has no normal form
	OMEGA = Application{
		Func: U,
		Arg:  U,
	}
)

// Boolean constants
var (
	// TRUE := λa.λb.a
	TRUE = Abstraction{
		Param: Variable{Name: "a"},
		Body: Abstraction{
			Param: Variable{Name: "b"},
			Body:  Var{Variable{Name: "a"}},
		},
	}

	// FALSE := λa.λb.b
	FALSE = Abstraction{
		Param: Variable{Name: "a"},
		Body: Abstraction{
			Param: Variable{Name: "b"},
			Body:  Var{Variable{Name: "b"}},
		},
	}
)

// Boolean operations
var (
	// AND := λp.λq.p q p
	AND = Abstraction{
		Param: Variable{Name: "p"},
		Body: Abstraction{
			Param: Variable{Name: "q"},
			Body: Application{
				Func: Application{
					Func: Var{Variable{Name: "p"}},
					Arg:  Var{Variable{Name: "q"}},
				},
				Arg: Var{Variable{Name: "p"}},
			},
		},
	}

	// OR := λp.λq.p p q
	OR = Abstraction{
		Param: Variable{Name: "p"},
		Body: Abstraction{
			Param: Variable{Name: "q"},
			Body: Application{
				Func: Application{
					Func: Var{Variable{Name: "p"}},
					Arg:  Var{Variable{Name: "p"}},
				},
				Arg: Var{Variable{Name: "q"}},
			},
		},
	}

	// NOT := λp.p FALSE TRUE
	NOT = Abstraction{
		Param: Variable{Name: "p"},
		Body: Application{
			Func: Application{
				Func: Var{Variable{Name: "p"}},
				Arg:  FALSE,
			},
			Arg: TRUE,
		},
	}
)

// Control flow
var (
	// IFTHENELSE := λp.λa.λb.p a b
	IFTHENELSE = Abstraction{
		Param: Variable{Name: "p"},
		Body: Abstraction{
			Param: Variable{Name: "a"},
			Body: Abstraction{
				Param: Variable{Name: "b"},
				Body: Application{
					Func: Application{
						Func: Var{Variable{Name: "p"}},
						Arg:  Var{Variable{Name: "a"}},
					},
					Arg: Var{Variable{Name: "b"}},
				},
			},
		},
	}
)

// Arithmetic operations
var (
	// SUCC := λn.λf.λx.f (n f x)
	SUCC = Abstraction{
		Param: Variable{Name: "n"},
		Body: Abstraction{
			Param: Variable{Name: "f"},
			Body: Abstraction{
				Param: Variable{Name: "x"},
				Body: Application{
					Func: Var{Variable{Name: "f"}},
					Arg: Application{
						Func: Application{
							Func: Var{Variable{Name: "n"}},
							Arg:  Var{Variable{Name: "f"}},
						},
						Arg: Var{Variable{Name: "x"}},
					},
				},
			},
		},
	}

	// PLUS := λm.λn.λf.λx.m f (n f x)
	PLUS = Abstraction{
		Param: Variable{Name: "m"},
		Body: Abstraction{
			Param: Variable{Name: "n"},
			Body: Abstraction{
				Param: Variable{Name: "f"},
				Body: Abstraction{
					Param: Variable{Name: "x"},
					Body: Application{
						Func: Application{
							Func: Var{Variable{Name: "m"}},
							Arg:  Var{Variable{Name: "f"}},
						},
						Arg: Application{
							Func: Application{
								Func: Var{Variable{Name: "n"}},
								Arg:  Var{Variable{Name: "f"}},
							},
							Arg: Var{Variable{Name: "x"}},
						},
					},
				},
			},
		},
	}

	// MULT := λm.λn.λf.m (n f)
	MULT = Abstraction{
		Param: Variable{Name: "m"},
		Body: Abstraction{
			Param: Variable{Name: "n"},
			Body: Abstraction{
				Param: Variable{Name: "f"},
				Body: Application{
					Func: Var{Variable{Name: "m"}},
					Arg: Application{
						Func: Var{Variable{Name: "n"}},
						Arg:  Var{Variable{Name: "f"}},
					},
				},
			},
		},
	}

	// SUB := λm.λn.n PRED m
	SUB = Abstraction{
		Param: Variable{Name: "m"},
		Body: Abstraction{
			Param: Variable{Name: "n"},
			Body: Application{
				Func: Application{
					Func: Var{Variable{Name: "n"}},
					Arg:  PRED,
				},
				Arg: Var{Variable{Name: "m"}},
			},
		},
	}
)

// Predicates
var (
	// ISZERO := λn.n (λx.FALSE) TRUE
	ISZERO = Abstraction{
		Param: Variable{Name: "n"},
		Body: Application{
			Func: Application{
				Func: Var{Variable{Name: "n"}},
				Arg: Abstraction{
					Param: Variable{Name: "x"},
					Body:  FALSE,
				},
			},
			Arg: TRUE,
		},
	}
)

// Pair operations
var (
	// PAIR := λx.λy.λf.f x y
	PAIR = Abstraction{
		Param: Variable{Name: "x"},
		Body: Abstraction{
			Param: Variable{Name: "y"},
			Body: Abstraction{
				Param: Variable{Name: "f"},
				Body: Application{
					Func: Application{
						Func: Var{Variable{Name: "f"}},
						Arg:  Var{Variable{Name: "x"}},
					},
					Arg: Var{Variable{Name: "y"}},
				},
			},
		},
	}

	// FIRST := λp.p TRUE
	FIRST = Abstraction{
		Param: Variable{Name: "p"},
		Body: Application{
			Func: Var{Variable{Name: "p"}},
			Arg:  TRUE,
		},
	}

	// SECOND := λp.p FALSE
	SECOND = Abstraction{
		Param: Variable{Name: "p"},
		Body: Application{
			Func: Var{Variable{Name: "p"}},
			Arg:  FALSE,
		},
	}
)

// Φ combinator for PRED
var (
	// Φ := λx.PAIR (SECOND x) (SUCC (SECOND x))
	PHI = Abstraction{
		Param: Variable{Name: "x"},
		Body: Application{
			Func: Application{
				Func: PAIR,
				Arg: Application{
					Func: SECOND,
					Arg:  Var{Variable{Name: "x"}},
				},
			},
			Arg: Application{
				Func: SUCC,
				Arg: Application{
					Func: SECOND,
					Arg:  Var{Variable{Name: "x"}},
				},
			},
		},
	}

	// PRED := λn.FIRST (n Φ (PAIR 0 0))
	PRED = Abstraction{
		Param: Variable{Name: "n"},
		Body: Application{
			Func: FIRST,
			Arg: Application{
				Func: Application{
					Func: Var{Variable{Name: "n"}},
					Arg:  PHI,
				},
				Arg: Application{
					Func: Application{
						Func: PAIR,
						Arg:  ChurchNumeral(0),
					},
					Arg: ChurchNumeral(0),
				},
			},
		},
	}
)

// Y combinator for recursion
//
// Y := λf.(λx.f (x x)) (λx.f (x x))
//
// The Y combinator enables recursion in lambda calculus.
// It satisfies the property: Y g = g (Y g)
var Y = Abstraction{
	Param: Variable{Name: "f"},
	Body: Application{
		Func: Abstraction{
			Param: Variable{Name: "x"},
			Body: Application{
				Func: Var{Variable{Name: "f"}},
				Arg: Application{
					Func: Var{Variable{Name: "x"}},
					Arg:  Var{Variable{Name: "x"}},
				},
			},
		},
		Arg: Abstraction{
			Param: Variable{Name: "x"},
			Body: Application{
				Func: Var{Variable{Name: "f"}},
				Arg: Application{
					Func: Var{Variable{Name: "x"}},
					Arg:  Var{Variable{Name: "x"}},
				},
			},
		},
	},
}

// Prelude returns a resolver mapping the standard combinator names to
// the library terms above, so programs can use them without writing
// their own definitions. The CLI loads it in addition to the built-in
// numeral and boolean resolvers.
func Prelude() Resolver {
	table := map[string]Term{
		"I":      I,
		"K":      K,
		"S":      S,
		"B":      B,
		"C":      C,
		"W":      W,
		"U":      U,
		"Y":      Y,
		"succ":   SUCC,
		"plus":   PLUS,
		"mult":   MULT,
		"sub":    SUB,
		"pred":   PRED,
		"iszero": ISZERO,
		"pair":   PAIR,
		"fst":    FIRST,
		"snd":    SECOND,
		"not":    NOT,
		"and":    AND,
		"or":     OR,
		"if":     IFTHENELSE,
	}
	return ResolverFunc(func(v Variable) (Term, bool) {
		if v.Disambiguator != 0 {
			return nil, false
		}
		t, ok := table[v.Name]
		return t, ok
	})
}
