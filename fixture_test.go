package typearg_test

// fixtureSrc is the shared hierarchy used across the package tests:
// D embeds C[string] embeds B embeds A, with B declaring Ordered[B] and C
// declaring Rand in their interface slots. M re-exports C's parameter, E
// pins it, and R reaches P through two paths.
const fixtureSrc = `package fixture

type Rand interface{ random() }

type Ordered[T any] interface{ CompareTo(T) int }

type A struct{ ID int }

type B struct {
	A
	Ordered[B]
}

type C[T any] struct {
	B
	Rand
	Item T
}

type D struct{ C[string] }

type CS = C[string]

type M[U any] struct{ C[U] }

type E struct{ M[int] }

type Num interface{ ~int | ~float64 }

type List[T any] struct{ Items []T }

type Pair[K comparable, V any] struct {
	Key K
	Val V
}

type StringIntPair struct{ Pair[string, int] }

type P[T any] interface{ p(T) }

type Q struct{ P[int] }

type R struct {
	Q
	P[string]
}

func Head(l List[string], flag bool) (string, bool) { return "", flag }
`
