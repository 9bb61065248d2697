package predkit

import "fmt"

// IgnoreArg1 lifts a single argument predicate into a BiPredicate
// by ignoring the first incoming argument entirely.
// No value is stored for the ignored position.
func IgnoreArg1[T, U any](p Predicate[U]) BiPredicate[T, U] {
	if p == nil {
		panic(ErrNilPredicate.F("IgnoreArg1"))
	}
	return biPred[T, U]{
		label: "ignore arg1",
		test: func(_ T, u U) bool {
			return p.Test(u)
		},
	}
}

// IgnoreArg2 lifts a single argument predicate into a BiPredicate
// by ignoring the second incoming argument entirely.
func IgnoreArg2[T, U any](p Predicate[T]) BiPredicate[T, U] {
	if p == nil {
		panic(ErrNilPredicate.F("IgnoreArg2"))
	}
	return biPred[T, U]{
		label: "ignore arg2",
		test: func(t T, _ U) bool {
			return p.Test(t)
		},
	}
}

// TriIgnoreArg1 lifts a two argument predicate into a TriPredicate
// by ignoring the first incoming argument entirely.
func TriIgnoreArg1[T, U, V any](p BiPredicate[U, V]) TriPredicate[T, U, V] {
	if p == nil {
		panic(ErrNilPredicate.F("TriIgnoreArg1"))
	}
	return triPred[T, U, V]{
		label: "ignore arg1",
		test: func(_ T, u U, v V) bool {
			return p.Test(u, v)
		},
	}
}

// TriIgnoreArg2 lifts a two argument predicate into a TriPredicate
// by ignoring the second incoming argument entirely.
func TriIgnoreArg2[T, U, V any](p BiPredicate[T, V]) TriPredicate[T, U, V] {
	if p == nil {
		panic(ErrNilPredicate.F("TriIgnoreArg2"))
	}
	return triPred[T, U, V]{
		label: "ignore arg2",
		test: func(t T, _ U, v V) bool {
			return p.Test(t, v)
		},
	}
}

// TriIgnoreArg3 lifts a two argument predicate into a TriPredicate
// by ignoring the third incoming argument entirely.
func TriIgnoreArg3[T, U, V any](p BiPredicate[T, U]) TriPredicate[T, U, V] {
	if p == nil {
		panic(ErrNilPredicate.F("TriIgnoreArg3"))
	}
	return triPred[T, U, V]{
		label: "ignore arg3",
		test: func(t T, u U, _ V) bool {
			return p.Test(t, u)
		},
	}
}

// WithArg1 morphs a BiPredicate into a Predicate
// by fixing its first argument to the given value.
func WithArg1[T, U any](p BiPredicate[T, U], t T) Predicate[U] {
	if p == nil {
		panic(ErrNilPredicate.F("WithArg1"))
	}
	return monoPred[U]{
		label: fmt.Sprintf("with arg1 %s", displayOf(t)),
		test: func(u U) bool {
			return p.Test(t, u)
		},
	}
}

// WithArg2 morphs a BiPredicate into a Predicate
// by fixing its second argument to the given value.
func WithArg2[T, U any](p BiPredicate[T, U], u U) Predicate[T] {
	if p == nil {
		panic(ErrNilPredicate.F("WithArg2"))
	}
	return monoPred[T]{
		label: fmt.Sprintf("with arg2 %s", displayOf(u)),
		test: func(t T) bool {
			return p.Test(t, u)
		},
	}
}

// TriWithArg1 morphs a TriPredicate into a BiPredicate
// by fixing its first argument to the given value.
func TriWithArg1[T, U, V any](p TriPredicate[T, U, V], t T) BiPredicate[U, V] {
	if p == nil {
		panic(ErrNilPredicate.F("TriWithArg1"))
	}
	return biPred[U, V]{
		label: fmt.Sprintf("with arg1 %s", displayOf(t)),
		test: func(u U, v V) bool {
			return p.Test(t, u, v)
		},
	}
}

// TriWithArg2 morphs a TriPredicate into a BiPredicate
// by fixing its second argument to the given value.
func TriWithArg2[T, U, V any](p TriPredicate[T, U, V], u U) BiPredicate[T, V] {
	if p == nil {
		panic(ErrNilPredicate.F("TriWithArg2"))
	}
	return biPred[T, V]{
		label: fmt.Sprintf("with arg2 %s", displayOf(u)),
		test: func(t T, v V) bool {
			return p.Test(t, u, v)
		},
	}
}

// TriWithArg3 morphs a TriPredicate into a BiPredicate
// by fixing its third argument to the given value.
func TriWithArg3[T, U, V any](p TriPredicate[T, U, V], v V) BiPredicate[T, U] {
	if p == nil {
		panic(ErrNilPredicate.F("TriWithArg3"))
	}
	return biPred[T, U]{
		label: fmt.Sprintf("with arg3 %s", displayOf(v)),
		test: func(t T, u U) bool {
			return p.Test(t, u, v)
		},
	}
}
