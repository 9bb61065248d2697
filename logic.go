package predkit

import "fmt"

// The and/or constructors validate their partner predicate eagerly,
// so a missing collaborator surfaces where the combinator is built
// and not at some later Test call.

func and1[T any](p, oth Predicate[T]) Predicate[T] {
	if oth == nil {
		panic(ErrNilPredicate.F("And"))
	}
	return monoPred[T]{
		label: fmt.Sprintf("(%s AND %s)", displayOf(p), displayOf(oth)),
		test: func(t T) bool {
			return p.Test(t) && oth.Test(t)
		},
	}
}

func or1[T any](p, oth Predicate[T]) Predicate[T] {
	if oth == nil {
		panic(ErrNilPredicate.F("Or"))
	}
	return monoPred[T]{
		label: fmt.Sprintf("(%s OR %s)", displayOf(p), displayOf(oth)),
		test: func(t T) bool {
			return p.Test(t) || oth.Test(t)
		},
	}
}

func negate1[T any](p Predicate[T]) Predicate[T] {
	return monoPred[T]{
		label: fmt.Sprintf("NOT %s", displayOf(p)),
		test: func(t T) bool {
			return !p.Test(t)
		},
	}
}

func and2[T, U any](p, oth BiPredicate[T, U]) BiPredicate[T, U] {
	if oth == nil {
		panic(ErrNilPredicate.F("And"))
	}
	return biPred[T, U]{
		label: fmt.Sprintf("(%s AND %s)", displayOf(p), displayOf(oth)),
		test: func(t T, u U) bool {
			return p.Test(t, u) && oth.Test(t, u)
		},
	}
}

func or2[T, U any](p, oth BiPredicate[T, U]) BiPredicate[T, U] {
	if oth == nil {
		panic(ErrNilPredicate.F("Or"))
	}
	return biPred[T, U]{
		label: fmt.Sprintf("(%s OR %s)", displayOf(p), displayOf(oth)),
		test: func(t T, u U) bool {
			return p.Test(t, u) || oth.Test(t, u)
		},
	}
}

func negate2[T, U any](p BiPredicate[T, U]) BiPredicate[T, U] {
	return biPred[T, U]{
		label: fmt.Sprintf("NOT %s", displayOf(p)),
		test: func(t T, u U) bool {
			return !p.Test(t, u)
		},
	}
}

func and3[T, U, V any](p, oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	if oth == nil {
		panic(ErrNilPredicate.F("And"))
	}
	return triPred[T, U, V]{
		label: fmt.Sprintf("(%s AND %s)", displayOf(p), displayOf(oth)),
		test: func(t T, u U, v V) bool {
			return p.Test(t, u, v) && oth.Test(t, u, v)
		},
	}
}

func or3[T, U, V any](p, oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	if oth == nil {
		panic(ErrNilPredicate.F("Or"))
	}
	return triPred[T, U, V]{
		label: fmt.Sprintf("(%s OR %s)", displayOf(p), displayOf(oth)),
		test: func(t T, u U, v V) bool {
			return p.Test(t, u, v) || oth.Test(t, u, v)
		},
	}
}

func negate3[T, U, V any](p TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return triPred[T, U, V]{
		label: fmt.Sprintf("NOT %s", displayOf(p)),
		test: func(t T, u U, v V) bool {
			return !p.Test(t, u, v)
		},
	}
}
