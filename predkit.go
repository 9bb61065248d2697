// Package predkit provides named, introspectable predicate values for one,
// two and three argument forms.
//
// The point of predkit over a plain lambda is everything a lambda throws away:
// a stable display form (fmt.Stringer), value based equality for the constant
// predicates, and adapters to move between arities by binding or ignoring
// arguments.
//
// So when these things matter, instead of
//
//	var p func(MyObject) bool = func(MyObject) bool { return true }
//
// you would use
//
//	var p predkit.Predicate[MyObject] = predkit.AlwaysTrue[MyObject]()
package predkit

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrNilPredicate is raised as a panic when a combinator is constructed with
// a missing collaborator, such as a nil wrapped predicate or a nil And/Or
// partner. The failure happens at construction time, never during Test.
const ErrNilPredicate errorkit.Error = "predkit: nil predicate"

// Predicate is a pure single argument predicate.
//
// Values produced by this package also implement fmt.Stringer.
type Predicate[T any] interface {
	// Test evaluates the predicate against the given argument.
	Test(t T) bool
	// And returns a predicate that is the short-circuiting logical AND of
	// this predicate and the other.
	// When the receiver evaluates to false, other is not evaluated.
	And(oth Predicate[T]) Predicate[T]
	// Or returns a predicate that is the short-circuiting logical OR of
	// this predicate and the other.
	// When the receiver evaluates to true, other is not evaluated.
	Or(oth Predicate[T]) Predicate[T]
	// Negate returns a predicate that inverts every result of this predicate.
	Negate() Predicate[T]
}

// BiPredicate is a pure two argument predicate.
type BiPredicate[T, U any] interface {
	Test(t T, u U) bool
	And(oth BiPredicate[T, U]) BiPredicate[T, U]
	Or(oth BiPredicate[T, U]) BiPredicate[T, U]
	Negate() BiPredicate[T, U]
	// WithArg1 binds the first argument to a fixed value,
	// reducing the predicate to a single argument form.
	WithArg1(t T) Predicate[U]
	// WithArg2 binds the second argument to a fixed value,
	// reducing the predicate to a single argument form.
	WithArg2(u U) Predicate[T]
}

// TriPredicate is the next in succession after Predicate and BiPredicate,
// a pure predicate with three arguments.
type TriPredicate[T, U, V any] interface {
	Test(t T, u U, v V) bool
	And(oth TriPredicate[T, U, V]) TriPredicate[T, U, V]
	Or(oth TriPredicate[T, U, V]) TriPredicate[T, U, V]
	Negate() TriPredicate[T, U, V]
	// WithArg1 binds the first argument to a fixed value,
	// reducing the predicate to a two argument form.
	WithArg1(t T) BiPredicate[U, V]
	// WithArg2 binds the second argument to a fixed value,
	// reducing the predicate to a two argument form.
	WithArg2(u U) BiPredicate[T, V]
	// WithArg3 binds the third argument to a fixed value,
	// reducing the predicate to a two argument form.
	WithArg3(v V) BiPredicate[T, U]
}

// Func lifts an ordinary function into a Predicate.
//
//	var isEven predkit.Predicate[int] = predkit.Func[int](func(n int) bool { return n%2 == 0 })
type Func[T any] func(t T) bool

func (fn Func[T]) Test(t T) bool { return fn(t) }

func (fn Func[T]) And(oth Predicate[T]) Predicate[T] { return and1[T](fn, oth) }

func (fn Func[T]) Or(oth Predicate[T]) Predicate[T] { return or1[T](fn, oth) }

func (fn Func[T]) Negate() Predicate[T] { return negate1[T](fn) }

// BiFunc lifts an ordinary two argument function into a BiPredicate.
type BiFunc[T, U any] func(t T, u U) bool

func (fn BiFunc[T, U]) Test(t T, u U) bool { return fn(t, u) }

func (fn BiFunc[T, U]) And(oth BiPredicate[T, U]) BiPredicate[T, U] { return and2[T, U](fn, oth) }

func (fn BiFunc[T, U]) Or(oth BiPredicate[T, U]) BiPredicate[T, U] { return or2[T, U](fn, oth) }

func (fn BiFunc[T, U]) Negate() BiPredicate[T, U] { return negate2[T, U](fn) }

func (fn BiFunc[T, U]) WithArg1(t T) Predicate[U] { return WithArg1[T, U](fn, t) }

func (fn BiFunc[T, U]) WithArg2(u U) Predicate[T] { return WithArg2[T, U](fn, u) }

// TriFunc lifts an ordinary three argument function into a TriPredicate.
type TriFunc[T, U, V any] func(t T, u U, v V) bool

func (fn TriFunc[T, U, V]) Test(t T, u U, v V) bool { return fn(t, u, v) }

func (fn TriFunc[T, U, V]) And(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return and3[T, U, V](fn, oth)
}

func (fn TriFunc[T, U, V]) Or(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return or3[T, U, V](fn, oth)
}

func (fn TriFunc[T, U, V]) Negate() TriPredicate[T, U, V] { return negate3[T, U, V](fn) }

func (fn TriFunc[T, U, V]) WithArg1(t T) BiPredicate[U, V] { return TriWithArg1[T, U, V](fn, t) }

func (fn TriFunc[T, U, V]) WithArg2(u U) BiPredicate[T, V] { return TriWithArg2[T, U, V](fn, u) }

func (fn TriFunc[T, U, V]) WithArg3(v V) BiPredicate[T, U] { return TriWithArg3[T, U, V](fn, v) }

// Named lifts a function into a Predicate that renders as the given label.
func Named[T any](label string, test func(t T) bool) Predicate[T] {
	if test == nil {
		panic(ErrNilPredicate.F("Named(%q)", label))
	}
	return monoPred[T]{label: label, test: test}
}

// BiNamed lifts a two argument function into a BiPredicate
// that renders as the given label.
func BiNamed[T, U any](label string, test func(t T, u U) bool) BiPredicate[T, U] {
	if test == nil {
		panic(ErrNilPredicate.F("BiNamed(%q)", label))
	}
	return biPred[T, U]{label: label, test: test}
}

// TriNamed lifts a three argument function into a TriPredicate
// that renders as the given label.
func TriNamed[T, U, V any](label string, test func(t T, u U, v V) bool) TriPredicate[T, U, V] {
	if test == nil {
		panic(ErrNilPredicate.F("TriNamed(%q)", label))
	}
	return triPred[T, U, V]{label: label, test: test}
}

// monoPred is the single generic wrapper behind every labelled
// single argument predicate this package produces.
// It is immutable after construction.
type monoPred[T any] struct {
	label string
	test  func(t T) bool
}

func (p monoPred[T]) Test(t T) bool { return p.test(t) }

func (p monoPred[T]) String() string { return p.label }

func (p monoPred[T]) And(oth Predicate[T]) Predicate[T] { return and1[T](p, oth) }

func (p monoPred[T]) Or(oth Predicate[T]) Predicate[T] { return or1[T](p, oth) }

func (p monoPred[T]) Negate() Predicate[T] { return negate1[T](p) }

// biPred is the labelled wrapper for produced two argument predicates.
type biPred[T, U any] struct {
	label string
	test  func(t T, u U) bool
}

func (p biPred[T, U]) Test(t T, u U) bool { return p.test(t, u) }

func (p biPred[T, U]) String() string { return p.label }

func (p biPred[T, U]) And(oth BiPredicate[T, U]) BiPredicate[T, U] { return and2[T, U](p, oth) }

func (p biPred[T, U]) Or(oth BiPredicate[T, U]) BiPredicate[T, U] { return or2[T, U](p, oth) }

func (p biPred[T, U]) Negate() BiPredicate[T, U] { return negate2[T, U](p) }

func (p biPred[T, U]) WithArg1(t T) Predicate[U] { return WithArg1[T, U](p, t) }

func (p biPred[T, U]) WithArg2(u U) Predicate[T] { return WithArg2[T, U](p, u) }

// triPred is the labelled wrapper for produced three argument predicates.
type triPred[T, U, V any] struct {
	label string
	test  func(t T, u U, v V) bool
}

func (p triPred[T, U, V]) Test(t T, u U, v V) bool { return p.test(t, u, v) }

func (p triPred[T, U, V]) String() string { return p.label }

func (p triPred[T, U, V]) And(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return and3[T, U, V](p, oth)
}

func (p triPred[T, U, V]) Or(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return or3[T, U, V](p, oth)
}

func (p triPred[T, U, V]) Negate() TriPredicate[T, U, V] { return negate3[T, U, V](p) }

func (p triPred[T, U, V]) WithArg1(t T) BiPredicate[U, V] { return TriWithArg1[T, U, V](p, t) }

func (p triPred[T, U, V]) WithArg2(u U) BiPredicate[T, V] { return TriWithArg2[T, U, V](p, u) }

func (p triPred[T, U, V]) WithArg3(v V) BiPredicate[T, U] { return TriWithArg3[T, U, V](p, v) }

// displayOf yields the display form of a value for use in labels.
// fmt.Stringer implementations take precedence, the rest renders with %v.
func displayOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
