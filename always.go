package predkit

// Default labels of the constant predicates.
const (
	labelTrue  = "TRUE"
	labelFalse = "FALSE"
)

// Always returns a constant Predicate that ignores its argument
// and always yields the given value, rendering as the given label.
func Always[T any](value bool, label string) Const[T] {
	return Const[T]{value: value, label: label}
}

// AlwaysTrue returns the constant Predicate that holds for every argument.
func AlwaysTrue[T any]() Const[T] { return Always[T](true, labelTrue) }

// AlwaysFalse returns the constant Predicate that holds for no argument.
func AlwaysFalse[T any]() Const[T] { return Always[T](false, labelFalse) }

// BiAlways returns a constant BiPredicate that ignores both arguments
// and always yields the given value, rendering as the given label.
func BiAlways[T, U any](value bool, label string) BiConst[T, U] {
	return BiConst[T, U]{value: value, label: label}
}

// BiAlwaysTrue returns the constant BiPredicate that holds for every argument pair.
func BiAlwaysTrue[T, U any]() BiConst[T, U] { return BiAlways[T, U](true, labelTrue) }

// BiAlwaysFalse returns the constant BiPredicate that holds for no argument pair.
func BiAlwaysFalse[T, U any]() BiConst[T, U] { return BiAlways[T, U](false, labelFalse) }

// TriAlways returns a constant TriPredicate that ignores all three arguments
// and always yields the given value, rendering as the given label.
func TriAlways[T, U, V any](value bool, label string) TriConst[T, U, V] {
	return TriConst[T, U, V]{value: value, label: label}
}

// TriAlwaysTrue returns the constant TriPredicate that holds for every argument triple.
func TriAlwaysTrue[T, U, V any]() TriConst[T, U, V] { return TriAlways[T, U, V](true, labelTrue) }

// TriAlwaysFalse returns the constant TriPredicate that holds for no argument triple.
func TriAlwaysFalse[T, U, V any]() TriConst[T, U, V] { return TriAlways[T, U, V](false, labelFalse) }

// Const is a constant single argument predicate.
//
// Two Const values of the same argument type are Equal when their constant
// values match, regardless of how they were constructed. The label is
// cosmetic and takes no part in Equal or Hash, so compare Const values
// with Equal rather than ==.
type Const[T any] struct {
	value bool
	label string
}

func (p Const[T]) Test(T) bool { return p.value }

func (p Const[T]) String() string { return p.label }

// Equal reports whether both constant predicates yield the same value.
func (p Const[T]) Equal(oth Const[T]) bool { return p.value == oth.value }

// Hash yields the same hash code for every equal Const.
func (p Const[T]) Hash() uint64 { return hashOf(p.value) }

func (p Const[T]) And(oth Predicate[T]) Predicate[T] { return and1[T](p, oth) }

func (p Const[T]) Or(oth Predicate[T]) Predicate[T] { return or1[T](p, oth) }

func (p Const[T]) Negate() Predicate[T] { return negate1[T](p) }

// BiConst is a constant two argument predicate.
// Equality semantics match Const.
type BiConst[T, U any] struct {
	value bool
	label string
}

func (p BiConst[T, U]) Test(T, U) bool { return p.value }

func (p BiConst[T, U]) String() string { return p.label }

// Equal reports whether both constant predicates yield the same value.
func (p BiConst[T, U]) Equal(oth BiConst[T, U]) bool { return p.value == oth.value }

// Hash yields the same hash code for every equal BiConst.
func (p BiConst[T, U]) Hash() uint64 { return hashOf(p.value) }

func (p BiConst[T, U]) And(oth BiPredicate[T, U]) BiPredicate[T, U] { return and2[T, U](p, oth) }

func (p BiConst[T, U]) Or(oth BiPredicate[T, U]) BiPredicate[T, U] { return or2[T, U](p, oth) }

func (p BiConst[T, U]) Negate() BiPredicate[T, U] { return negate2[T, U](p) }

func (p BiConst[T, U]) WithArg1(t T) Predicate[U] { return WithArg1[T, U](p, t) }

func (p BiConst[T, U]) WithArg2(u U) Predicate[T] { return WithArg2[T, U](p, u) }

// TriConst is a constant three argument predicate.
// Equality semantics match Const.
type TriConst[T, U, V any] struct {
	value bool
	label string
}

func (p TriConst[T, U, V]) Test(T, U, V) bool { return p.value }

func (p TriConst[T, U, V]) String() string { return p.label }

// Equal reports whether both constant predicates yield the same value.
func (p TriConst[T, U, V]) Equal(oth TriConst[T, U, V]) bool { return p.value == oth.value }

// Hash yields the same hash code for every equal TriConst.
func (p TriConst[T, U, V]) Hash() uint64 { return hashOf(p.value) }

func (p TriConst[T, U, V]) And(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return and3[T, U, V](p, oth)
}

func (p TriConst[T, U, V]) Or(oth TriPredicate[T, U, V]) TriPredicate[T, U, V] {
	return or3[T, U, V](p, oth)
}

func (p TriConst[T, U, V]) Negate() TriPredicate[T, U, V] { return negate3[T, U, V](p) }

func (p TriConst[T, U, V]) WithArg1(t T) BiPredicate[U, V] { return TriWithArg1[T, U, V](p, t) }

func (p TriConst[T, U, V]) WithArg2(u U) BiPredicate[T, V] { return TriWithArg2[T, U, V](p, u) }

func (p TriConst[T, U, V]) WithArg3(v V) BiPredicate[T, U] { return TriWithArg3[T, U, V](p, v) }

func hashOf(value bool) uint64 {
	if value {
		return 1
	}
	return 0
}
