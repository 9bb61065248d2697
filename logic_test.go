package predkit_test

import (
	"fmt"
	"testing"

	"go.llib.dev/predkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// spy records whether Test was reached,
// to observe short-circuit behaviour of And/Or.
type spy struct {
	called bool
	result bool
}

func (s *spy) pred() predkit.Func[int] {
	return func(int) bool {
		s.called = true
		return s.result
	}
}

func (s *spy) biPred() predkit.BiFunc[int, int] {
	return func(int, int) bool {
		s.called = true
		return s.result
	}
}

func (s *spy) triPred() predkit.TriFunc[int, int, int] {
	return func(int, int, int) bool {
		s.called = true
		return s.result
	}
}

func TestPredicate_And(t *testing.T) {
	t.Run("both hold", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		p := predkit.AlwaysTrue[int]().And(predkit.AlwaysTrue[int]())
		assert.True(t, p.Test(rnd.Int()))
	})
	t.Run("right operand fails", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		p := predkit.AlwaysTrue[int]().And(predkit.AlwaysFalse[int]())
		assert.False(t, p.Test(rnd.Int()))
	})
	t.Run("short-circuits when the left operand is false", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		right := &spy{result: true}
		p := predkit.AlwaysFalse[int]().And(right.pred())
		assert.False(t, p.Test(rnd.Int()))
		assert.False(t, right.called, "right operand was not expected to be evaluated")
	})
	t.Run("right operand is evaluated when the left operand is true", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		right := &spy{result: true}
		p := predkit.AlwaysTrue[int]().And(right.pred())
		assert.True(t, p.Test(rnd.Int()))
		assert.True(t, right.called)
	})
	t.Run("nil partner is rejected at construction time", func(t *testing.T) {
		pv := assert.Panic(t, func() { predkit.AlwaysTrue[int]().And(nil) })
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, predkit.ErrNilPredicate, err)
	})
	t.Run("label is composed from the operand display forms", func(t *testing.T) {
		p := predkit.AlwaysTrue[int]().And(predkit.AlwaysFalse[int]())
		assert.Equal(t, "(TRUE AND FALSE)", fmt.Sprint(p))
	})
}

func TestPredicate_Or(t *testing.T) {
	t.Run("either operand holding is enough", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		p := predkit.AlwaysFalse[int]().Or(predkit.AlwaysTrue[int]())
		assert.True(t, p.Test(rnd.Int()))
	})
	t.Run("neither operand holds", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		p := predkit.AlwaysFalse[int]().Or(predkit.AlwaysFalse[int]())
		assert.False(t, p.Test(rnd.Int()))
	})
	t.Run("short-circuits when the left operand is true", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		right := &spy{result: false}
		p := predkit.AlwaysTrue[int]().Or(right.pred())
		assert.True(t, p.Test(rnd.Int()))
		assert.False(t, right.called, "right operand was not expected to be evaluated")
	})
	t.Run("right operand is evaluated when the left operand is false", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		right := &spy{result: true}
		p := predkit.AlwaysFalse[int]().Or(right.pred())
		assert.True(t, p.Test(rnd.Int()))
		assert.True(t, right.called)
	})
	t.Run("nil partner is rejected at construction time", func(t *testing.T) {
		pv := assert.Panic(t, func() { predkit.AlwaysFalse[int]().Or(nil) })
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, predkit.ErrNilPredicate, err)
	})
}

func TestPredicate_Negate(t *testing.T) {
	s := testcase.NewSpec(t)

	value := testcase.Let[bool](s, func(t *testcase.T) bool {
		return t.Random.Bool()
	})

	s.Then("it inverts every result", func(t *testcase.T) {
		p := predkit.Always[int](value.Get(t), t.Random.String())

		arg := t.Random.Int()
		assert.Equal(t, !p.Test(arg), p.Negate().Test(arg))
	})

	s.Then("double negation restores the original behaviour", func(t *testcase.T) {
		p := predkit.Always[int](value.Get(t), t.Random.String())

		arg := t.Random.Int()
		assert.Equal(t, p.Test(arg), p.Negate().Negate().Test(arg))
	})

	s.Then("negated always-false holds for anything", func(t *testcase.T) {
		assert.True(t, predkit.AlwaysFalse[int]().Negate().Test(t.Random.Int()))
	})

	s.Then("the label documents the negation", func(t *testcase.T) {
		got := predkit.AlwaysTrue[int]().Negate()
		assert.Equal(t, "NOT TRUE", fmt.Sprint(got))
	})
}

func TestBiPredicate_logic(t *testing.T) {
	t.Run("and + or evaluate with both arguments forwarded", func(t *testing.T) {
		firstIs := predkit.BiFunc[int, int](func(a, b int) bool { return a == 1 })
		secondIs := predkit.BiFunc[int, int](func(a, b int) bool { return b == 2 })
		assert.True(t, firstIs.And(secondIs).Test(1, 2))
		assert.False(t, firstIs.And(secondIs).Test(1, 3))
		assert.True(t, firstIs.Or(secondIs).Test(0, 2))
		assert.False(t, firstIs.Or(secondIs).Test(0, 0))
	})
	t.Run("and short-circuits", func(t *testing.T) {
		right := &spy{result: true}
		assert.False(t, predkit.BiAlwaysFalse[int, int]().And(right.biPred()).Test(1, 2))
		assert.False(t, right.called)
	})
	t.Run("or short-circuits", func(t *testing.T) {
		right := &spy{result: false}
		assert.True(t, predkit.BiAlwaysTrue[int, int]().Or(right.biPred()).Test(1, 2))
		assert.False(t, right.called)
	})
	t.Run("negate inverts", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		eq := predkit.BiFunc[int, int](func(a, b int) bool { return a == b })
		a, b := rnd.Int(), rnd.Int()
		assert.Equal(t, !eq.Test(a, b), eq.Negate().Test(a, b))
	})
	t.Run("nil partner is rejected at construction time", func(t *testing.T) {
		assert.Panic(t, func() { predkit.BiAlwaysTrue[int, int]().And(nil) })
		assert.Panic(t, func() { predkit.BiAlwaysTrue[int, int]().Or(nil) })
	})
}

func TestTriPredicate_logic(t *testing.T) {
	t.Run("and + or evaluate with all three arguments forwarded", func(t *testing.T) {
		ordered := predkit.TriFunc[int, int, int](func(a, b, c int) bool { return a < b && b < c })
		allSame := predkit.TriFunc[int, int, int](func(a, b, c int) bool { return a == b && b == c })
		assert.False(t, ordered.And(allSame).Test(1, 2, 3))
		assert.True(t, ordered.Or(allSame).Test(1, 2, 3))
		assert.True(t, ordered.Or(allSame).Test(7, 7, 7))
		assert.False(t, ordered.Or(allSame).Test(3, 2, 1))
	})
	t.Run("and short-circuits", func(t *testing.T) {
		right := &spy{result: true}
		p := predkit.TriAlwaysFalse[int, int, int]().And(right.triPred())
		assert.False(t, p.Test(1, 2, 3))
		assert.False(t, right.called)
	})
	t.Run("or short-circuits", func(t *testing.T) {
		right := &spy{result: false}
		p := predkit.TriAlwaysTrue[int, int, int]().Or(right.triPred())
		assert.True(t, p.Test(1, 2, 3))
		assert.False(t, right.called)
	})
	t.Run("negate inverts", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		v := rnd.Bool()
		p := predkit.TriAlways[int, int, int](v, "const")
		assert.Equal(t, !v, p.Negate().Test(1, 2, 3))
	})
	t.Run("nil partner is rejected at construction time", func(t *testing.T) {
		pv := assert.Panic(t, func() { predkit.TriAlwaysTrue[int, int, int]().And(nil) })
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, predkit.ErrNilPredicate, err)
		assert.Panic(t, func() { predkit.TriAlwaysTrue[int, int, int]().Or(nil) })
	})
}
