package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/monads/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(x int) int { return x * 2 }
	assert.Equal(t, 6, Map(rop.Ok[int, string](3), double).Unwrap())

	called := false
	out := Map(rop.Err[int]("Error"), func(x int) string {
		called = true
		return ""
	})
	assert.Equal(t, "Error", out.UnwrapErr())
	assert.False(t, called)
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()

	f := func(x int) int { return x + 1 }
	g := func(x int) string { return strconv.Itoa(x) }

	for _, r := range []rop.Result[int, string]{rop.Ok[int, string](1), rop.Err[int]("e")} {
		assert.Equal(t, r, Map(r, func(x int) int { return x }))
		assert.Equal(t, Map(Map(r, f), g), Map(r, func(x int) string { return g(f(x)) }))
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	code := func(s string) int { return len(s) }
	assert.Equal(t, 2, MapErr(rop.Ok[int, string](2), code).Unwrap())
	assert.Equal(t, 4, MapErr(rop.Err[int]("boom"), code).UnwrapErr())
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	length := func(s string) int { return len(s) }
	assert.Equal(t, 3, MapOr(rop.Ok[string, string]("foo"), 42, length))
	assert.Equal(t, 42, MapOr(rop.Err[string]("bar"), 42, length))
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()

	k := 21
	fErr := func(string) int { return k * 2 }
	fOk := func(v string) int { return len(v) }

	assert.Equal(t, 3, MapOrElse(rop.Ok[string, string]("foo"), fErr, fOk))
	assert.Equal(t, 42, MapOrElse(rop.Err[string]("bar"), fErr, fOk))
}

func TestAnd_FirstErrorWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "late error", And(rop.Ok[int, string](2), rop.Err[string]("late error")).UnwrapErr())
	assert.Equal(t, "early error", And(rop.Err[int]("early error"), rop.Ok[string, string]("foo")).UnwrapErr())
	assert.Equal(t, "not a 2", And(rop.Err[int]("not a 2"), rop.Err[string]("late error")).UnwrapErr())
	assert.Equal(t, "different result type",
		And(rop.Ok[int, string](2), rop.Ok[string, string]("different result type")).Unwrap())
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	sq := func(x int) rop.Result[int, int] { return rop.Ok[int, int](x * x) }
	fail := func(x int) rop.Result[int, int] { return rop.Err[int](x) }

	assert.Equal(t, 16, AndThen(AndThen(rop.Ok[int, int](2), sq), sq).Unwrap())
	assert.Equal(t, 4, AndThen(AndThen(rop.Ok[int, int](2), sq), fail).UnwrapErr())
	assert.Equal(t, 2, AndThen(AndThen(rop.Ok[int, int](2), fail), sq).UnwrapErr())
	assert.Equal(t, 3, AndThen(AndThen(rop.Err[int](3), sq), sq).UnwrapErr())
}

func TestAndThen_ChangesValueType(t *testing.T) {
	t.Parallel()

	atoi := func(s string) rop.Result[int, error] { return FromPair(strconv.Atoi(s)) }

	assert.Equal(t, 12, AndThen(rop.Ok[string, error]("12"), atoi).Unwrap())
	assert.True(t, AndThen(rop.Ok[string, error]("x"), atoi).IsErr())
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Or(rop.Ok[int, string](2), rop.Err[int](errors.New("late"))).Unwrap())
	assert.Equal(t, 2, Or(rop.Err[int]("early"), rop.Ok[int, error](2)).Unwrap())
	assert.Equal(t, "late", Or(rop.Err[int](1), rop.Err[int]("late")).UnwrapErr())
	assert.Equal(t, 2, Or(rop.Ok[int, int](2), rop.Ok[int, string](100)).Unwrap())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	recoverLen := func(e string) rop.Result[int, int] { return rop.Ok[int, int](len(e)) }
	escalate := func(e string) rop.Result[int, int] { return rop.Err[int](len(e)) }

	assert.Equal(t, 2, OrElse(rop.Ok[int, string](2), recoverLen).Unwrap())
	assert.Equal(t, 3, OrElse(rop.Err[int]("abc"), recoverLen).Unwrap())
	assert.Equal(t, 4, OrElse(rop.Err[int]("abcd"), escalate).UnwrapErr())

	calls := 0
	OrElse(rop.Ok[int, string](1), func(string) rop.Result[int, int] {
		calls++
		return rop.Ok[int, int](0)
	})
	assert.Equal(t, 0, calls)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	fOk := func(v int) string { return "ok " + strconv.Itoa(v) }
	fErr := func(e error) string { return "err " + e.Error() }

	assert.Equal(t, "ok 1", Match(rop.Ok[int, error](1), fOk, fErr))
	assert.Equal(t, "err boom", Match(rop.Err[int](errors.New("boom")), fOk, fErr))
}

func TestConversionRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, rop.Ok[int, string](5).Ok().Unwrap())
	assert.Equal(t, "e", rop.Err[int]("e").Err().Unwrap())
}

func TestFromPairToPair(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	r := FromPair(3, nil)
	require.True(t, r.IsOk())
	v, err := ToPair(r)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	r = FromPair(3, boom)
	require.True(t, r.IsErr())
	v, err = ToPair(r)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, v)
}

func TestTry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Try(func() (int, error) { return strconv.Atoi("7") }).Unwrap())
	assert.True(t, Try(func() (int, error) { return strconv.Atoi("seven") }).IsErr())
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	assert.True(t, Transpose(rop.Ok[rop.Option[int], string](rop.None[int]())).IsNone())
	assert.Equal(t, 3, Transpose(rop.Ok[rop.Option[int], string](rop.Some(3))).Unwrap().Unwrap())
	assert.Equal(t, "e", Transpose(rop.Err[rop.Option[int]]("e")).Unwrap().UnwrapErr())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Flatten(rop.Ok[rop.Result[int, string], string](rop.Ok[int, string](1))).Unwrap())
	assert.Equal(t, "inner", Flatten(rop.Ok[rop.Result[int, string], string](rop.Err[int]("inner"))).UnwrapErr())
	assert.Equal(t, "outer", Flatten(rop.Err[rop.Result[int, string]]("outer")).UnwrapErr())
}
