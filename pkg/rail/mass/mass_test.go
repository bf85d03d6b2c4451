package mass

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/rail/pkg/rail"
)

func TestCombine_AllOk(t *testing.T) {
	t.Parallel()

	r := Combine([]rail.Result[int]{rail.Ok(1), rail.Ok(2), rail.Ok(3)})

	assert.True(t, r.IsOk())
	assert.Equal(t, []int{1, 2, 3}, r.Value())
}

func TestCombine_FirstErrorWins(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")
	r := Combine([]rail.Result[int]{rail.Ok(1), rail.Err[int](errA), rail.Err[int](errB)})

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), errA)
	assert.NotErrorIs(t, r.Err(), errB)
}

func TestCombine_Empty(t *testing.T) {
	t.Parallel()

	r := Combine([]rail.Result[int]{})

	assert.True(t, r.IsOk())
	assert.Empty(t, r.Value())
	assert.NotNil(t, r.Value())
}

func TestCombineWithAllErrors_CollectsEveryError(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")
	r := CombineWithAllErrors([]rail.Result[int]{rail.Ok(1), rail.Err[int](errA), rail.Err[int](errB)})

	assert.True(t, r.IsErr())

	errs := rail.GetErrors(r.Err())
	assert.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], errA)
	assert.ErrorIs(t, errs[1], errB)
}

func TestCombineWithAllErrors_AllOk(t *testing.T) {
	t.Parallel()

	r := CombineWithAllErrors([]rail.Result[string]{rail.Ok("x"), rail.Ok("y")})

	assert.True(t, r.IsOk())
	assert.Equal(t, []string{"x", "y"}, r.Value())
}

func TestAll(t *testing.T) {
	t.Parallel()

	errE := errors.New("e")
	r := All([]rail.Result[int]{rail.Ok(1), rail.Err[int](errE), rail.Ok(3)})

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), errE)

	ok := All([]rail.Result[int]{rail.Ok(1), rail.Ok(3)})
	assert.Equal(t, []int{1, 3}, ok.Value())
}

func TestAny_FirstOkWins(t *testing.T) {
	t.Parallel()

	r := Any([]rail.Result[int]{rail.Err[int](errors.New("e1")), rail.Ok(42), rail.Err[int](errors.New("e2"))})

	assert.True(t, r.IsOk())
	assert.Equal(t, 42, r.Value())
}

func TestAny_LastErrorWhenAllFail(t *testing.T) {
	t.Parallel()

	last := errors.New("last")
	r := Any([]rail.Result[int]{rail.Err[int](errors.New("first")), rail.Err[int](last)})

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), last)
}

func TestAny_Empty(t *testing.T) {
	t.Parallel()

	r := Any([]rail.Result[int]{})

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), rail.ErrEmptyInput)
}

func TestPartition(t *testing.T) {
	t.Parallel()

	input := []rail.Result[int]{
		rail.Ok(1),
		rail.Err[int](errors.New("a")),
		rail.Ok(2),
		rail.Err[int](errors.New("b")),
	}

	values, errs := Partition(input)

	assert.Equal(t, []int{1, 2}, values)
	assert.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].Error())
	assert.Equal(t, "b", errs[1].Error())
	assert.Equal(t, len(input), len(values)+len(errs))
}

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	values, errs := Partition([]rail.Result[int]{})

	assert.Empty(t, values)
	assert.Empty(t, errs)
}

func parseIntResult(s string) rail.Result[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return rail.Err[int](fmt.Errorf("invalid: %s", s))
	}
	return rail.Ok(n)
}

func TestTraverse_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	evaluated := 0
	r := Traverse([]string{"1", "x", "3"}, func(s string) rail.Result[int] {
		evaluated++
		return parseIntResult(s)
	})

	assert.True(t, r.IsErr())
	assert.Equal(t, "invalid: x", r.Err().Error())
	assert.Equal(t, 2, evaluated)
}

func TestTraverse_AllOk(t *testing.T) {
	t.Parallel()

	r := Traverse([]string{"1", "2", "3"}, parseIntResult)

	assert.True(t, r.IsOk())
	assert.Equal(t, []int{1, 2, 3}, r.Value())
}

func TestTraverse_EmptyNeverCallsFn(t *testing.T) {
	t.Parallel()

	r := Traverse([]string{}, func(s string) rail.Result[int] {
		t.Fatalf("fn must not be invoked for empty input")
		return rail.Ok(0)
	})

	assert.True(t, r.IsOk())
	assert.Empty(t, r.Value())
}

func TestCombine2(t *testing.T) {
	t.Parallel()

	r := Combine2(rail.Ok(1), rail.Ok("x"))
	assert.True(t, r.IsOk())
	assert.Equal(t, Tuple2[int, string]{First: 1, Second: "x"}, r.Value())

	errA := errors.New("a")
	bad := Combine2(rail.Err[int](errA), rail.Ok("x"))
	assert.ErrorIs(t, bad.Err(), errA)
}

func TestCombine3_PositionalFirstError(t *testing.T) {
	t.Parallel()

	errB := errors.New("b")
	errC := errors.New("c")
	r := Combine3(rail.Ok(1), rail.Err[string](errB), rail.Err[bool](errC))

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), errB)

	ok := Combine3(rail.Ok(1), rail.Ok("x"), rail.Ok(true))
	assert.Equal(t, Tuple3[int, string, bool]{First: 1, Second: "x", Third: true}, ok.Value())
}
