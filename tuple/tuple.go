// Package tuple holds fixed-arity groups of two, three and four values and
// their extrema.
//
// Extrema are unrolled comparison trees, not loops. When two candidates
// compare equal the tree falls through to the operand it examined later, so
// Max(a, b) returns b when a and b are equal. Callers that care about which
// of several equal values comes back can rely on that order.
package tuple

import (
	"cmp"

	"github.com/ar90n/primext/constraints"
)

type Tuple[T any] struct {
	First  T
	Second T
}

type Tuple3[T any] struct {
	First  T
	Second T
	Third  T
}

type Tuple4[T any] struct {
	First  T
	Second T
	Third  T
	Fourth T
}

func New[T any](first, second T) Tuple[T] {
	return Tuple[T]{First: first, Second: second}
}

func New3[T any](first, second, third T) Tuple3[T] {
	return Tuple3[T]{First: first, Second: second, Third: third}
}

func New4[T any](first, second, third, fourth T) Tuple4[T] {
	return Tuple4[T]{First: first, Second: second, Third: third, Fourth: fourth}
}

// Compare orders two Comparer values. It is meant to be passed to MaxFunc
// and MinFunc.
func Compare[T constraints.Comparer[T]](a, b T) int {
	return a.Compare(b)
}

func (t Tuple[T]) MaxFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) > 0 {
		return t.First
	}
	return t.Second
}

func (t Tuple[T]) MinFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) < 0 {
		return t.First
	}
	return t.Second
}

func (t Tuple3[T]) MaxFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) > 0 {
		if compare(t.First, t.Third) > 0 {
			return t.First
		}
		return t.Third
	}
	if compare(t.Second, t.Third) > 0 {
		return t.Second
	}
	return t.Third
}

func (t Tuple3[T]) MinFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) < 0 {
		if compare(t.First, t.Third) < 0 {
			return t.First
		}
		return t.Third
	}
	if compare(t.Second, t.Third) < 0 {
		return t.Second
	}
	return t.Third
}

func (t Tuple4[T]) MaxFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) > 0 {
		if compare(t.First, t.Third) > 0 {
			if compare(t.First, t.Fourth) > 0 {
				return t.First
			}
			return t.Fourth
		}
		if compare(t.Third, t.Fourth) > 0 {
			return t.Third
		}
		return t.Fourth
	}
	if compare(t.Second, t.Third) > 0 {
		if compare(t.Second, t.Fourth) > 0 {
			return t.Second
		}
		return t.Fourth
	}
	if compare(t.Third, t.Fourth) > 0 {
		return t.Third
	}
	return t.Fourth
}

func (t Tuple4[T]) MinFunc(compare func(a, b T) int) T {
	if compare(t.First, t.Second) < 0 {
		if compare(t.First, t.Third) < 0 {
			if compare(t.First, t.Fourth) < 0 {
				return t.First
			}
			return t.Fourth
		}
		if compare(t.Third, t.Fourth) < 0 {
			return t.Third
		}
		return t.Fourth
	}
	if compare(t.Second, t.Third) < 0 {
		if compare(t.Second, t.Fourth) < 0 {
			return t.Second
		}
		return t.Fourth
	}
	if compare(t.Third, t.Fourth) < 0 {
		return t.Third
	}
	return t.Fourth
}

// Max returns the larger element of t, or t.Second on a tie.
func Max[T constraints.Ordered](t Tuple[T]) T {
	return t.MaxFunc(cmp.Compare[T])
}

// Min returns the smaller element of t, or t.Second on a tie.
func Min[T constraints.Ordered](t Tuple[T]) T {
	return t.MinFunc(cmp.Compare[T])
}

func Max3[T constraints.Ordered](t Tuple3[T]) T {
	return t.MaxFunc(cmp.Compare[T])
}

func Min3[T constraints.Ordered](t Tuple3[T]) T {
	return t.MinFunc(cmp.Compare[T])
}

func Max4[T constraints.Ordered](t Tuple4[T]) T {
	return t.MaxFunc(cmp.Compare[T])
}

func Min4[T constraints.Ordered](t Tuple4[T]) T {
	return t.MinFunc(cmp.Compare[T])
}
