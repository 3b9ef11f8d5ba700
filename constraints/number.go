package constraints

import (
	"golang.org/x/exp/constraints"
)

type Integer = constraints.Integer

type Number interface {
	constraints.Integer | constraints.Float
}

// Ordered is any type supporting the built-in comparison operators.
type Ordered = constraints.Ordered

// Comparer is implemented by types that define their own total order.
// Compare returns a negative number when the receiver sorts before other,
// zero when both are equal and a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}
