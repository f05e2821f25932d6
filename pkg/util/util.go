// Package util holds small generic slice helpers used across the ledger packages.
package util

// Map applies a transformation function to each element of a slice and returns a new slice
// with the transformed values. A nil input yields an empty, non-nil slice so callers can
// replace cached lists wholesale without distinguishing "no data" from "empty".
//
// Type Parameters:
//   - A: The type of elements in the input slice
//   - B: The type of elements in the output slice
//
// Parameters:
//   - coll: The input slice to transform
//   - mapper: Function that transforms each element and receives the element's index
//
// Returns:
//   - []B: A new slice containing the transformed elements
func Map[A any, B any](coll []A, mapper func(item A, index uint64) B) []B {
	out := make([]B, len(coll))
	for i, item := range coll {
		out[i] = mapper(item, uint64(i))
	}
	return out
}

// Find returns the first element in a slice that satisfies the provided criteria function.
//
// Returns:
//   - A: The first matching element, or the zero value of A
//   - bool: Whether a match was found
func Find[A any](coll []A, criteria func(item A) bool) (A, bool) {
	for _, item := range coll {
		if criteria(item) {
			return item, true
		}
	}
	var zero A
	return zero, false
}
