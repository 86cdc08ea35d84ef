// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter) leveraging generics.

Both helpers always return a non-nil slice so that empty results encode as
`[]` rather than `null` in JSON responses.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which predicate is true, in their original order.
func Filter[T any](input []T, predicate func(T) bool) []T {

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}
