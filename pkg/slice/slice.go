// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter) leveraging generics.
*/
package slice

// Map maps a slice of type T to a freshly allocated slice of type U.
// The result is never nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns a new slice holding only the elements where the predicate
// evaluates to true, in input order. The input is never modified and the
// result is never nil.
func Filter[T any](input []T, predicate func(T) bool) []T {
	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}
