package slices

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func FilterEmpty[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var empty T
	for _, v := range list {
		if v == empty {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Unique keeps the first occurrence of every value.
func Unique[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Standardize drops empty values and duplicates and sorts the rest.
func Standardize[T constraints.Ordered](list []T) []T {
	result := Unique(FilterEmpty(list))
	slices.Sort(result)
	return result
}
