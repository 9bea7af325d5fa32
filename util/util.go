package util

import (
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Keys returns the keys of a map in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Max returns the larger of two integers.
func Max[A constraints.Integer](a, b A) A {
	if a > b {
		return a
	}
	return b
}

var romanValues = []struct {
	value   int
	numeral string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts a positive integer to a roman numeral, uppercase or
// lowercase.
func Roman(n int, upper bool) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.numeral)
			n -= rv.value
		}
	}
	if upper {
		return b.String()
	}
	return strings.ToLower(b.String())
}
