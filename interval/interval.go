// Package interval defines semitone distances and pure functions over
// pitch-class sets: normalization, 12-bit signatures and distance-bounded
// signature neighborhoods.
package interval

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Semitone distances from a root note.
const (
	PerfectUnison = 0
	Root          = 0
	SemiTone      = 1
	Tone          = 2 * SemiTone
	Minor2nd      = 1
	Major2nd      = 2
	Minor3rd      = 3
	Major3rd      = 4
	Perfect4th    = 5
	Diminished5th = 6
	Augmented4th  = 6
	TriTone       = 6
	Perfect5th    = 7
	Augmented5th  = 8
	Minor6th      = 8
	Major6th      = 9
	Minor7th      = 10
	Major7th      = 11
	Octave        = 12
	Minor9th      = 13
	Major9th      = 14
	Perfect11th   = 17
	Major13th     = 21
)

// NumSignatures is the number of distinct pitch-class signatures (2^12).
const NumSignatures = 1 << Octave

// ShortNames maps interval values to their conventional abbreviations.
var ShortNames = map[int]string{
	Root:          "R",
	Minor2nd:      "m2",
	Major2nd:      "M2",
	Minor3rd:      "m3",
	Major3rd:      "M3",
	Perfect4th:    "P4",
	Diminished5th: "dim5",
	Perfect5th:    "P5",
	Minor6th:      "m6",
	Major6th:      "M6",
	Minor7th:      "m7",
	Major7th:      "M7",
	Octave:        "O",
	Minor9th:      "m9",
	Major9th:      "M9",
	Perfect11th:   "P11",
	Major13th:     "M13",
}

// PitchClass reduces a note value to the range 0..11. Unlike the % operator
// it floors, so negative values land in the same class as their octave-shifted
// positives.
func PitchClass(value int) int {
	m := value % Octave
	if m < 0 {
		m += Octave
	}
	return m
}

// Normalize reduces every interval to its pitch class and removes duplicates.
// The result is sorted ascending so it can be compared with a plain slice
// equality check.
func Normalize(intervals []int) []int {
	seen := make(map[int]bool, len(intervals))
	for _, v := range intervals {
		seen[PitchClass(v)] = true
	}
	res := make([]int, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	sort.Ints(res)
	return res
}

// Signature translates a list of tone intervals to a 12-bit mask where bit i
// is set iff pitch class i is present. It is order-independent and
// octave-independent.
func Signature(intervals []int) int {
	signature := 0
	for _, v := range Normalize(intervals) {
		signature |= 1 << v
	}
	return signature
}

// NearSignatures returns every signature whose pitch-class content differs
// from the given one by exactly distance notes. Distance 0 returns the
// signature itself. The result may contain duplicates; callers must tolerate
// them. A negative distance is an input error and a distance larger than 12
// yields no signatures.
func NearSignatures(signature, distance int) ([]int, error) {
	if distance < 0 {
		return nil, fmt.Errorf("near signatures: distance must be positive or zero, got %d", distance)
	}
	if distance == 0 {
		return []int{signature}, nil
	}
	if distance > Octave {
		return nil, nil
	}

	var near []int
	for _, bits := range combin.Combinations(Octave, distance) {
		mask := 0
		for _, bit := range bits {
			mask |= 1 << bit
		}
		near = append(near, signature^mask)
	}
	return near, nil
}

// Transpose shifts every interval by the given number of semitone steps,
// dropping results that fall below zero.
func Transpose(intervals []int, steps int) []int {
	var res []int
	for _, v := range intervals {
		if v+steps >= 0 {
			res = append(res, v+steps)
		}
	}
	return res
}

// MultiplyOverOctaves repeats the interval list once per octave, each copy
// shifted up by a full octave relative to the previous one.
func MultiplyOverOctaves(intervals []int, octaves int) []int {
	var res []int
	for i := 0; i < octaves; i++ {
		offset := i * Octave
		for _, v := range intervals {
			res = append(res, v+offset)
		}
	}
	return res
}
