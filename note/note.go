// Package note maps integer note values to note names and back. Value 0 is
// the C of the reference octave; values are unbounded in both directions.
package note

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/improperdecoherence/chordlab/interval"
)

// Style selects between sharp and flat spellings of the five accidentals.
type Style int

const (
	StyleSharp Style = iota
	StyleFlat
)

var (
	namesSharp = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	namesFlat  = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	namePattern = regexp.MustCompile(`^([A-G][#b]?)(-?\d+)?$`)
)

// ParseStyle recognizes "sharp" and "flat"; anything else is an error.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "sharp":
		return StyleSharp, nil
	case "flat":
		return StyleFlat, nil
	default:
		return StyleSharp, fmt.Errorf("note style must be 'sharp' or 'flat', got %q", s)
	}
}

func (s Style) String() string {
	if s == StyleFlat {
		return "flat"
	}
	return "sharp"
}

func (s Style) names() []string {
	if s == StyleFlat {
		return namesFlat
	}
	return namesSharp
}

// DetectStyle picks the flat style when any of the sampled names carries a
// flat marker, defaulting to sharp otherwise.
func DetectStyle(names []string) Style {
	for _, name := range names {
		if strings.Contains(name, "b") {
			return StyleFlat
		}
	}
	return StyleSharp
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// OctaveOf returns the octave a note value belongs to. Octaves below the
// reference are negative.
func OctaveOf(value int) int {
	return floorDiv(value, interval.Octave)
}

// Name spells a note value in the given style, optionally suffixed with its
// octave number.
func Name(value int, style Style, showOctave bool) string {
	name := style.names()[interval.PitchClass(value)]
	if showOctave {
		name += strconv.Itoa(OctaveOf(value))
	}
	return name
}

// Value parses a note name back to its value. Names without octave digits are
// taken to be in octave 0. Negative octave suffixes are accepted so Name and
// Value are mutual inverses over the whole value range.
func Value(name string) (int, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("invalid note name %q", name)
	}

	base := m[1]
	octave := 0
	if m[2] != "" {
		octave, _ = strconv.Atoi(m[2])
	}

	for i, n := range DetectStyle([]string{base}).names() {
		if n == base {
			return i + octave*interval.Octave, nil
		}
	}
	return 0, fmt.Errorf("invalid note name %q", name)
}

// Names generates count consecutive note names starting at the given value.
func Names(start, count int, style Style, showOctave bool) []string {
	res := make([]string, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, Name(start+i, style, showOctave))
	}
	return res
}

// NamesOf spells every value in the list.
func NamesOf(values []int, style Style, showOctave bool) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		res = append(res, Name(v, style, showOctave))
	}
	return res
}

// ValuesOf parses every name in the list.
func ValuesOf(names []string) ([]int, error) {
	res := make([]int, 0, len(names))
	for _, n := range names {
		v, err := Value(n)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// SortNames orders note names by their note value.
func SortNames(names []string) ([]string, error) {
	values, err := ValuesOf(names)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})
	sorted := make([]string, len(names))
	for i, idx := range order {
		sorted[i] = names[idx]
	}
	return sorted, nil
}

// StripOctave removes any octave digits from a note name.
func StripOctave(name string) string {
	return strings.TrimRight(name, "-0123456789")
}

// IsDiatonicName reports whether the name spells a white key.
func IsDiatonicName(name string) bool {
	return !strings.Contains(name, "b") && !strings.Contains(name, "#")
}

// IsDiatonicValue reports whether the value falls on a white key.
func IsDiatonicValue(value int) bool {
	return IsDiatonicName(Name(value, StyleFlat, false))
}

func rebaseBy(values []int, base, currentBase int) []int {
	res := make([]int, 0, len(values))
	for _, v := range values {
		res = append(res, v-currentBase+base)
	}
	return res
}

func octaveFloor(value int) int {
	return OctaveOf(value) * interval.Octave
}

// Rebase shifts the values uniformly so that the lowest value's octave floor
// lands on base, which must be a C note (a multiple of 12). An empty input
// yields an empty result.
func Rebase(values []int, base int) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if base%interval.Octave != 0 {
		return nil, fmt.Errorf("rebase target %d is not a C note", base)
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return rebaseBy(values, base, octaveFloor(min)), nil
}

// RebaseAll rebases a chord sequence uniformly: the minimum is taken across
// all non-empty inner lists and every list is shifted by the same amount.
func RebaseAll(lists [][]int, base int) ([][]int, error) {
	if len(lists) == 0 {
		return nil, nil
	}
	if base%interval.Octave != 0 {
		return nil, fmt.Errorf("rebase target %d is not a C note", base)
	}

	haveMin := false
	min := 0
	for _, values := range lists {
		for _, v := range values {
			if !haveMin || v < min {
				min = v
				haveMin = true
			}
		}
	}
	if !haveMin {
		return lists, nil
	}

	currentBase := octaveFloor(min)
	res := make([][]int, 0, len(lists))
	for _, values := range lists {
		res = append(res, rebaseBy(values, base, currentBase))
	}
	return res, nil
}
