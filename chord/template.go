package chord

import (
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// Musical symbols used in chord names.
const (
	DimSign     = "°"     // degree sign, diminished chords
	HalfDimSign = "\U0001d1a9" // slashed degree sign, half-diminished chords
	FlatSign    = "♭"
)

// Template is an immutable description of a triad archetype: its names and
// its semitone offsets from the root.
type Template struct {
	LongName  string
	ShortName string
	Intervals []int
}

var (
	Major      = &Template{"major", "", []int{interval.Root, interval.Major3rd, interval.Perfect5th}}
	Minor      = &Template{"minor", "m", []int{interval.Root, interval.Minor3rd, interval.Perfect5th}}
	Diminished = &Template{"diminished", DimSign, []int{interval.Root, interval.Minor3rd, interval.Diminished5th}}
	Augmented  = &Template{"augmented", "+", []int{interval.Root, interval.Major3rd, interval.Augmented5th}}
)

// Templates lists the triad archetypes in classification order: the first
// template whose offsets are contained in a played interval set wins.
var Templates = []*Template{Major, Minor, Diminished, Augmented}

// NoteValues places the template at the given root.
func (t *Template) NoteValues(root int) []int {
	values := make([]int, 0, len(t.Intervals))
	for _, i := range t.Intervals {
		values = append(values, root+i)
	}
	return values
}

// ShortNameFor renders e.g. "C", "Cm", "C°" or "C+".
func (t *Template) ShortNameFor(root int, style note.Style) string {
	return note.Name(root, style, false) + t.ShortName
}

// LongNameFor renders e.g. "C major".
func (t *Template) LongNameFor(root int, style note.Style) string {
	if t.LongName == "" {
		return note.Name(root, style, false)
	}
	return note.Name(root, style, false) + " " + t.LongName
}
