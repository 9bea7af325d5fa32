// Package chord models chords as a root, a triad template, an ordered set of
// modifiers and an inversion, with pitch-class signatures derived from the
// sounding notes.
package chord

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// ErrTooFewNotes is returned when fewer than three notes are offered for
// classification.
var ErrTooFewNotes = errors.New("chord classification needs at least 3 notes")

func sortInts(values []int) {
	sort.Ints(values)
}

// DynamicChord is a mutable chord. It is not safe for concurrent mutation;
// callers serialize access.
type DynamicChord struct {
	root      int
	template  *Template
	flags     []Flag
	inversion int

	// onChange, when set, fires after a mutation that altered the chord.
	onChange func(*DynamicChord)
}

// New builds a chord from a root note value, a template and optional modifier
// flags. Cancellation rules apply immediately, so New(0, Major, Dominant7,
// Dominant9) carries only Dominant9.
func New(root int, template *Template, flags ...Flag) *DynamicChord {
	c := &DynamicChord{root: root, template: template}
	c.SetFlags(flags)
	return c
}

// NewNamed is New with the root given as a note name.
func NewNamed(rootName string, template *Template, flags ...Flag) (*DynamicChord, error) {
	root, err := note.Value(rootName)
	if err != nil {
		return nil, err
	}
	return New(root, template, flags...), nil
}

// FromNoteValues classifies played notes into a chord. The values are sorted
// and rebased so the chord is rooted at the lowest note; the first template in
// declaration order whose offsets are a subset of the played intervals wins.
// A nil chord with a nil error means the notes fit no known template, which
// is an expected outcome, not a failure.
func FromNoteValues(values []int) (*DynamicChord, error) {
	if len(values) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewNotes, len(values))
	}

	sorted := append([]int(nil), values...)
	sortInts(sorted)
	rebased, err := note.Rebase(sorted, 0)
	if err != nil {
		return nil, err
	}

	tonic := rebased[0]
	intervals := make(map[int]bool, len(rebased))
	for _, v := range rebased {
		intervals[v-tonic] = true
	}

	for _, t := range Templates {
		if containsAll(intervals, t.Intervals) {
			return New(tonic, t), nil
		}
	}
	return nil, nil
}

func containsAll(set map[int]bool, values []int) bool {
	for _, v := range values {
		if !set[v] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. The template is shared; it is immutable.
// The change callback is not carried over.
func (c *DynamicChord) Clone() *DynamicChord {
	return &DynamicChord{
		root:      c.root,
		template:  c.template,
		flags:     append([]Flag(nil), c.flags...),
		inversion: c.inversion,
	}
}

// OnChange registers a callback fired whenever a mutation actually changes
// the chord.
func (c *DynamicChord) OnChange(fn func(*DynamicChord)) {
	c.onChange = fn
}

func (c *DynamicChord) emitChange() {
	if c.onChange != nil {
		c.onChange(c)
	}
}

// Root returns the root note value.
func (c *DynamicChord) Root() int { return c.root }

// RootName spells the root in the given style.
func (c *DynamicChord) RootName(style note.Style, showOctave bool) string {
	return note.Name(c.root, style, showOctave)
}

// Template returns the triad template the chord is built on.
func (c *DynamicChord) Template() *Template { return c.template }

// Flags returns the active modifier flags in application order.
func (c *DynamicChord) Flags() []Flag {
	return append([]Flag(nil), c.flags...)
}

// FlagMask returns the active modifiers combined into one mask.
func (c *DynamicChord) FlagMask() Flag {
	var mask Flag
	for _, f := range c.flags {
		mask |= f
	}
	return mask
}

// Inversion returns the stored inversion count.
func (c *DynamicChord) Inversion() int { return c.inversion }

// NoteValues derives the sounding notes: template offsets from the root,
// modifiers applied in insertion order, then the inversion rotation. Each
// rotation moves the highest note down an octave to the front; if that pushes
// it below zero the whole chord shifts up an octave.
func (c *DynamicChord) NoteValues() []int {
	values := c.template.NoteValues(c.root)
	for _, f := range c.flags {
		if m, ok := ModifierFor(f); ok {
			values = m.apply(c.root, values)
		}
	}

	for i := 0; i < c.inversion; i++ {
		n := len(values)
		rotated := make([]int, 0, n)
		rotated = append(rotated, values[n-1]-interval.Octave)
		rotated = append(rotated, values[:n-1]...)
		if rotated[0] < 0 {
			for j := range rotated {
				rotated[j] += interval.Octave
			}
		}
		values = rotated
	}
	return values
}

// NumberOfNotes returns how many notes the chord sounds.
func (c *DynamicChord) NumberOfNotes() int {
	return len(c.NoteValues())
}

// NormalizedNoteValues returns the chord's pitch classes, sorted.
func (c *DynamicChord) NormalizedNoteValues() []int {
	return interval.Normalize(c.NoteValues())
}

// Signature returns the 12-bit pitch-class mask of the sounding notes.
func (c *DynamicChord) Signature() int {
	return interval.Signature(c.NoteValues())
}

// CenterOfGravity is the mean of the sounding note values, used to pick the
// inversion closest to another chord.
func (c *DynamicChord) CenterOfGravity() float64 {
	values := c.NoteValues()
	fs := make([]float64, len(values))
	for i, v := range values {
		fs[i] = float64(v)
	}
	return stat.Mean(fs, nil)
}

// NoteNames spells the sounding notes.
func (c *DynamicChord) NoteNames(style note.Style, showOctave bool) []string {
	return note.NamesOf(c.NoteValues(), style, showOctave)
}

// Transpose shifts the root by the given number of semitones.
func (c *DynamicChord) Transpose(steps int) {
	c.root += steps
}

// SetRoot moves the chord to a new root, firing the change callback if the
// root actually moved.
func (c *DynamicChord) SetRoot(root int) {
	if c.root == root {
		return
	}
	c.root = root
	c.emitChange()
}

// SetFlags replaces the active modifier list. The no-flag sentinel and
// duplicates are dropped, then every newly set modifier cancels the modifiers
// its cancellation mask names. The change callback fires only if the
// resulting list differs from the previous one.
func (c *DynamicChord) SetFlags(flags []Flag) {
	next := make([]Flag, 0, len(flags))
	for _, f := range flags {
		if f == NoFlag || slices.Contains(next, f) {
			continue
		}
		next = append(next, f)
	}

	var cancelled Flag
	for _, f := range next {
		if m, ok := ModifierFor(f); ok {
			cancelled |= m.Cancels
		}
	}
	next = slices.DeleteFunc(next, func(f Flag) bool {
		return cancelled&f != 0
	})

	if slices.Equal(c.flags, next) {
		return
	}
	c.flags = next
	c.emitChange()
}

// SetFlagMask is the bitmask boundary form of SetFlags.
func (c *DynamicChord) SetFlagMask(mask Flag) {
	c.SetFlags(ExpandMask(mask))
}

// SetInversion stores the inversion count modulo the current number of notes.
func (c *DynamicChord) SetInversion(steps int) {
	n := c.NumberOfNotes()
	inv := steps % n
	if inv < 0 {
		inv += n
	}
	if inv == c.inversion {
		return
	}
	c.inversion = inv
	c.emitChange()
}

// CycleInversion advances to the next inversion, wrapping at the note count.
func (c *DynamicChord) CycleInversion() {
	c.SetInversion(c.inversion + 1)
}

// InvertTowards selects the inversion whose center of gravity is closest to
// the target chord's. Ties resolve to the highest inversion index.
func (c *DynamicChord) InvertTowards(target *DynamicChord) {
	targetCoG := target.CenterOfGravity()
	clone := c.Clone()

	best := 0
	bestDistance := -1.0
	for i := 0; i < c.NumberOfNotes(); i++ {
		clone.SetInversion(i)
		d := clone.CenterOfGravity() - targetCoG
		if d < 0 {
			d = -d
		}
		if bestDistance < 0 || d <= bestDistance {
			best = i
			bestDistance = d
		}
	}
	c.SetInversion(best)
}

// Match reports whether the normalized input equals the chord's pitch-class
// set exactly.
func (c *DynamicChord) Match(intervals []int) bool {
	return slices.Equal(interval.Normalize(intervals), c.NormalizedNoteValues())
}

// Contains reports whether the normalized input is a subset of the chord's
// pitch-class set.
func (c *DynamicChord) Contains(intervals []int) bool {
	mine := make(map[int]bool)
	for _, v := range c.NormalizedNoteValues() {
		mine[v] = true
	}
	return containsAll(mine, interval.Normalize(intervals))
}

// Equal compares chords by signature: two differently spelled chords with the
// same pitch-class content are equal.
func (c *DynamicChord) Equal(other *DynamicChord) bool {
	return other != nil && c.Signature() == other.Signature()
}

// ShortTypeName renders the root plus the template abbreviation.
func (c *DynamicChord) ShortTypeName(style note.Style) string {
	return c.template.ShortNameFor(c.root, style)
}

// shortModName concatenates the modifier abbreviations and, when the lowest
// sounding note is not the root, a "/bass" suffix.
func (c *DynamicChord) shortModName(style note.Style) string {
	var b strings.Builder
	for _, f := range c.flags {
		if m, ok := ModifierFor(f); ok {
			b.WriteString(m.ShortName)
		}
	}

	if bass := c.NoteValues()[0]; bass != c.root {
		b.WriteString("/")
		b.WriteString(note.Name(bass, style, false))
	}
	return b.String()
}

// ShortName renders e.g. "C7", "Cmmaj7" or "C/E".
func (c *DynamicChord) ShortName(style note.Style) string {
	return c.ShortTypeName(style) + c.shortModName(style)
}

// LongName renders e.g. "C major", "C minor major 7" or "C dominant 9". The
// bare type word "major" is omitted as soon as any modifier follows, so a C
// major triad with a major-7 modifier reads "C major 7", not
// "C major major 7".
func (c *DynamicChord) LongName(style note.Style) string {
	parts := make([]string, 0, 1+len(c.flags))
	if c.template.LongName != "" && !(c.template == Major && len(c.flags) > 0) {
		parts = append(parts, c.template.LongName)
	}
	for _, f := range c.flags {
		if m, ok := ModifierFor(f); ok {
			parts = append(parts, m.LongName)
		}
	}

	name := c.RootName(style, false)
	if len(parts) > 0 {
		name += " " + strings.Join(parts, " ")
	}
	return name
}

// String renders both names, for debugging.
func (c *DynamicChord) String() string {
	return fmt.Sprintf("DynamicChord(%s | %s)", c.LongName(note.StyleFlat), c.ShortName(note.StyleFlat))
}
