// Package scale models diatonic scales as rotations (modes) of fixed
// interval templates, with membership tests, relative degree naming and
// derivation of the diatonic triads.
package scale

import (
	"fmt"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/util"
)

// Template fixes an interval row in its mode-1 form plus the mode rotation
// that turns it into the named scale.
type Template struct {
	Name      string
	Mode      int
	Intervals []int
}

var (
	naturalMajorRow = []int{
		interval.Root, interval.Major2nd, interval.Major3rd, interval.Perfect4th,
		interval.Perfect5th, interval.Major6th, interval.Major7th, interval.Octave,
	}
	harmonicMinorRow = []int{
		interval.Root, interval.Major2nd, interval.Minor3rd, interval.Perfect4th,
		interval.Perfect5th, interval.Minor6th, interval.Major7th, interval.Octave,
	}
)

// Templates lists the known scales in presentation order.
var Templates = []*Template{
	{"Lydian", 4, naturalMajorRow},
	{"Natural Major", 1, naturalMajorRow},
	{"Mixolydian", 5, naturalMajorRow},
	{"Dorian", 2, naturalMajorRow},
	{"Natural minor", 6, naturalMajorRow},
	{"Phrygian", 3, naturalMajorRow},
	{"Locrian", 7, naturalMajorRow},
	{"Harmonic minor", 1, harmonicMinorRow},
}

// TemplateNames returns the scale names in presentation order.
func TemplateNames() []string {
	names := make([]string, 0, len(Templates))
	for _, t := range Templates {
		names = append(names, t.Name)
	}
	return names
}

// TemplateFor looks a template up by name.
func TemplateFor(name string) (*Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// DegreeNames are the classical names of the seven scale degrees.
var DegreeNames = map[int]string{
	1: "Tonic", 2: "Supertonic", 3: "Mediant", 4: "Subdominant",
	5: "Dominant", 6: "Submediant", 7: "Subtonic",
}

// Scale is a template placed on a root note. The root may move; the template
// reference is immutable and shared.
type Scale struct {
	root     int
	template *Template
}

// New builds a scale from a root note value and a template name. An unknown
// name is an input error.
func New(root int, templateName string) (*Scale, error) {
	t, ok := TemplateFor(templateName)
	if !ok {
		return nil, fmt.Errorf("unknown scale %q", templateName)
	}
	return &Scale{root: root, template: t}, nil
}

// FromNames is New with the root given as a note name.
func FromNames(rootName, templateName string) (*Scale, error) {
	root, err := note.Value(rootName)
	if err != nil {
		return nil, err
	}
	return New(root, templateName)
}

// Clone returns an independent scale on the same template.
func (s *Scale) Clone() *Scale {
	return &Scale{root: s.root, template: s.template}
}

// Steps returns the consecutive semitone deltas of the scale, rotated for the
// template's mode: mode 2 of the major row yields the Dorian step pattern.
func (s *Scale) Steps() []int {
	row := s.template.Intervals
	steps := make([]int, 0, len(row)-1)
	for i := 1; i < len(row); i++ {
		steps = append(steps, row[i]-row[i-1])
	}

	n := len(steps)
	shift := ((s.template.Mode-1)%n + n) % n
	rotated := make([]int, 0, n)
	rotated = append(rotated, steps[shift:]...)
	rotated = append(rotated, steps[:shift]...)
	return rotated
}

// Intervals returns the cumulative offsets from the scale root, starting at 0
// and ending on the octave.
func (s *Scale) Intervals() []int {
	steps := s.Steps()
	res := make([]int, 0, len(steps)+1)
	sum := 0
	res = append(res, 0)
	for _, step := range steps {
		sum += step
		res = append(res, sum)
	}
	return res
}

// NoteValues returns the scale's notes in the reference octave, one value per
// degree.
func (s *Scale) NoteValues() []int {
	intervals := s.Intervals()
	values := make([]int, 0, len(intervals)-1)
	for _, offset := range intervals[:len(intervals)-1] {
		values = append(values, s.root+offset)
	}
	return values
}

// NoteValuesAt shifts the scale so its octave starts at the given base, which
// must be a C note.
func (s *Scale) NoteValuesAt(base int) ([]int, error) {
	if base%interval.Octave != 0 {
		return nil, fmt.Errorf("scale base %d is not a C note", base)
	}
	values := s.NoteValues()
	for i := range values {
		values[i] += base
	}
	return values, nil
}

// ExtendedNoteValues spans the scale over four octaves, one below the
// reference octave (dropping values below zero) and two above.
func (s *Scale) ExtendedNoteValues() []int {
	octave1 := s.NoteValues()
	var res []int
	for _, v := range octave1 {
		if v-interval.Octave >= 0 {
			res = append(res, v-interval.Octave)
		}
	}
	res = append(res, octave1...)
	res = append(res, interval.Transpose(octave1, interval.Octave)...)
	res = append(res, interval.Transpose(octave1, 2*interval.Octave)...)
	return res
}

// Root returns the root note value.
func (s *Scale) Root() int { return s.root }

// RootName spells the root in the given style.
func (s *Scale) RootName(style note.Style) string {
	return note.Name(s.root, style, false)
}

// ScaleName returns the template name, e.g. "Natural Major".
func (s *Scale) ScaleName() string { return s.template.Name }

// Name renders e.g. "C Natural Major".
func (s *Scale) Name(style note.Style) string {
	return s.RootName(style) + " " + s.template.Name
}

// NoteNames spells the scale notes in value order.
func (s *Scale) NoteNames(style note.Style) []string {
	return note.NamesOf(s.NoteValues(), style, true)
}

// NumberOfNotes returns the number of scale degrees.
func (s *Scale) NumberOfNotes() int {
	return len(s.template.Intervals) - 1
}

// Transpose shifts the root by the given number of semitones.
func (s *Scale) Transpose(steps int) {
	s.root += steps
}

// SetRoot moves the scale to a new root.
func (s *Scale) SetRoot(root int) {
	s.root = root
}

// ContainsValue reports scale membership by pitch class.
func (s *Scale) ContainsValue(value int) bool {
	pc := interval.PitchClass(value)
	for _, v := range s.NoteValues() {
		if interval.PitchClass(v) == pc {
			return true
		}
	}
	return false
}

// ContainsName reports scale membership for a named note.
func (s *Scale) ContainsName(name string) (bool, error) {
	value, err := note.Value(name)
	if err != nil {
		return false, err
	}
	return s.ContainsValue(value), nil
}

// RelativeNoteName names a note relative to the scale: the 1-based degree
// number for members, a "b"-prefixed degree when the note is one semitone
// below a member, a "#"-prefixed degree when one above, and "" when the note
// cannot be placed.
func (s *Scale) RelativeNoteName(value int) string {
	degreeOf := make(map[int]int, s.NumberOfNotes())
	for i, v := range s.NoteValues() {
		degreeOf[interval.PitchClass(v)] = i + 1
	}

	if degree, ok := degreeOf[interval.PitchClass(value)]; ok {
		return fmt.Sprintf("%d", degree)
	}
	if degree, ok := degreeOf[interval.PitchClass(value+1)]; ok {
		return fmt.Sprintf("b%d", degree)
	}
	if degree, ok := degreeOf[interval.PitchClass(value-1)]; ok {
		return fmt.Sprintf("#%d", degree)
	}
	return ""
}

// DegreeName returns the classical name of a 1-based scale degree.
func DegreeName(degree int) string {
	return DegreeNames[degree]
}

// DegreeRoman renders a 1-based degree as a roman numeral, uppercase for
// major triads and lowercase for minor or diminished ones by convention.
func DegreeRoman(degree int, upper bool) string {
	return util.Roman(degree, upper)
}

// ChordsOfScale derives the diatonic triads: for each degree, the notes at
// that degree, a third above and a fifth above, taken across a two-octave
// extension and classified through the chord model. It yields one chord per
// degree for every known template.
func (s *Scale) ChordsOfScale() []*chord.DynamicChord {
	octave1 := s.NoteValues()
	values := append(append([]int(nil), octave1...), interval.Transpose(octave1, interval.Octave)...)

	const (
		tonic    = 0
		mediant  = 2
		dominant = 4
	)

	chords := make([]*chord.DynamicChord, 0, len(octave1))
	for i := range octave1 {
		triad := []int{values[tonic+i], values[mediant+i], values[dominant+i]}
		c, err := chord.FromNoteValues(triad)
		if err != nil || c == nil {
			continue
		}
		chords = append(chords, c)
	}
	return chords
}

// String renders the scale with its notes, for debugging.
func (s *Scale) String() string {
	return fmt.Sprintf("%s %v %v", s.Name(note.StyleFlat), s.NoteValues(), s.NoteNames(note.StyleFlat))
}
