package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/note"
)

func TestStepsRotateWithMode(t *testing.T) {
	assert := assert.New(t)

	major, err := New(0, "Natural Major")
	assert.NoError(err)
	assert.Equal([]int{2, 2, 1, 2, 2, 2, 1}, major.Steps())

	dorian, err := New(2, "Dorian")
	assert.NoError(err)
	assert.Equal([]int{2, 1, 2, 2, 2, 1, 2}, dorian.Steps())

	lydian, err := New(0, "Lydian")
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4, 6, 7, 9, 11, 12}, lydian.Intervals())
}

func TestIntervalsSpanTheOctave(t *testing.T) {
	assert := assert.New(t)

	for _, name := range TemplateNames() {
		s, err := New(0, name)
		assert.NoError(err)
		intervals := s.Intervals()
		assert.Equal(0, intervals[0], name)
		assert.Equal(12, intervals[len(intervals)-1], name)
	}
}

func TestNoteValuesAndNames(t *testing.T) {
	assert := assert.New(t)

	s, err := FromNames("C", "Natural Major")
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, s.NoteValues())
	assert.Equal([]string{"C0", "D0", "E0", "F0", "G0", "A0", "B0"}, s.NoteNames(note.StyleFlat))
	assert.Equal("C Natural Major", s.Name(note.StyleFlat))
	assert.Equal(7, s.NumberOfNotes())
}

func TestContainsValue(t *testing.T) {
	assert := assert.New(t)

	s, err := FromNames("C", "Natural Major")
	assert.NoError(err)

	fsharp4, err := note.Value("F#4")
	assert.NoError(err)
	assert.False(s.ContainsValue(fsharp4))

	f4, err := note.Value("F4")
	assert.NoError(err)
	assert.True(s.ContainsValue(f4))

	member, err := s.ContainsName("Bb2")
	assert.NoError(err)
	assert.False(member)

	_, err = s.ContainsName("X")
	assert.Error(err)
}

func TestUnknownScaleName(t *testing.T) {
	assert := assert.New(t)

	_, err := New(0, "Blues")
	assert.Error(err)

	_, err = FromNames("X", "Natural Major")
	assert.Error(err)
}

func TestNoteValuesAt(t *testing.T) {
	assert := assert.New(t)

	s, err := New(0, "Natural Major")
	assert.NoError(err)

	values, err := s.NoteValuesAt(12)
	assert.NoError(err)
	assert.Equal([]int{12, 14, 16, 17, 19, 21, 23}, values)

	_, err = s.NoteValuesAt(5)
	assert.Error(err)
}

func TestExtendedNoteValuesDropsSubZero(t *testing.T) {
	assert := assert.New(t)

	c, err := New(0, "Natural Major")
	assert.NoError(err)
	extended := c.ExtendedNoteValues()
	assert.Len(extended, 21)
	assert.Equal(0, extended[0])

	d, err := New(2, "Dorian")
	assert.NoError(err)
	extended = d.ExtendedNoteValues()
	assert.Len(extended, 22)
	assert.Equal(0, extended[0])
}

func TestRelativeNoteName(t *testing.T) {
	assert := assert.New(t)

	major, err := New(0, "Natural Major")
	assert.NoError(err)
	assert.Equal("1", major.RelativeNoteName(0))
	assert.Equal("2", major.RelativeNoteName(14))
	assert.Equal("b3", major.RelativeNoteName(3))
	assert.Equal("b5", major.RelativeNoteName(6))

	harmonic, err := New(0, "Harmonic minor")
	assert.NoError(err)
	assert.Equal("#6", harmonic.RelativeNoteName(9))
}

func TestChordsOfScaleNaturalMajor(t *testing.T) {
	assert := assert.New(t)

	s, err := FromNames("C", "Natural Major")
	assert.NoError(err)

	triads := s.ChordsOfScale()
	assert.Len(triads, 7)
	assert.Equal("C", triads[0].ShortName(note.StyleFlat))
	assert.Equal(chord.Major, triads[0].Template())
	assert.Equal("Dm", triads[1].ShortName(note.StyleFlat))
	assert.Equal(chord.Minor, triads[1].Template())
	assert.Equal("B"+chord.DimSign, triads[6].ShortName(note.StyleFlat))
}

func TestChordsOfScaleHarmonicMinor(t *testing.T) {
	assert := assert.New(t)

	s, err := FromNames("C", "Harmonic minor")
	assert.NoError(err)

	triads := s.ChordsOfScale()
	assert.Len(triads, 7)

	templates := make([]*chord.Template, 0, len(triads))
	for _, c := range triads {
		templates = append(templates, c.Template())
	}
	assert.Equal([]*chord.Template{
		chord.Minor, chord.Diminished, chord.Augmented,
		chord.Minor, chord.Major, chord.Major, chord.Diminished,
	}, templates)
}

func TestDegreeNamesAndRomans(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Tonic", DegreeName(1))
	assert.Equal("Dominant", DegreeName(5))
	assert.Equal("IV", DegreeRoman(4, true))
	assert.Equal("ii", DegreeRoman(2, false))
	assert.Equal("vii", DegreeRoman(7, false))
}

func TestTransposeAndSetRoot(t *testing.T) {
	assert := assert.New(t)

	s, err := New(0, "Natural Major")
	assert.NoError(err)

	s.Transpose(2)
	assert.Equal(2, s.Root())
	assert.Equal("D", s.RootName(note.StyleFlat))

	clone := s.Clone()
	clone.SetRoot(7)
	assert.Equal(2, s.Root())
	assert.Equal(7, clone.Root())
}
