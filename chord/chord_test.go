package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/improperdecoherence/chordlab/note"
)

func TestNewAppliesCancellation(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major, Dominant7, Dominant9)
	assert.Equal([]Flag{Dominant9}, c.Flags())
	assert.Equal(New(0, Major, Dominant9).Signature(), c.Signature())

	c = New(0, Major, Dominant7, Dominant9, Dominant11, Dominant13)
	assert.Equal([]Flag{Dominant13}, c.Flags())
}

func TestNoteValues(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{0, 4, 7}, New(0, Major).NoteValues())
	assert.Equal([]int{2, 5, 9}, New(2, Minor).NoteValues())
	assert.Equal([]int{0, 4, 7, 10}, New(0, Major, Dominant7).NoteValues())
	assert.Equal([]int{0, 5, 7, 10}, New(0, Major, Dominant7, Suspended4th).NoteValues())
}

func TestInversionRotatesWithOctaveWrap(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major)
	c.SetInversion(1)
	assert.Equal([]int{7, 12, 16}, c.NoteValues())
	assert.Equal("C/G", c.ShortName(note.StyleFlat))

	c.SetInversion(2)
	assert.Equal([]int{4, 7, 12}, c.NoteValues())
}

func TestCyclingThroughAllInversionsReturns(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major, Dominant7)
	original := c.NoteValues()
	for i := 0; i < c.NumberOfNotes(); i++ {
		c.CycleInversion()
	}
	assert.Equal(0, c.Inversion())
	assert.Equal(original, c.NoteValues())
}

func TestSetInversionFloorsNegatives(t *testing.T) {
	c := New(0, Major)
	c.SetInversion(-1)
	assert.Equal(t, 2, c.Inversion())
}

func TestFromNoteValuesClassifiesTriads(t *testing.T) {
	assert := assert.New(t)

	c, err := FromNoteValues(New(0, Minor).NoteValues())
	assert.NoError(err)
	assert.Equal("Cm", c.ShortName(note.StyleFlat))

	// Input order does not matter; the lowest note becomes the root.
	c, err = FromNoteValues([]int{55, 48, 52})
	assert.NoError(err)
	assert.Equal("C", c.ShortName(note.StyleFlat))
	assert.Equal(0, c.Root())
}

func TestFromNoteValuesFirstTemplateWins(t *testing.T) {
	assert := assert.New(t)

	// Both the major and minor offsets are present; major is declared first.
	c, err := FromNoteValues([]int{0, 3, 4, 7})
	assert.NoError(err)
	assert.Equal(Major, c.Template())
}

func TestFromNoteValuesRejectsTooFewNotes(t *testing.T) {
	_, err := FromNoteValues([]int{0, 4})
	assert.ErrorIs(t, err, ErrTooFewNotes)
}

func TestFromNoteValuesUnclassifiableIsNilNil(t *testing.T) {
	assert := assert.New(t)
	c, err := FromNoteValues([]int{0, 1, 2})
	assert.NoError(err)
	assert.Nil(c)
}

func TestShortName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C7", New(0, Major, Dominant7).ShortName(note.StyleFlat))
	assert.Equal("Cmmaj7", New(0, Minor, Major7).ShortName(note.StyleFlat))
	assert.Equal("C"+DimSign, New(0, Diminished).ShortName(note.StyleFlat))
	assert.Equal("C+", New(0, Augmented).ShortName(note.StyleFlat))
	assert.Equal("C7sus4", New(0, Major, Dominant7, Suspended4th).ShortName(note.StyleFlat))
	assert.Equal("Dbm", New(1, Minor).ShortName(note.StyleFlat))
	assert.Equal("C#m", New(1, Minor).ShortName(note.StyleSharp))
}

func TestLongName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C major", New(0, Major).LongName(note.StyleFlat))
	assert.Equal("C major 7", New(0, Major, Major7).LongName(note.StyleFlat))
	assert.Equal("C minor major 7", New(0, Minor, Major7).LongName(note.StyleFlat))
	assert.Equal("C dominant 9", New(0, Major, Dominant9).LongName(note.StyleFlat))
}

func TestSetFlagMaskExpandsInDeclarationOrder(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major)
	c.SetFlagMask(Suspended4th | Dominant7)
	assert.Equal([]Flag{Dominant7, Suspended4th}, c.Flags())
	assert.Equal(Dominant7|Suspended4th, c.FlagMask())
}

func TestMatchAndContains(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major)
	assert.True(c.Match([]int{12, 16, 19}))
	assert.False(c.Match([]int{0, 4, 7, 10}))
	assert.True(c.Contains([]int{0, 4}))
	assert.False(c.Contains([]int{0, 5}))
}

func TestEqualComparesBySignature(t *testing.T) {
	assert := assert.New(t)
	assert.True(New(0, Major, Add9).Equal(New(0, Major, Add2)))
	assert.False(New(0, Major).Equal(New(0, Minor)))
	assert.False(New(0, Major).Equal(nil))
}

func TestOnChangeFiresOnlyOnRealMutation(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major)
	fired := 0
	c.OnChange(func(*DynamicChord) { fired++ })

	c.SetRoot(0)
	assert.Equal(0, fired)
	c.SetRoot(2)
	assert.Equal(1, fired)

	c.SetFlags([]Flag{Dominant7})
	assert.Equal(2, fired)
	c.SetFlags([]Flag{Dominant7, NoFlag, Dominant7})
	assert.Equal(2, fired)

	c.SetInversion(0)
	assert.Equal(2, fired)
	c.SetInversion(1)
	assert.Equal(3, fired)
}

func TestCenterOfGravity(t *testing.T) {
	assert.InDelta(t, 11.0/3.0, New(0, Major).CenterOfGravity(), 1e-9)
}

func TestInvertTowardsPicksClosestInversion(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major)
	c.InvertTowards(New(12, Major))
	assert.Equal(1, c.Inversion())
}

func TestInvertTowardsTieResolvesToHighestInversion(t *testing.T) {
	assert := assert.New(t)

	// D major sits exactly between the root position and the second inversion
	// of C major.
	c := New(0, Major)
	c.InvertTowards(New(2, Major))
	assert.Equal(2, c.Inversion())
}

func TestCloneIsIndependent(t *testing.T) {
	assert := assert.New(t)

	c := New(0, Major, Dominant7)
	clone := c.Clone()
	clone.SetRoot(5)
	clone.SetFlags(nil)

	assert.Equal(0, c.Root())
	assert.Equal([]Flag{Dominant7}, c.Flags())
}

func TestTranspose(t *testing.T) {
	c := New(0, Major)
	c.Transpose(5)
	assert.Equal(t, []int{5, 9, 12}, c.NoteValues())
}

func TestNewNamed(t *testing.T) {
	assert := assert.New(t)

	c, err := NewNamed("Eb4", Minor)
	assert.NoError(err)
	assert.Equal(51, c.Root())

	_, err = NewNamed("X", Minor)
	assert.Error(err)
}
