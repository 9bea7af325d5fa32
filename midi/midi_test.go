package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyConversion(t *testing.T) {
	assert := assert.New(t)

	// Middle C.
	assert.Equal(48, NoteValue(60))

	k, err := Key(48)
	assert.NoError(err)
	assert.Equal(uint8(60), k)

	k, err = Key(0)
	assert.NoError(err)
	assert.Equal(uint8(12), k)

	_, err = Key(-13)
	assert.Error(err)
	_, err = Key(120)
	assert.Error(err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}

func on(micros int64, key uint8) NoteEvent {
	return NoteEvent{OffsetMicros: micros, Key: key}
}

func off(micros int64, key uint8) NoteEvent {
	return NoteEvent{OffsetMicros: micros, Off: true, Key: key}
}

func TestChordsFromEventsProgression(t *testing.T) {
	assert := assert.New(t)

	// C major at 0s, D minor at 2s.
	events := []NoteEvent{
		on(0, 60), on(0, 64), on(0, 67),
		off(1_000_000, 60), off(1_000_000, 64), off(1_000_000, 67),
		on(2_000_000, 62), on(2_000_000, 65), on(2_000_000, 69),
	}

	progression := ChordsFromEvents(events)
	assert.Len(progression, 2)

	assert.Equal("C", progression[0].ShortName)
	assert.Equal("C major", progression[0].LongName)
	assert.Equal(uint32(0), progression[0].OffsetMS)
	assert.Equal([]int{48, 52, 55}, progression[0].NoteValues)
	assert.Equal([]string{"C4", "E4", "G4"}, progression[0].NoteNames)

	assert.Equal("Dm", progression[1].ShortName)
	assert.Equal(uint32(2000), progression[1].OffsetMS)
}

func TestChordsFromEventsCollapsesRepeats(t *testing.T) {
	assert := assert.New(t)

	// The fifth is re-struck; the chord never changes.
	events := []NoteEvent{
		on(0, 60), on(0, 64), on(0, 67),
		off(500_000, 67),
		on(500_000, 67),
	}

	progression := ChordsFromEvents(events)
	assert.Len(progression, 1)
	assert.Equal("C", progression[0].ShortName)
}

func TestChordsFromEventsOffsBeforeOnsAtSameOffset(t *testing.T) {
	assert := assert.New(t)

	// The third moves at 1s; offs sort first, so the snapshot at 1s is a
	// clean C minor rather than a four-note pile.
	events := []NoteEvent{
		on(0, 60), on(0, 64), on(0, 67),
		on(1_000_000, 63), off(1_000_000, 64),
	}

	progression := ChordsFromEvents(events)
	assert.Len(progression, 2)
	assert.Equal("C", progression[0].ShortName)
	assert.Equal("Cm", progression[1].ShortName)
}

func TestChordsFromEventsIgnoresSparseNotes(t *testing.T) {
	events := []NoteEvent{on(0, 60), on(1_000_000, 64)}
	assert.Empty(t, ChordsFromEvents(events))
}
