// Package midi feeds the chord model from standard MIDI files and live MIDI
// key numbers.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/model"
	"github.com/improperdecoherence/chordlab/note"
)

// MIDI key 60 (middle C) is C4, i.e. note value 48.
const keyOffset = 12

// NoteValue converts a MIDI key number to a note value.
func NoteValue(key uint8) int {
	return int(key) - keyOffset
}

// Key converts a note value back to a MIDI key number.
func Key(value int) (uint8, error) {
	k := value + keyOffset
	if k < 0 || k > 127 {
		return 0, fmt.Errorf("note value %d is outside the MIDI key range", value)
	}
	return uint8(k), nil
}

// ReadFile parses a standard MIDI file. The smf reader panics on some
// malformed files, so parsing failures of either kind come back as errors.
// https://github.com/gomidi/midi/issues/20
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %s", err.Error())
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %s", err.Error())
	}
	return res, nil
}

// NoteEvent is a note-on or note-off reduced to what chord tracking needs.
type NoteEvent struct {
	OffsetMicros int64
	Off          bool
	Key          uint8
}

// EventsOf flattens all tracks of a file into reduced note events with
// absolute offsets.
func EventsOf(s *smf.SMF) []NoteEvent {
	var events []NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, NoteEvent{OffsetMicros: absTime, Key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, NoteEvent{OffsetMicros: absTime, Off: true, Key: key})
			}
		}
	}
	return events
}

// ChordsFromEvents replays note events, snapshots the pressed keys at every
// change and classifies each snapshot of three or more notes through the
// chord model. Consecutive identical chords collapse into the first
// occurrence, so the result reads as a progression.
func ChordsFromEvents(events []NoteEvent) []model.TimedChord {
	sorted := append([]NoteEvent(nil), events...)
	// same offset: note offs first, so re-struck notes don't glue chords
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OffsetMicros != sorted[j].OffsetMicros {
			return sorted[i].OffsetMicros < sorted[j].OffsetMicros
		}
		return sorted[i].Off && !sorted[j].Off
	})

	pressed := make(map[uint8]bool)
	var progression []model.TimedChord
	lastName := ""

	for _, evt := range sorted {
		if evt.Off {
			delete(pressed, evt.Key)
		} else {
			pressed[evt.Key] = true
		}

		if len(pressed) < 3 {
			continue
		}

		values := make([]int, 0, len(pressed))
		for key := range pressed {
			values = append(values, NoteValue(key))
		}
		sort.Ints(values)

		c, err := chord.FromNoteValues(values)
		if err != nil || c == nil {
			continue
		}

		name := c.ShortName(note.StyleFlat)
		if name == lastName {
			continue
		}
		lastName = name

		progression = append(progression, model.TimedChord{
			// micros to millis; plenty of range for any real file
			OffsetMS:   uint32(evt.OffsetMicros / 1000),
			ShortName:  name,
			LongName:   c.LongName(note.StyleFlat),
			NoteValues: values,
			NoteNames:  note.NamesOf(values, note.StyleFlat, true),
		})
	}
	return progression
}

// ExtractChords reads the chord progression out of a parsed MIDI file.
func ExtractChords(s *smf.SMF) []model.TimedChord {
	return ChordsFromEvents(EventsOf(s))
}
