package finder

import (
	"fmt"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/db"
)

// Source selects where the finder takes its seed from.
type Source int

const (
	// SourceNotes seeds the finder with the currently played note values.
	SourceNotes Source = iota
	// SourceChord seeds the finder with an explicitly chosen chord.
	SourceChord
)

// Finder owns the generator set and recomputes the current chord list
// whenever the seed, the active generator or one of its settings changes.
// Single control flow only; no internal locking.
type Finder struct {
	database   *db.ChordDatabase
	generators []Generator
	current    Generator

	source    Source
	seedNotes []int
	seedChord *chord.DynamicChord

	chords    []*chord.DynamicChord
	onUpdated func([]*chord.DynamicChord)
}

// NewFinder builds a finder over a chord database with the two standard
// generators registered and "Matching Chords" active.
func NewFinder(database *db.ChordDatabase) *Finder {
	f := &Finder{
		database: database,
		source:   SourceNotes,
	}
	f.register(NewMatchingChordsGenerator(database))
	f.register(NewScaleChordsGenerator())
	f.current = f.generators[0]
	return f
}

func (f *Finder) register(g Generator) {
	g.OnSettingsChanged(func(string, string) {
		f.update()
	})
	f.generators = append(f.generators, g)
}

// Generators enumerates the available generators in registration order.
func (f *Finder) Generators() []Generator {
	return append([]Generator(nil), f.generators...)
}

// CurrentGenerator returns the active generator.
func (f *Finder) CurrentGenerator() Generator { return f.current }

// SetCurrentGenerator activates a generator by name; unknown names are input
// errors.
func (f *Finder) SetCurrentGenerator(name string) error {
	for _, g := range f.generators {
		if g.Name() == name {
			f.current = g
			f.update()
			return nil
		}
	}
	return fmt.Errorf("unknown chord generator %q", name)
}

// Database exposes the underlying chord database.
func (f *Finder) Database() *db.ChordDatabase { return f.database }

// CurrentSource returns the active seed source.
func (f *Finder) CurrentSource() Source { return f.source }

// SetSource switches between played-note and seed-chord input.
func (f *Finder) SetSource(source Source) {
	f.source = source
	f.update()
}

// SetSeedNotes replaces the played-note seed. It recomputes immediately when
// the note source is active; an empty seed is a valid state meaning "nothing
// selected".
func (f *Finder) SetSeedNotes(values []int) {
	f.seedNotes = append([]int(nil), values...)
	if f.source == SourceNotes {
		f.update()
	}
}

// SetSeedChord replaces the chord seed, recomputing when the chord source is
// active.
func (f *Finder) SetSeedChord(c *chord.DynamicChord) {
	f.seedChord = c
	if f.source == SourceChord {
		f.update()
	}
}

// Chords returns the most recently generated chord list.
func (f *Finder) Chords() []*chord.DynamicChord { return f.chords }

// OnChordsUpdated registers a callback fired after every recomputation.
func (f *Finder) OnChordsUpdated(fn func([]*chord.DynamicChord)) {
	f.onUpdated = fn
}

func (f *Finder) seed() []int {
	if f.source == SourceChord {
		if f.seedChord == nil {
			return nil
		}
		return f.seedChord.NoteValues()
	}
	return f.seedNotes
}

// update re-runs the active generator. Setting values are validated when they
// are set, so a generator error here means empty output rather than a failed
// mutation.
func (f *Finder) update() {
	chords, err := f.current.FromIntervals(f.seed())
	if err != nil {
		chords = nil
	}
	f.chords = chords
	if f.onUpdated != nil {
		f.onUpdated(f.chords)
	}
}
