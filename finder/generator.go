// Package finder hosts the chord generators and the finder that runs them: a
// generator turns a seed (played notes or a chord) and its current settings
// into a list of relevant chords.
package finder

import (
	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/scale"
)

// Generator is a stateless strategy holding only its current parameter
// values. Generators are pure functions of settings plus input and are
// re-invoked on every relevant change; they cache nothing.
type Generator interface {
	Name() string

	// NeedsSeed reports whether FromIntervals depends on its argument.
	NeedsSeed() bool

	Settings() []Setting
	Setting(name string) (Setting, bool)

	// FromIntervals produces the generated chords for a seed interval list.
	// An empty seed yields an empty result for seed-driven generators.
	FromIntervals(seed []int) ([]*chord.DynamicChord, error)

	// OnSettingsChanged registers a callback fired when any setting changes.
	OnSettingsChanged(fn func(name, value string))
}

// generatorBase carries the name, seed requirement and setting registry
// shared by all generators.
type generatorBase struct {
	name      string
	needsSeed bool
	settings  []Setting
	onChange  func(name, value string)
}

func (g *generatorBase) Name() string    { return g.name }
func (g *generatorBase) NeedsSeed() bool { return g.needsSeed }

func (g *generatorBase) Settings() []Setting {
	return append([]Setting(nil), g.settings...)
}

func (g *generatorBase) Setting(name string) (Setting, bool) {
	for _, s := range g.settings {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (g *generatorBase) OnSettingsChanged(fn func(name, value string)) {
	g.onChange = fn
}

func (g *generatorBase) addSetting(s Setting) {
	if n, ok := s.(changeNotifier); ok {
		n.onValueChange(func(name, value string) {
			if g.onChange != nil {
				g.onChange(name, value)
			}
		})
	}
	g.settings = append(g.settings, s)
}

// MatchingChordsGenerator queries the chord database for chords at a
// configurable distance from the seed notes. Octave placement of the seed is
// irrelevant; only pitch classes count.
type MatchingChordsGenerator struct {
	generatorBase
	database *db.ChordDatabase
	distance *IntSetting
}

// NewMatchingChordsGenerator wires the generator to a built database.
func NewMatchingChordsGenerator(database *db.ChordDatabase) *MatchingChordsGenerator {
	g := &MatchingChordsGenerator{
		generatorBase: generatorBase{name: "Matching Chords", needsSeed: true},
		database:      database,
	}
	g.distance = NewIntSetting("Distance", 0, 0, 2)
	g.distance.SetToolTip("0 = exact match, 1 = one note different, etc.")
	g.addSetting(g.distance)
	return g
}

// FromIntervals delegates to the database with the current distance setting.
func (g *MatchingChordsGenerator) FromIntervals(seed []int) ([]*chord.DynamicChord, error) {
	if len(seed) == 0 {
		return nil, nil
	}
	return g.database.MatchIntervals(seed, g.distance.Int())
}

// ScaleChordsGenerator produces the diatonic triads of a selected key and
// scale; it ignores its seed entirely.
type ScaleChordsGenerator struct {
	generatorBase
	scaleName *EnumSetting
	key       *EnumSetting
}

// NewScaleChordsGenerator builds the generator with its key and scale
// settings.
func NewScaleChordsGenerator() *ScaleChordsGenerator {
	g := &ScaleChordsGenerator{
		generatorBase: generatorBase{name: "Chords of Scale", needsSeed: false},
	}

	g.scaleName = NewEnumSetting("Scale", "Natural Major", scale.TemplateNames())
	g.scaleName.SetToolTip("The scale to which the chords shall belong")
	g.addSetting(g.scaleName)

	g.key = NewEnumSetting("Key", "C", note.Names(0, 12, note.StyleFlat, false))
	g.key.SetToolTip("The key of the scale")
	g.addSetting(g.key)
	return g
}

// FromIntervals returns the diatonic triads of the configured scale.
func (g *ScaleChordsGenerator) FromIntervals([]int) ([]*chord.DynamicChord, error) {
	s, err := scale.FromNames(g.key.Value(), g.scaleName.Value())
	if err != nil {
		return nil, err
	}
	return s.ChordsOfScale(), nil
}
