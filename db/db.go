// Package db holds the precomputed chord database: every chord reachable
// from the 12 roots, the 4 triad templates and modifier combinations of a
// fixed arity, indexed by pitch-class signature.
package db

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// DefaultArity is the number of modifiers combined per generated variant.
const DefaultArity = 2

// ChordDatabase is built once and read-only afterwards, so it may be shared
// across readers without synchronization.
type ChordDatabase struct {
	buckets map[int][]*chord.DynamicChord
	size    int
	arity   int
}

// New builds the database. For every root and template it generates the
// unmodified chord plus one chord per arity-sized combination drawn from the
// no-modifier sentinel and all defined modifiers. Within a signature bucket,
// chords whose short name is already present are skipped; the same signature
// may still list entries rooted at different notes when their names differ.
func New(arity int) *ChordDatabase {
	d := &ChordDatabase{
		buckets: make(map[int][]*chord.DynamicChord),
		arity:   arity,
	}

	pool := make([]chord.Flag, 0, len(chord.Modifiers)+1)
	pool = append(pool, chord.NoFlag)
	for _, m := range chord.Modifiers {
		pool = append(pool, m.Flag)
	}

	var combinations [][]int
	if arity > 0 && arity <= len(pool) {
		combinations = combin.Combinations(len(pool), arity)
	}

	for root := 0; root < interval.Octave; root++ {
		for _, template := range chord.Templates {
			d.add(chord.New(root, template))

			for _, indices := range combinations {
				flags := make([]chord.Flag, 0, arity)
				for _, i := range indices {
					flags = append(flags, pool[i])
				}
				d.add(chord.New(root, template, flags...))
			}
		}
	}
	return d
}

func (d *ChordDatabase) add(c *chord.DynamicChord) {
	signature := c.Signature()
	name := c.ShortName(note.StyleFlat)
	for _, existing := range d.buckets[signature] {
		if existing.ShortName(note.StyleFlat) == name {
			return
		}
	}
	d.buckets[signature] = append(d.buckets[signature], c)
	d.size++
}

// Size returns the number of chords indexed.
func (d *ChordDatabase) Size() int { return d.size }

// NumSignatures returns the number of distinct signature buckets.
func (d *ChordDatabase) NumSignatures() int { return len(d.buckets) }

// Arity returns the modifier combination arity the database was built with.
func (d *ChordDatabase) Arity() int { return d.arity }

// BucketSizes returns the number of chords per signature, keyed by signature.
func (d *ChordDatabase) BucketSizes() map[int]int {
	sizes := make(map[int]int, len(d.buckets))
	for signature, chords := range d.buckets {
		sizes[signature] = len(chords)
	}
	return sizes
}

// MatchIntervals returns every indexed chord whose signature is at exactly
// the given distance from the input's signature. Distance 0 is exact
// pitch-class-set matching. The order is near-signature enumeration order,
// then insertion order within each bucket. A negative distance is an error;
// no match is an empty result.
func (d *ChordDatabase) MatchIntervals(intervals []int, distance int) ([]*chord.DynamicChord, error) {
	signatures, err := interval.NearSignatures(interval.Signature(intervals), distance)
	if err != nil {
		return nil, err
	}

	var chords []*chord.DynamicChord
	for _, signature := range signatures {
		chords = append(chords, d.buckets[signature]...)
	}
	return chords, nil
}
