package chord

import "github.com/improperdecoherence/chordlab/interval"

// Flag identifies a chord modifier as one bit, so a modifier set can travel
// as a single mask across an API boundary.
type Flag uint16

const (
	NoFlag       Flag = 0
	Dominant7    Flag = 0x001
	Major7       Flag = 0x002
	Dominant9    Flag = 0x004
	Dominant11   Flag = 0x008
	Dominant13   Flag = 0x010
	Add2         Flag = 0x020
	Add6         Flag = 0x040
	Add9         Flag = 0x080
	Flat5th      Flag = 0x100
	Suspended2nd Flag = 0x200
	Suspended4th Flag = 0x400
)

// Modifier describes a named transformation of a base triad: offsets it adds,
// offsets it removes and the modifiers it cancels when applied later.
// Extension chords subsume their smaller versions, so Dominant9 cancels
// Dominant7 and so on up the stack.
type Modifier struct {
	Flag      Flag
	LongName  string
	ShortName string
	Add       []int
	Remove    []int
	Cancels   Flag
}

// Modifiers lists all defined modifiers. The order is significant: it is the
// order in which a flag mask expands into a modifier list and the order in
// which short names concatenate.
var Modifiers = []Modifier{
	{Dominant7, "dominant 7", "7",
		[]int{interval.Minor7th}, nil, NoFlag},
	{Major7, "major 7", "maj7",
		[]int{interval.Major7th}, nil, NoFlag},
	{Dominant9, "dominant 9", "9",
		[]int{interval.Minor7th, interval.Major9th}, nil,
		Dominant7},
	{Dominant11, "dominant 11", "11",
		[]int{interval.Minor7th, interval.Major9th, interval.Perfect11th}, nil,
		Dominant7 | Dominant9},
	{Dominant13, "dominant 13", "13",
		[]int{interval.Minor7th, interval.Major9th, interval.Perfect11th, interval.Major13th}, nil,
		Dominant7 | Dominant9 | Dominant11},
	{Suspended2nd, "suspended 2nd", "sus2",
		[]int{interval.Major2nd}, []int{interval.Minor3rd, interval.Major3rd}, NoFlag},
	{Suspended4th, "suspended 4th", "sus4",
		[]int{interval.Perfect4th}, []int{interval.Minor3rd, interval.Major3rd}, NoFlag},
	{Add2, "add 2", "+2",
		[]int{interval.Major2nd}, nil, NoFlag},
	{Add6, "add 6", "+6",
		[]int{interval.Major6th}, nil, NoFlag},
	{Add9, "add 9", "+9",
		[]int{interval.Major9th}, nil, NoFlag},
	{Flat5th, "flat 5th", "b5",
		[]int{interval.Diminished5th}, []int{interval.Perfect5th}, NoFlag},
}

// ModifierFor looks a modifier up by its flag.
func ModifierFor(f Flag) (Modifier, bool) {
	for _, m := range Modifiers {
		if m.Flag == f {
			return m, true
		}
	}
	return Modifier{}, false
}

// ExpandMask translates a combined flag mask into the ordered modifier flag
// list it stands for.
func ExpandMask(mask Flag) []Flag {
	var flags []Flag
	for _, m := range Modifiers {
		if mask&m.Flag != 0 {
			flags = append(flags, m.Flag)
		}
	}
	return flags
}

// apply rewrites a note-value list: removes the root-relative offsets the
// modifier excludes, adds the ones it introduces, and keeps the list sorted.
func (m Modifier) apply(root int, values []int) []int {
	for _, offset := range m.Remove {
		target := root + offset
		for i, v := range values {
			if v == target {
				values = append(values[:i], values[i+1:]...)
				break
			}
		}
	}
	for _, offset := range m.Add {
		values = append(values, root+offset)
	}
	sortInts(values)
	return values
}
