package model

// Chord is the wire form of a chord: both display names, the sounding notes
// and the pitch-class signature.
type Chord struct {
	ShortName  string   `json:"short_name"`
	LongName   string   `json:"long_name"`
	Root       string   `json:"root"`
	NoteValues []int    `json:"note_values"`
	NoteNames  []string `json:"note_names"`
	Signature  int      `json:"signature"`
}

// TimedChord is a chord detected at an offset within a MIDI file.
type TimedChord struct {
	OffsetMS   uint32   `json:"offset_ms"`
	ShortName  string   `json:"short_name"`
	LongName   string   `json:"long_name"`
	NoteValues []int    `json:"note_values"`
	NoteNames  []string `json:"note_names"`
}
