package model

// MatchRequest asks for chords matching the given notes. Notes are note
// names ("C4", "Eb3"); Distance is the number of pitch classes allowed to
// differ.
type MatchRequest struct {
	Notes    []string `json:"notes"`
	Distance int      `json:"distance"`
}

// MatchResponse lists the matched chords.
type MatchResponse struct {
	NumMatches int     `json:"num_matches"`
	Chords     []Chord `json:"chords"`
}

// ClassifyRequest asks for the played notes to be classified as one chord.
type ClassifyRequest struct {
	Notes []string `json:"notes"`
}

// ClassifyResponse carries the classified chord, or null when the notes fit
// no known template.
type ClassifyResponse struct {
	Chord *Chord `json:"chord"`
}

// ScaleListResponse enumerates the known scale names.
type ScaleListResponse struct {
	Scales []string `json:"scales"`
}

// Degree annotates one scale degree.
type Degree struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Roman  string `json:"roman"`
	Note   string `json:"note"`
}

// ScaleResponse describes a scale placed on a key.
type ScaleResponse struct {
	Name      string   `json:"name"`
	Key       string   `json:"key"`
	NoteNames []string `json:"note_names"`
	Degrees   []Degree `json:"degrees"`
	Chords    []Chord  `json:"chords"`
}

// Setting describes one generator parameter with its legal values, for
// building parameter controls.
type Setting struct {
	Name    string   `json:"name"`
	ToolTip string   `json:"tool_tip"`
	Value   string   `json:"value"`
	Options []string `json:"options"`
}

// Generator describes one chord generator.
type Generator struct {
	Name      string    `json:"name"`
	NeedsSeed bool      `json:"needs_seed"`
	Settings  []Setting `json:"settings"`
}

// GeneratorListResponse enumerates the available generators.
type GeneratorListResponse struct {
	Generators []Generator `json:"generators"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
