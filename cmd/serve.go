package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/finder"
	"github.com/improperdecoherence/chordlab/model"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/scale"
)

var (
	serveConfig   config.Config
	serveDatabase *db.ChordDatabase
	serveFinder   *finder.Finder
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord finder HTTP API",
	Long:  `Serves the chord finder HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// InitServe builds the shared serving state. Exported so handler tests can
// run against an in-memory database without a listening socket.
func InitServe(cfg config.Config) {
	serveConfig = cfg
	serveDatabase = db.New(cfg.Arity)
	serveFinder = finder.NewFinder(serveDatabase)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func chordPayload(c *chord.DynamicChord, style note.Style) model.Chord {
	return model.Chord{
		ShortName:  c.ShortName(style),
		LongName:   c.LongName(style),
		Root:       c.RootName(style, false),
		NoteValues: c.NoteValues(),
		NoteNames:  c.NoteNames(style, true),
		Signature:  c.Signature(),
	}
}

// HandleMatch answers POST /match: notes plus a distance in, chords out.
func HandleMatch(w http.ResponseWriter, r *http.Request) {
	var req model.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	values, err := note.ValuesOf(req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	matches, err := serveDatabase.MatchIntervals(values, req.Distance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	style := serveConfig.NoteStyle()
	res := model.MatchResponse{NumMatches: len(matches), Chords: make([]model.Chord, 0, len(matches))}
	for _, c := range matches {
		res.Chords = append(res.Chords, chordPayload(c, style))
	}
	json.NewEncoder(w).Encode(res)
}

// HandleClassify answers POST /classify: the played notes reduced to one
// chord, or null when they fit no template.
func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req model.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	values, err := note.ValuesOf(req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := chord.FromNoteValues(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var res model.ClassifyResponse
	if c != nil {
		payload := chordPayload(c, serveConfig.NoteStyle())
		res.Chord = &payload
	}
	json.NewEncoder(w).Encode(res)
}

// HandleScales answers GET /scales with the known scale names.
func HandleScales(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.ScaleListResponse{Scales: scale.TemplateNames()})
}

// HandleScale answers GET /scales/{key}/{name} with the scale's notes,
// degrees and diatonic triads.
func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s, err := scale.FromNames(vars["key"], vars["name"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	style := serveConfig.NoteStyle()
	res := model.ScaleResponse{
		Name:      s.ScaleName(),
		Key:       s.RootName(style),
		NoteNames: s.NoteNames(style),
	}

	triads := s.ChordsOfScale()
	for i, v := range s.NoteValues() {
		degree := i + 1
		upper := true
		if i < len(triads) {
			t := triads[i].Template()
			upper = t == chord.Major || t == chord.Augmented
		}
		res.Degrees = append(res.Degrees, model.Degree{
			Number: degree,
			Name:   scale.DegreeName(degree),
			Roman:  scale.DegreeRoman(degree, upper),
			Note:   note.Name(v, style, false),
		})
	}
	for _, c := range triads {
		res.Chords = append(res.Chords, chordPayload(c, style))
	}
	json.NewEncoder(w).Encode(res)
}

// HandleGenerators answers GET /generators with every generator and its
// settings, legal values and tooltips.
func HandleGenerators(w http.ResponseWriter, r *http.Request) {
	var res model.GeneratorListResponse
	for _, g := range serveFinder.Generators() {
		payload := model.Generator{Name: g.Name(), NeedsSeed: g.NeedsSeed()}
		for _, s := range g.Settings() {
			payload.Settings = append(payload.Settings, model.Setting{
				Name:    s.Name(),
				ToolTip: s.ToolTip(),
				Value:   s.Value(),
				Options: s.Options(),
			})
		}
		res.Generators = append(res.Generators, payload)
	}
	json.NewEncoder(w).Encode(res)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%v %v %v", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the API routes.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/match", HandleMatch).Methods("POST")
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	router.HandleFunc("/scales/{key}/{name}", HandleScale).Methods("GET")
	router.HandleFunc("/generators", HandleGenerators).Methods("GET")
	router.Use(requestID)
	return router
}

func serve() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}
	InitServe(cfg)
	log.Printf("chord database ready: %v chords, %v signatures", serveDatabase.Size(), serveDatabase.NumSignatures())

	handler := cors.Default().Handler(NewRouter())
	log.Printf("listening on %v", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
