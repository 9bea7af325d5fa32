package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/model"
)

func serveTestRouter(t *testing.T) http.Handler {
	t.Helper()
	InitServe(config.Default())
	return NewRouter()
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func chordNames(chords []model.Chord) []string {
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		res = append(res, c.ShortName)
	}
	return res
}

func TestHandleMatch(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := postJSON(t, router, "/match", model.MatchRequest{Notes: []string{"C4", "E4", "G4"}})
	assert.Equal(http.StatusOK, w.Code)
	assert.NotEmpty(w.Header().Get("X-Request-Id"))

	var res model.MatchResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(len(res.Chords), res.NumMatches)
	assert.Contains(chordNames(res.Chords), "C")
}

func TestHandleMatchFindsSeventh(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := postJSON(t, router, "/match", model.MatchRequest{Notes: []string{"C4", "E4", "G4", "Bb4"}})
	assert.Equal(http.StatusOK, w.Code)

	var res model.MatchResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Contains(chordNames(res.Chords), "C7")
}

func TestHandleMatchBadInput(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := postJSON(t, router, "/match", model.MatchRequest{Notes: []string{"X4"}})
	assert.Equal(http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.NotEmpty(res.Error)

	w = postJSON(t, router, "/match", model.MatchRequest{Notes: []string{"C4", "E4", "G4"}, Distance: -1})
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestHandleClassify(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := postJSON(t, router, "/classify", model.ClassifyRequest{Notes: []string{"C4", "Eb4", "G4"}})
	assert.Equal(http.StatusOK, w.Code)

	var res model.ClassifyResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.NotNil(res.Chord)
	assert.Equal("Cm", res.Chord.ShortName)
	assert.Equal("C minor", res.Chord.LongName)
}

func TestHandleClassifyUnclassifiableIsNull(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := postJSON(t, router, "/classify", model.ClassifyRequest{Notes: []string{"C4", "Db4", "D4"}})
	assert.Equal(http.StatusOK, w.Code)

	var res model.ClassifyResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Nil(res.Chord)
}

func TestHandleClassifyTooFewNotes(t *testing.T) {
	router := serveTestRouter(t)
	w := postJSON(t, router, "/classify", model.ClassifyRequest{Notes: []string{"C4", "E4"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScales(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := get(t, router, "/scales")
	assert.Equal(http.StatusOK, w.Code)

	var res model.ScaleListResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Contains(res.Scales, "Natural Major")
	assert.Contains(res.Scales, "Harmonic minor")
}

func TestHandleScale(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := get(t, router, "/scales/C/Natural%20Major")
	assert.Equal(http.StatusOK, w.Code)

	var res model.ScaleResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Equal("Natural Major", res.Name)
	assert.Equal("C", res.Key)
	assert.Len(res.Degrees, 7)
	assert.Equal("I", res.Degrees[0].Roman)
	assert.Equal("Tonic", res.Degrees[0].Name)
	assert.Equal("ii", res.Degrees[1].Roman)
	assert.Len(res.Chords, 7)
	assert.Equal("C", res.Chords[0].ShortName)
}

func TestHandleScaleUnknownName(t *testing.T) {
	router := serveTestRouter(t)
	w := get(t, router, "/scales/C/Blues")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerators(t *testing.T) {
	assert := assert.New(t)
	router := serveTestRouter(t)

	w := get(t, router, "/generators")
	assert.Equal(http.StatusOK, w.Code)

	var res model.GeneratorListResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&res))
	assert.Len(res.Generators, 2)
	assert.Equal("Matching Chords", res.Generators[0].Name)
	assert.Len(res.Generators[0].Settings, 1)
	assert.Equal("Distance", res.Generators[0].Settings[0].Name)
	assert.Equal([]string{"0", "1", "2"}, res.Generators[0].Settings[0].Options)
}
