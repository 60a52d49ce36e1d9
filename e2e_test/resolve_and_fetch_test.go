//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/scorepoint/cmd"
	"github.com/jsphweid/scorepoint/model"
)

func TestMain(m *testing.M) {
	// Write code here to run before tests
	cmd.LoadServeState("")

	// Run tests
	exitVal := m.Run()

	os.Exit(exitVal)
}

func createResolveReqBody(x, y float64) io.Reader {
	body := model.ResolveRequest{X: x, Y: y, Accidentals: true}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func resolveAt(x, y float64) model.ResolvedEvent {
	req := httptest.NewRequest(http.MethodPost, "/resolve", createResolveReqBody(x, y))
	w := httptest.NewRecorder()
	cmd.HandleResolve(w, req)

	resp := w.Result()
	if resp.StatusCode != 200 {
		panic("resolve did not return 200")
	}
	respBody, _ := io.ReadAll(resp.Body)

	var re model.ResolvedEvent
	if err := json.Unmarshal(respBody, &re); err != nil {
		panic(err.Error())
	}
	return re
}

func TestResolveSharpedNoteE2E(t *testing.T) {
	assert := assert.New(t)
	re := resolveAt(9, 7)

	assert.NotEmpty(re.ID)
	assert.Equal(0, *re.Event.SystemIndex)
	assert.Equal(0, *re.Event.StaveIndex)
	assert.Equal("c#", re.Event.Pitch.Note)
	assert.Equal(5, re.Event.Pitch.Octave)
	assert.Equal(1, re.Event.Pitch.Semitone)
	assert.Equal(map[string]string{"c/5": "#"}, re.Event.Accidentals.Overrides)
}

func TestSignatureCarriesIntoSecondMeasureE2E(t *testing.T) {
	assert := assert.New(t)
	re := resolveAt(47, 8)

	assert.Equal(1, *re.Event.SystemIndex)
	assert.Equal("bb", re.Event.Pitch.Note)
	assert.Equal(10, re.Event.Pitch.Semitone)
	assert.Equal(map[string]string{"b": "b", "e": "b"}, re.Event.Accidentals.KeySig)
}

func TestBassStaffE2E(t *testing.T) {
	assert := assert.New(t)
	re := resolveAt(9, 18)

	assert.Equal(0, *re.Event.SystemIndex)
	assert.Equal(1, *re.Event.StaveIndex)
	assert.Equal("d", re.Event.Pitch.Note)
	assert.Equal(3, re.Event.Pitch.Octave)
}

func TestEventRoundTripE2E(t *testing.T) {
	assert := assert.New(t)
	re := resolveAt(17, 7)

	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/events/"+re.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(resp.StatusCode, 200)

	var fetched model.ResolvedEvent
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &fetched); err != nil {
		panic(err.Error())
	}
	assert.Equal(re.ID, fetched.ID)
	assert.Equal(re.Event.Pitch, fetched.Event.Pitch)

	// newest-first listing puts this click at the top
	req = httptest.NewRequest(http.MethodGet, "/events?limit=1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var recent []model.ResolvedEvent
	respBody, _ = io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &recent); err != nil {
		panic(err.Error())
	}
	assert.Equal(1, len(recent))
	assert.Equal(re.ID, recent[0].ID)
}

func TestUnknownEventE2E(t *testing.T) {
	assert := assert.New(t)
	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/events/not-an-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(resp.StatusCode, 404)

	var errResp model.ErrorResponse
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &errResp); err != nil {
		panic(err.Error())
	}
	assert.Contains(errResp.Error, "not-an-id")
}

func TestScoreEndpointE2E(t *testing.T) {
	assert := assert.New(t)
	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/score", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(resp.StatusCode, 200)

	var systems []json.RawMessage
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &systems); err != nil {
		panic(err.Error())
	}
	assert.Equal(2, len(systems))
}
