package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/scorepoint/constants"
	"github.com/jsphweid/scorepoint/db"
	"github.com/jsphweid/scorepoint/file"
	"github.com/jsphweid/scorepoint/geom"
	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/pointer"
	"github.com/jsphweid/scorepoint/sample"
	"github.com/jsphweid/scorepoint/score"
	"github.com/jsphweid/scorepoint/util"
)

var serveSystems []*score.System
var serveEvents *db.Store

var serveScorePath string

func init() {
	serveCmd.Flags().StringVar(&serveScorePath, "score", "", "score layout JSON, blank for the built-in sample")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the click resolution API",
	Long:  `Serves the click resolution API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeState primes the process-wide score and session store. A blank
// path loads the built-in sample.
func LoadServeState(path string) {
	if path == "" {
		serveSystems = sample.FlatScore()
	} else {
		systems, err := file.ReadScore(path)
		if err != nil {
			panic("Could not load score because: " + err.Error())
		}
		serveSystems = systems
	}
	serveEvents = db.New(constants.SessionLimit)
}

var numResolved atomic.Int64
var logDebounced = debounce.New(2 * time.Second)

// noteActivity logs the running total, debounced so click storms from a
// dragging cursor produce one line instead of hundreds.
func noteActivity() {
	n := numResolved.Add(1)
	logDebounced(func() {
		log.Printf("session at %v resolved events", n)
	})
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req model.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ev := pointer.Resolve(serveSystems, geom.Point{X: req.X, Y: req.Y}, nil, req.Accidentals)
	id := serveEvents.Put(ev)
	noteActivity()
	json.NewEncoder(w).Encode(model.ResolvedEvent{ID: id, Event: ev})
}

func HandleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "Bad limit: "+raw, http.StatusBadRequest)
			return
		}
		limit = util.Clamp(parsed, 0, constants.SessionLimit)
	}
	json.NewEncoder(w).Encode(serveEvents.Recent(limit))
}

func HandleEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ev, ok := serveEvents.Get(id)
	if !ok {
		writeError(w, "No event with id "+id, http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(model.ResolvedEvent{ID: id, Event: ev})
}

func HandleScore(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(serveSystems)
}

// NewRouter wires the serve routes. Split out so tests can drive the real
// routing table.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/events", HandleEvents).Methods("GET")
	router.HandleFunc("/events/{id}", HandleEvent).Methods("GET")
	router.HandleFunc("/score", HandleScore).Methods("GET")
	return router
}

func serve() {
	LoadServeState(serveScorePath)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{constants.GetAllowedOrigin()},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(NewRouter())

	addr := constants.GetListenAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
