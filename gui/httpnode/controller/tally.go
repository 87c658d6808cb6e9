package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"go.dedis.ch/rcir/gui/httpnode/resultstore"
	"go.dedis.ch/rcir/tabulator"
	"go.dedis.ch/rcir/types"
)

// MaxRequestSize caps the body of a tabulation request
const MaxRequestSize = 8 * 1024 * 1024

type tally struct {
	store resultstore.ResultStore
	log   *zerolog.Logger
}

// NewTally returns a new initialized tally controller.
func NewTally(store resultstore.ResultStore, log *zerolog.Logger) tally {
	return tally{
		store: store,
		log:   log,
	}
}

// TallyHandler serves /tally: POST runs a tabulation, GET lists them
func (t tally) TallyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			t.tallyPost(w, r)
		case http.MethodGet:
			t.tallyGetAll(w, r)
		default:
			http.Error(w, "forbidden method", http.StatusMethodNotAllowed)
		}
	}
}

// TabulationHandler serves /tally/{id}
func (t tally) TabulationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			t.tabulationGet(w, r)
		case http.MethodDelete:
			t.tabulationDelete(w, r)
		default:
			http.Error(w, "forbidden method", http.StatusMethodNotAllowed)
		}
	}
}

type tallyRequest struct {
	Mode    string     `json:"mode"`
	Ballots [][]string `json:"ballots"`
}

type roundView struct {
	Round      int        `json:"round"`
	Tally      []voteView `json:"tally"`
	NumVoters  uint32     `json:"voters"`
	Threshold  uint32     `json:"threshold"`
	Eliminated []string   `json:"eliminated,omitempty"`
}

type voteView struct {
	Candidate string `json:"candidate"`
	Votes     uint32 `json:"votes"`
}

type tabulationView struct {
	ID      string      `json:"id"`
	Mode    string      `json:"mode"`
	Voters  int         `json:"voters"`
	Created time.Time   `json:"created"`
	Outcome string      `json:"outcome"`
	Winner  string      `json:"winner,omitempty"`
	Tied    []string    `json:"tied,omitempty"`
	Error   string      `json:"error,omitempty"`
	Rounds  []roundView `json:"rounds"`
}

func (t tally) tallyPost(w http.ResponseWriter, r *http.Request) {
	req := tallyRequest{}

	body := http.MaxBytesReader(w, r.Body, MaxRequestSize)

	err := json.NewDecoder(body).Decode(&req)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return
	}
	if err != nil {
		http.Error(w, "failed to decode request: "+err.Error(), http.StatusBadRequest)
		return
	}

	mode := types.CompleteMajority
	if req.Mode != "" {
		mode, err = types.ParseMajorityMode(req.Mode)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tab := types.Tabulation{
		ID:      xid.New().String(),
		Mode:    mode,
		Ballots: req.Ballots,
		Created: time.Now(),
	}

	observer := tabulator.WithRoundObserver(func(s types.RoundSummary[string]) {
		tab.Rounds = append(tab.Rounds, s)
	})

	tab.Result, tab.Err = tabulator.RunElection(req.Ballots, mode, tabulator.WithLogger(t.log), observer)

	t.store.Set(tab.ID, tab)

	logEvent := t.log.Info()
	if tab.Err != nil {
		logEvent = t.log.Warn().Err(tab.Err)
	}
	logEvent.Str("id", tab.ID).
		Str("mode", mode.String()).
		Int("ballots", len(req.Ballots)).
		Int("rounds", len(tab.Rounds)).
		Msg("tabulation done")

	status := http.StatusCreated
	if tab.Err != nil {
		status = http.StatusUnprocessableEntity
	}

	t.writeJSON(w, status, newTabulationView(tab))
}

func (t tally) tallyGetAll(w http.ResponseWriter, r *http.Request) {
	tabulations := t.store.GetAll()

	views := make([]tabulationView, 0, len(tabulations))
	for _, tab := range tabulations {
		views = append(views, newTabulationView(tab))
	}

	t.writeJSON(w, http.StatusOK, views)
}

func (t tally) tabulationGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tab, ok := t.store.Get(id)
	if !ok {
		http.Error(w, fmt.Sprintf("tabulation %s not found", id), http.StatusNotFound)
		return
	}

	t.writeJSON(w, http.StatusOK, newTabulationView(tab))
}

func (t tally) tabulationDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if !t.store.Delete(id) {
		http.Error(w, fmt.Sprintf("tabulation %s not found", id), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (t tally) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		t.log.Err(err).Msg("failed to write response")
	}
}

func newTabulationView(tab types.Tabulation) tabulationView {
	view := tabulationView{
		ID:      tab.ID,
		Mode:    tab.Mode.String(),
		Voters:  len(tab.Ballots),
		Created: tab.Created,
		Rounds:  make([]roundView, 0, len(tab.Rounds)),
	}

	for _, s := range tab.Rounds {
		rv := roundView{
			Round:      s.Round,
			Tally:      make([]voteView, 0, len(s.Tally)),
			NumVoters:  s.NumVoters,
			Threshold:  s.Threshold,
			Eliminated: s.Eliminated,
		}
		for _, vc := range s.Tally {
			rv.Tally = append(rv.Tally, voteView{Candidate: vc.Candidate, Votes: vc.Votes})
		}
		view.Rounds = append(view.Rounds, rv)
	}

	switch {
	case tab.Err != nil:
		view.Outcome = "error"
		view.Error = tab.Err.Error()
	case tab.Result.IsTie():
		view.Outcome = "tie"
		view.Tied = tab.Result.Tied
	default:
		view.Outcome = "winner"
		view.Winner = tab.Result.Winner
	}

	return view
}
