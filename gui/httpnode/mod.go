// Package httpnode exposes the tabulator over HTTP.
package httpnode

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.dedis.ch/rcir/gui/httpnode/controller"
	"go.dedis.ch/rcir/gui/httpnode/resultstore"
	"golang.org/x/xerrors"
)

// NewRouter returns the routes of the tabulation API under /api
func NewRouter(store resultstore.ResultStore, log *zerolog.Logger) *mux.Router {
	tally := controller.NewTally(store, log)

	r := mux.NewRouter()
	sr := r.PathPrefix("/api").Subrouter()
	sr.Path("/tally").HandlerFunc(tally.TallyHandler())
	sr.Path("/tally/{id}").HandlerFunc(tally.TabulationHandler())

	return r
}

// Server serves the tabulation API
type Server struct {
	srv  *http.Server
	log  *zerolog.Logger
	addr chan string
}

// New returns a server that will listen on addr
func New(addr string, store resultstore.ResultStore, log *zerolog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:  log,
		addr: make(chan string, 1),
	}
}

// Start listens and blocks until the server is stopped
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.addr <- ""
		return xerrors.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}

	s.addr <- ln.Addr().String()
	s.log.Info().Msgf("http server listening on %s", ln.Addr())

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr blocks until the server listens and returns its address. Returns
// an empty string if Start failed to listen.
func (s *Server) Addr() string {
	addr := <-s.addr
	s.addr <- addr
	return addr
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info().Msg("http server is shutting down")
	return s.srv.Shutdown(ctx)
}
