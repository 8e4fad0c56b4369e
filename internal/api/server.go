// Package api exposes the share target over HTTP: configuration, share
// submission, listing and a health probe.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/its-jojoo/sharebutton/internal/core"
	"github.com/its-jojoo/sharebutton/internal/usecase/share"
)

const (
	msgReceived    = "Content received successfully"
	msgInvalidBody = "Invalid JSON body"
	msgInternal    = "Internal server error"
)

// Server wires the share service to its HTTP routes.
type Server struct {
	shares *share.Service
	target core.ShareTarget
	log    *logrus.Logger
	now    func() time.Time
}

func NewServer(shares *share.Service, target core.ShareTarget, log *logrus.Logger) *Server {
	return &Server{
		shares: shares,
		target: target,
		log:    log,
		now:    time.Now,
	}
}

// Router returns the handler for all routes, with request logging applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/config", s.getConfig).Methods(http.MethodGet)
	r.HandleFunc("/api/share", s.postShare).Methods(http.MethodPost)
	r.HandleFunc("/api/shares", s.listShares).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(s.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	// wrapped outside the router so unmatched requests are logged too
	return s.logRequests(r)
}

// Serve runs the HTTP server on l until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}
