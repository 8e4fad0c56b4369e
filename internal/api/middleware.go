package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// logRequests emits one line per request before it is handled and tags the
// response with a request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		entry := s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": id,
		})
		if ua := r.UserAgent(); ua != "" {
			entry = entry.WithField("user_agent", ua)
		}
		entry.Infof("%s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)
	})
}
