package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an identifier so log lines from one
// load-modify-save cycle can be correlated.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		h.log.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
		)
		next.ServeHTTP(w, r)
	})
}

// authenticated requires a valid Bearer token on the wrapped routes.
func (h *Handler) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			h.respond(w, http.StatusUnauthorized, errorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := h.tokens.Validate(token)
		if err != nil {
			h.respond(w, http.StatusUnauthorized, errorResponse{Message: "invalid token"})
			return
		}

		h.log.Debug("authenticated request", "username", claims.Username, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
