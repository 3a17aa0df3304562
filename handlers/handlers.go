// Package handlers is the thin translation layer between HTTP requests
// and the services. It owns no state and no business rules beyond
// mapping typed errors to status codes.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"chatboard/auth"
	"chatboard/errors"
	"chatboard/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	users       services.IUserService
	channels    services.IChannelService
	messages    services.IMessageService
	tokens      *auth.TokenIssuer
	requireAuth bool
	log         *slog.Logger
}

func New(
	users services.IUserService,
	channels services.IChannelService,
	messages services.IMessageService,
	tokens *auth.TokenIssuer,
	requireAuth bool,
	log *slog.Logger,
) *Handler {
	return &Handler{
		users:       users,
		channels:    channels,
		messages:    messages,
		tokens:      tokens,
		requireAuth: requireAuth,
		log:         log,
	}
}

// Router wires the routes of the historical REST surface plus /health.
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(h.requestID)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/channels", h.ListChannels).Methods(http.MethodGet)

	router.Handle("/channel", h.protect(h.CreateChannel)).Methods(http.MethodPost)
	router.Handle("/channel/{id:[0-9]+}", h.protect(h.GetChannel)).Methods(http.MethodGet)
	router.Handle("/channel/{id:[0-9]+}/join", h.protect(h.JoinChannel)).Methods(http.MethodPost)
	router.Handle("/channel/{id:[0-9]+}/remove-user", h.protect(h.RemoveMember)).Methods(http.MethodPost)
	router.Handle("/channel/{id:[0-9]+}/message", h.protect(h.PostMessage)).Methods(http.MethodPost)

	return router
}

// protect wraps the channel surface with bearer-token auth when enabled.
func (h *Handler) protect(next http.HandlerFunc) http.Handler {
	if !h.requireAuth {
		return next
	}
	return h.authenticated(next)
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("response encoding failed", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
		h.respond(w, status, errorResponse{Message: "internal server error"})
		return
	}
	h.respond(w, status, errorResponse{Message: err.Error()})
}

// statusFor maps the typed error taxonomy onto HTTP statuses; anything
// unrecognized is a server fault (persistence write failures included).
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &validationErrs):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrChannelNotFound),
		stderrors.Is(err, errors.ErrMemberNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrUserAlreadyExists),
		stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrAlreadyMember),
		stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrContentTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
