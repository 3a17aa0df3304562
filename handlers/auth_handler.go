package handlers

import (
	"net/http"

	"chatboard/domain"

	"github.com/samber/lo"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// userResponse is the listing shape: credential material never leaves
// the service boundary.
type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Channels []int  `json:"channels"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.AvatarURL,
		Channels: u.Channels,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.users.Register(body.Username, body.Email, body.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.users.Authenticate(body.Username, body.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, lo.Map(users, func(u domain.User, _ int) userResponse {
		return toUserResponse(u)
	}))
}
