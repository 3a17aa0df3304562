package handlers

import (
	"net/http"
	"strconv"

	"chatboard/domain"

	"github.com/gorilla/mux"
)

type createChannelRequest struct {
	Name    string   `json:"name"`
	Users   []string `json:"users"`
	Creator string   `json:"creator"`
}

type memberActionRequest struct {
	Username string `json:"username"`
}

type postMessageRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// channelDetailResponse is the channel plus its derived timeline.
type channelDetailResponse struct {
	domain.Channel
	Messages []domain.Message `json:"messages"`
}

type timelineResponse struct {
	Messages []domain.Message `json:"messages"`
}

func channelID(r *http.Request) int {
	// The route pattern guarantees digits only.
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channels.List()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, channels)
}

func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var body createChannelRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	channel, err := h.channels.Create(body.Name, body.Users, body.Creator)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, channel)
}

func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id := channelID(r)

	channel, err := h.channels.Get(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	timeline, err := h.messages.Timeline(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, channelDetailResponse{Channel: channel, Messages: timeline})
}

func (h *Handler) JoinChannel(w http.ResponseWriter, r *http.Request) {
	var body memberActionRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	channel, err := h.channels.Join(channelID(r), body.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, channel)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var body memberActionRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	channel, err := h.channels.RemoveMember(channelID(r), body.Username)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, channel)
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var body postMessageRequest
	if err := decode(r, &body); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	timeline, err := h.messages.Post(channelID(r), body.Username, body.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, timelineResponse{Messages: timeline})
}
