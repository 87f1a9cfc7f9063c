package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	httputil "confbook/pkg/http"
	"confbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// CreateConference registers a new conference.
func (h *Handler) CreateConference(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateConferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	conf, err := h.registration.CreateConference(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreated(w, conf)
}

// CreateUser registers a new attendee.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	user, err := h.registration.CreateUser(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreated(w, user)
}

// Search filters conferences by optional location and topics query params.
// Topics come as a comma-separated list.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	location := query.Get("location")
	var topics []string
	if raw := query.Get("topics"); raw != "" {
		for _, topic := range strings.Split(raw, ",") {
			if topic = strings.TrimSpace(topic); topic != "" {
				topics = append(topics, topic)
			}
		}
	}

	results := h.queries.Search(r.Context(), location, topics)
	httputil.WriteSuccess(w, results)
}

// Suggest returns conferences matching the user's interests.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("id")

	results, err := h.queries.Suggest(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, results)
}
